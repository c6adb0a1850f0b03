package randword

import "errors"

var (
	// ErrCorpusEmpty indicates that a registered language decoded to zero
	// words. This is a data-packaging defect, not a caller error; it is
	// delivered via panic on first use of the affected language.
	ErrCorpusEmpty = errors.New("corpus is empty")

	// ErrCorpusCorrupt indicates that a registered language's embedded data
	// could not be decompressed. Like ErrCorpusEmpty it is delivered via
	// panic, since it can only be caused by a broken build.
	ErrCorpusCorrupt = errors.New("corpus data is corrupt")
)
