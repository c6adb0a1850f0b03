package randword

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/randword/internal/corpus"
	"github.com/hupe1980/randword/internal/wordindex"
)

// Lang identifies a language whose word list was compiled into this build.
//
// Lang values are created only by Register, which the packages under lang/
// call on import. The zero Lang is invalid; passing it to any query panics.
type Lang struct {
	reg *registration
}

// Code returns the ISO 639-1 code of the language, e.g. "en".
func (l Lang) Code() string {
	return l.require().code
}

// String implements fmt.Stringer.
func (l Lang) String() string {
	return l.Code()
}

func (l Lang) require() *registration {
	if l.reg == nil {
		panic("randword: use of zero Lang; import a language package under lang/ and use its Lang value")
	}
	return l.reg
}

// load decodes the corpus and builds the indexes on first use.
func (l Lang) load() (*corpus.Corpus, *wordindex.Index) {
	r := l.require()
	r.once.Do(func() {
		start := time.Now()

		c, err := corpus.Decode(r.compressed)
		if err != nil {
			panic(fmt.Errorf("randword: lang %q: %w: %w", r.code, ErrCorpusCorrupt, err))
		}
		if c.Len() == 0 {
			panic(fmt.Errorf("randword: lang %q: %w", r.code, ErrCorpusEmpty))
		}

		r.corpus = c
		r.index = wordindex.Build(c.Words())
		r.compressed = nil // allow the compressed form to be collected

		logger().LogLoad(r.code, c.Len(), time.Since(start).Milliseconds())
	})
	return r.corpus, r.index
}

type registration struct {
	code       string
	compressed []byte

	once   sync.Once
	corpus *corpus.Corpus
	index  *wordindex.Index
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*registration)
)

// Register makes a language available to the query functions and returns its
// Lang handle. It is intended to be called from the init function of a
// language data package, with the gzip-compressed newline-separated word
// list for that language.
//
// Register panics if code is empty, compressed is empty, or code is already
// registered.
func Register(code string, compressed []byte) Lang {
	if code == "" {
		panic("randword: Register called with empty language code")
	}
	if len(compressed) == 0 {
		panic(fmt.Sprintf("randword: Register %q called with no corpus data", code))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[code]; dup {
		panic(fmt.Sprintf("randword: Register called twice for lang %q", code))
	}

	r := &registration{code: code, compressed: compressed}
	registry[code] = r

	return Lang{reg: r}
}

// Langs returns the languages registered in this build, sorted by code.
func Langs() []Lang {
	registryMu.RLock()
	defer registryMu.RUnlock()

	langs := make([]Lang, 0, len(registry))
	for _, r := range registry {
		langs = append(langs, Lang{reg: r})
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].reg.code < langs[j].reg.code
	})

	return langs
}
