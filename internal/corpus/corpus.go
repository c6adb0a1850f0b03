// Package corpus decodes the gzip-compressed word lists embedded by the
// language data packages.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Corpus is the full word list for one language, in its original order.
// It is immutable once decoded.
type Corpus struct {
	words []string
}

// Decode decompresses a gzip-compressed newline-separated word list.
// Blank lines are skipped; everything else is kept verbatim, including case
// and duplicates.
func Decode(compressed []byte) (*Corpus, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	var words []string

	sc := bufio.NewScanner(zr)
	for sc.Scan() {
		if w := sc.Text(); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return &Corpus{words: words}, nil
}

// Encode is the inverse of Decode. It exists for tests and data tooling;
// the library itself only ever decodes.
func Encode(w io.Writer, words []string) error {
	zw := gzip.NewWriter(w)
	for _, word := range words {
		if _, err := io.WriteString(zw, word+"\n"); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Words returns the decoded word list. Callers must not modify it.
func (c *Corpus) Words() []string {
	return c.words
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.words)
}
