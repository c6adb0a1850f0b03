package randword

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All returns every word in the corpus for lang, in its fixed order.
// The result is never empty and is identical across calls.
func All(lang Lang) []string {
	c, _ := lang.load()
	return c.Words()
}

// Gen returns one word for lang, drawn uniformly at random. Each call is an
// independent draw.
func Gen(lang Lang, opts ...Option) string {
	words := All(lang)
	return words[applyOptions(opts).intn(len(words))]
}

// AllLen returns every word for lang whose length in runes is exactly n, in
// corpus order. It returns nil when no word of that length exists.
func AllLen(n int, lang Lang) []string {
	_, ix := lang.load()
	return ix.Len(n)
}

// GenLen returns a uniformly random word for lang of exactly n runes.
// ok is false when no word of that length exists.
func GenLen(n int, lang Lang, opts ...Option) (word string, ok bool) {
	return choose(AllLen(n, lang), opts)
}

// AllStartsWith returns every word for lang whose first rune equals r, in
// corpus order. Matching is exact: no case folding, no normalization. It
// returns nil when no word starts with r.
func AllStartsWith(r rune, lang Lang) []string {
	_, ix := lang.load()
	return ix.StartsWith(r)
}

// GenStartsWith returns a uniformly random word for lang whose first rune
// equals r. ok is false when no word starts with r.
func GenStartsWith(r rune, lang Lang, opts ...Option) (word string, ok bool) {
	return choose(AllStartsWith(r, lang), opts)
}

// AllLenStartsWith returns every word for lang of exactly n runes whose
// first rune equals r, in corpus order. It returns nil when no word matches
// both filters.
func AllLenStartsWith(n int, r rune, lang Lang) []string {
	_, ix := lang.load()
	return ix.LenStartsWith(n, r)
}

// GenLenStartsWith returns a uniformly random word for lang matching both
// filters. ok is false when no word matches.
func GenLenStartsWith(n int, r rune, lang Lang, opts ...Option) (word string, ok bool) {
	return choose(AllLenStartsWith(n, r, lang), opts)
}

// Prime eagerly decodes the corpora and builds the indexes for the given
// languages, concurrently. With no arguments it primes every registered
// language. Without Prime the same work happens lazily on first query.
//
// Prime stops early when ctx is canceled; languages already primed stay
// primed, the rest fall back to lazy initialization.
func Prime(ctx context.Context, langs ...Lang) error {
	if len(langs) == 0 {
		langs = Langs()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range langs {
		lang := lang
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lang.load()
			return nil
		})
	}

	return g.Wait()
}

func choose(words []string, opts []Option) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[applyOptions(opts).intn(len(words))], true
}
