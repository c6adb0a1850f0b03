// Package wordindex builds the per-language lookup structures: words
// bucketed by rune length and by first rune.
package wordindex

import (
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index accelerates length- and first-rune-filtered lookups over one
// language's word list. It is built once and never mutated.
//
// Postings are roaring bitmaps of word positions. Bitmap iteration is
// ascending, so materialized buckets always preserve corpus order.
type Index struct {
	words []string

	byLen   map[int]*roaring.Bitmap
	byFirst map[rune]*roaring.Bitmap

	// Single-key buckets are materialized during Build so the common
	// lookups are a plain map access.
	lenBuckets   map[int][]string
	firstBuckets map[rune][]string
}

// Build indexes words in a single pass. The slice is retained; callers must
// not modify it afterwards.
func Build(words []string) *Index {
	ix := &Index{
		words:   words,
		byLen:   make(map[int]*roaring.Bitmap),
		byFirst: make(map[rune]*roaring.Bitmap),
	}

	for i, w := range words {
		n := utf8.RuneCountInString(w)
		first, _ := utf8.DecodeRuneInString(w)

		post(ix.byLen, n, uint32(i))
		post(ix.byFirst, first, uint32(i))
	}

	ix.lenBuckets = make(map[int][]string, len(ix.byLen))
	for n, bm := range ix.byLen {
		ix.lenBuckets[n] = ix.materialize(bm)
	}
	ix.firstBuckets = make(map[rune][]string, len(ix.byFirst))
	for r, bm := range ix.byFirst {
		ix.firstBuckets[r] = ix.materialize(bm)
	}

	return ix
}

// Len returns the bucket of words with exactly n runes, or nil.
func (ix *Index) Len(n int) []string {
	return ix.lenBuckets[n]
}

// StartsWith returns the bucket of words whose first rune is r, or nil.
func (ix *Index) StartsWith(r rune) []string {
	return ix.firstBuckets[r]
}

// LenStartsWith intersects the two postings and returns the matching words
// in corpus order, or nil when either bucket is absent or the intersection
// is empty.
func (ix *Index) LenStartsWith(n int, r rune) []string {
	a := ix.byLen[n]
	b := ix.byFirst[r]
	if a == nil || b == nil {
		return nil
	}

	both := roaring.And(a, b)
	if both.IsEmpty() {
		return nil
	}

	return ix.materialize(both)
}

func (ix *Index) materialize(bm *roaring.Bitmap) []string {
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, ix.words[it.Next()])
	}
	return out
}

func post[K comparable](m map[K]*roaring.Bitmap, key K, pos uint32) {
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
	}
	bm.Add(pos)
}
