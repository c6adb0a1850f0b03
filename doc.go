// Package randword provides random word generation over embedded word lists
// for multiple natural languages.
//
// Words can be enumerated or drawn uniformly at random, filtered by exact
// length or by first character. All data is compiled into the binary; there
// is no I/O at query time.
//
// # Quick Start
//
// Import the language packages you want. A language's word list is included
// in the binary only if its package is imported:
//
//	import (
//	    "github.com/hupe1980/randword"
//	    "github.com/hupe1980/randword/lang/en"
//	)
//
//	word := randword.Gen(en.Lang)
//	words := randword.AllLen(5, en.Lang)
//	word, ok := randword.GenStartsWith('a', en.Lang)
//
// # Language Selection
//
// Each supported language lives in its own package under lang/ and registers
// its corpus on import. Languages you never import cost nothing: their data
// is dropped by the linker, and no Lang identifier for them exists in your
// build. Supported languages:
//
//   - lang/de — German
//   - lang/en — English
//   - lang/es — Spanish
//   - lang/fr — French
//   - lang/zh — Chinese
//
// # Performance
//
// Each corpus ships gzip-compressed and is decoded at most once per process,
// on first use. The first query against a language also builds its lookup
// indexes (by length, by first character) in a single pass; every later
// query is a map lookup. All of this is guarded so that concurrent first
// access from multiple goroutines is safe.
//
// Slices returned by the All* functions alias internal index buckets and
// must be treated as read-only.
package randword
