// Package en embeds the English word list.
//
// Importing this package includes the English corpus in the binary and makes
// en.Lang available to the randword query functions.
package en

import (
	_ "embed"

	"github.com/hupe1980/randword"
)

//go:embed words.txt.gz
var compressed []byte

// Lang selects English.
var Lang = randword.Register("en", compressed)
