// Package de embeds the German word list.
//
// Importing this package includes the German corpus in the binary and makes
// de.Lang available to the randword query functions. The source list keeps
// the German case convention: nouns are capitalized.
package de

import (
	_ "embed"

	"github.com/hupe1980/randword"
)

//go:embed words.txt.gz
var compressed []byte

// Lang selects German.
var Lang = randword.Register("de", compressed)
