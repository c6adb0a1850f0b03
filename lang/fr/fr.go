// Package fr embeds the French word list.
//
// Importing this package includes the French corpus in the binary and makes
// fr.Lang available to the randword query functions.
package fr

import (
	_ "embed"

	"github.com/hupe1980/randword"
)

//go:embed words.txt.gz
var compressed []byte

// Lang selects French.
var Lang = randword.Register("fr", compressed)
