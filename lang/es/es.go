// Package es embeds the Spanish word list.
//
// Importing this package includes the Spanish corpus in the binary and makes
// es.Lang available to the randword query functions.
package es

import (
	_ "embed"

	"github.com/hupe1980/randword"
)

//go:embed words.txt.gz
var compressed []byte

// Lang selects Spanish.
var Lang = randword.Register("es", compressed)
