// Package zh embeds the Chinese word list.
//
// Importing this package includes the Chinese corpus in the binary and makes
// zh.Lang available to the randword query functions. Word length is counted
// in runes, so a two-character word has length 2.
package zh

import (
	_ "embed"

	"github.com/hupe1980/randword"
)

//go:embed words.txt.gz
var compressed []byte

// Lang selects Chinese.
var Lang = randword.Register("zh", compressed)
