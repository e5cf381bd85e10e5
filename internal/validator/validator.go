// Package validator decides whether a single token is acceptable.
package validator

import (
	"medspell/internal/dictionary"
	"medspell/internal/settings"
	"medspell/internal/tokenizer"
)

type Result int

const (
	Valid Result = iota
	Invalid
)

func (r Result) String() string {
	if r == Invalid {
		return "invalid"
	}
	return "valid"
}

// Lexicon is the part of the dictionary the validator consults.
type Lexicon interface {
	IsKnown(word string) bool
	IsKnownIn(word string, layers ...dictionary.Layer) bool
}

// Classify is pure given its inputs. With the medical dictionary switched
// off only the base and user layers are consulted.
func Classify(tok tokenizer.Token, lex Lexicon, s settings.Settings) Result {
	if !s.Enabled {
		return Valid
	}
	if tok.Kind != tokenizer.Word {
		return Valid
	}
	if Known(tok.Text, lex, s) {
		return Valid
	}
	return Invalid
}

// Known reports whether word is in one of the layers s enables.
func Known(word string, lex Lexicon, s settings.Settings) bool {
	if s.UseMedicalDictionary {
		return lex.IsKnown(word)
	}
	return lex.IsKnownIn(word, dictionary.Base, dictionary.User)
}

// Accepted narrows a Lexicon to the words Classify accepts under Settings.
type Accepted struct {
	Lexicon  Lexicon
	Settings settings.Settings
}

func (a Accepted) IsKnown(word string) bool { return Known(word, a.Lexicon, a.Settings) }
