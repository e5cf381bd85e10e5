// Package tokenizer splits free text into word tokens carrying byte offsets
// into the original string.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"medspell/pkg/options"
)

type Kind int

const (
	Word Kind = iota
	Numeral
	Short
)

func (k Kind) String() string {
	switch k {
	case Numeral:
		return "numeral"
	case Short:
		return "short"
	default:
		return "word"
	}
}

// Token is a word-like substring of the input. Start and End are byte
// offsets, so text[Start:End] == Text.
type Token struct {
	Text  string
	Start int
	End   int
	Kind  Kind
}

type Tokenizer struct {
	minLen int
	punct  string
}

func New(opts ...options.Options) *Tokenizer {
	o := options.Resolve(opts...)
	return &Tokenizer{minLen: o.MinTokenLength, punct: o.Punctuation}
}

var defaultTokenizer = New()

// Tokenize uses the default minimum length and punctuation set.
func Tokenize(text string) []Token { return defaultTokenizer.Tokenize(text) }

func (t *Tokenizer) Tokenize(text string) []Token {
	var out []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if tok, ok := t.trim(text, start, i); ok {
			out = append(out, tok)
		}
	}
	return out
}

func (t *Tokenizer) trim(text string, start, end int) (Token, bool) {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !strings.ContainsRune(t.punct, r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !strings.ContainsRune(t.punct, r) {
			break
		}
		end -= size
	}
	if start == end {
		return Token{}, false
	}
	word := text[start:end]
	kind := Word
	switch {
	case IsNumeral(word):
		kind = Numeral
	case utf8.RuneCountInString(word) < t.minLen:
		kind = Short
	}
	return Token{Text: word, Start: start, End: end, Kind: kind}, true
}

// IsNumeral reports whether s is digits with optional '.' or ',' separators.
func IsNumeral(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}

// At returns the token whose span contains offset.
func At(tokens []Token, offset int) (Token, bool) {
	for _, tok := range tokens {
		if offset >= tok.Start && offset < tok.End {
			return tok, true
		}
	}
	return Token{}, false
}
