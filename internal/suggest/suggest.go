// Package suggest proposes replacements for words the validator rejected.
//
// Candidates come first from a static common-mistake table; when the table
// has no entry, a list of deterministic rules is applied in order. Results
// keep generation order and are truncated to a fixed maximum.
package suggest

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"medspell/internal/dictionary"
	"medspell/internal/textutil"
	"medspell/pkg/options"
)

// Lexicon reports whether a candidate is an acceptable word.
type Lexicon interface {
	IsKnown(word string) bool
}

// Rule produces candidates for word. Rules must be deterministic.
type Rule func(word string, lex Lexicon) []string

type Generator struct {
	lex      Lexicon
	mistakes map[string]string
	rules    []Rule
	max      int
}

type Option func(*Generator)

// WithMistakes adds entries to the common-mistake table. Keys are
// normalised to lower case.
func WithMistakes(m map[string]string) Option {
	return func(g *Generator) {
		for k, v := range m {
			g.mistakes[dictionary.Normalize(k)] = v
		}
	}
}

// WithRules replaces the default rule list.
func WithRules(rules ...Rule) Option {
	return func(g *Generator) { g.rules = rules }
}

func WithEngineOptions(opts ...options.Options) Option {
	return func(g *Generator) { g.max = options.Resolve(opts...).MaxSuggestions }
}

func New(lex Lexicon, opts ...Option) *Generator {
	g := &Generator{
		lex:      lex,
		mistakes: make(map[string]string, len(commonMistakes)),
		rules:    []Rule{StripDiacritics},
		max:      options.DefaultOptions.MaxSuggestions,
	}
	for k, v := range commonMistakes {
		g.mistakes[k] = v
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Suggest returns at most max candidates, never nil. A common-mistake hit is
// returned alone.
func (g *Generator) Suggest(word string) []string {
	return g.SuggestIn(word, g.lex)
}

// SuggestIn is Suggest with rules checking candidates against lex instead
// of the generator's own lexicon.
func (g *Generator) SuggestIn(word string, lex Lexicon) []string {
	if canonical, ok := g.mistakes[dictionary.Normalize(word)]; ok {
		return []string{textutil.MatchCase(word, canonical)}
	}

	out := []string{}
	seen := map[string]bool{word: true}
	for _, rule := range g.rules {
		for _, c := range rule(word, lex) {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) > g.max {
		out = out[:g.max]
	}
	return out
}

// Mistake exposes the common-mistake table lookup.
func (g *Generator) Mistake(word string) (string, bool) {
	c, ok := g.mistakes[dictionary.Normalize(word)]
	return c, ok
}

// RemoveDiacritics drops combining marks: "pára" becomes "para".
func RemoveDiacritics(s string) string {
	// transform chains keep state, so one is built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// StripDiacritics offers the unaccented form of word when it differs and
// is itself a known word. Adding accents to unaccented input is left to
// the common-mistake table.
func StripDiacritics(word string, lex Lexicon) []string {
	stripped := RemoveDiacritics(word)
	if stripped == norm.NFC.String(word) || !lex.IsKnown(stripped) {
		return nil
	}
	return []string{stripped}
}
