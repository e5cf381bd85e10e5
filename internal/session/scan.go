package session

import (
	"context"
	"sort"
	"strings"

	"medspell/internal/dictionary"
	"medspell/internal/settings"
	"medspell/internal/suggest"
	"medspell/internal/tokenizer"
	"medspell/internal/validator"
	"medspell/pkg/options"
)

// FlaggedError is a token the validator rejected. Position and End are byte
// offsets into the text that was scanned.
type FlaggedError struct {
	Word        string   `json:"word"`
	Position    int      `json:"position"`
	End         int      `json:"end"`
	Suggestions []string `json:"suggestions"`
}

// Dictionary is what the engine needs from the dictionary store.
type Dictionary interface {
	validator.Lexicon
	AddUserTerm(ctx context.Context, word string) error
}

// Suggester proposes replacements, keeping only candidates lex accepts.
type Suggester interface {
	SuggestIn(word string, lex suggest.Lexicon) []string
}

// Engine runs tokenizer, validator and suggestion generator over a text.
// It holds no per-text state and may be shared between sessions.
type Engine struct {
	dict Dictionary
	gen  Suggester
	tok  *tokenizer.Tokenizer
}

// NewEngine wires an engine. A nil gen uses the default generator over dict.
func NewEngine(dict Dictionary, gen Suggester, opts ...options.Options) *Engine {
	if gen == nil {
		gen = suggest.New(dict, suggest.WithEngineOptions(opts...))
	}
	return &Engine{dict: dict, gen: gen, tok: tokenizer.New(opts...)}
}

func (e *Engine) Dictionary() Dictionary { return e.dict }

// Scan returns the flagged errors for text, in text order. It is a pure
// function of text, s and the current dictionary contents.
func (e *Engine) Scan(text string, s settings.Settings) []FlaggedError {
	if !s.Enabled {
		return nil
	}
	accepted := validator.Accepted{Lexicon: e.dict, Settings: s}
	var out []FlaggedError
	for _, tok := range e.tok.Tokenize(text) {
		if validator.Classify(tok, e.dict, s) == validator.Valid {
			continue
		}
		out = append(out, FlaggedError{
			Word:        tok.Text,
			Position:    tok.Start,
			End:         tok.End,
			Suggestions: e.gen.SuggestIn(tok.Text, accepted),
		})
	}
	return out
}

// AutoCorrect replaces every error that has exactly one suggestion. errs
// must come from scanning text. It returns the new text and the number of
// replacements made.
func AutoCorrect(text string, errs []FlaggedError) (string, int) {
	var fixes []FlaggedError
	for _, e := range errs {
		if len(e.Suggestions) == 1 && e.Suggestions[0] != e.Word {
			fixes = append(fixes, e)
		}
	}
	if len(fixes) == 0 {
		return text, 0
	}
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Position > fixes[j].Position })
	for _, f := range fixes {
		text = text[:f.Position] + f.Suggestions[0] + text[f.End:]
	}
	return text, len(fixes)
}

// ReplaceWord replaces every whole-word, case-insensitive occurrence of
// word in text with replacement. Word boundaries follow the tokenizer.
func (e *Engine) ReplaceWord(text, word, replacement string) (string, int) {
	target := dictionary.Normalize(word)
	if target == "" {
		return text, 0
	}
	toks := e.tok.Tokenize(text)
	var b strings.Builder
	last, n := 0, 0
	for _, tok := range toks {
		if dictionary.Normalize(tok.Text) != target {
			continue
		}
		b.WriteString(text[last:tok.Start])
		b.WriteString(replacement)
		last = tok.End
		n++
	}
	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}
