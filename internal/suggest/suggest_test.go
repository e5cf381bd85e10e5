package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspell/internal/dictionary"
	"medspell/pkg/options"
)

func openDict(t *testing.T) *dictionary.Store {
	t.Helper()
	d, err := dictionary.Open(context.Background(), nil)
	require.NoError(t, err)
	return d
}

func TestSuggestCommonMistakes(t *testing.T) {
	g := New(openDict(t))
	tests := []struct {
		in   string
		want []string
	}{
		{"disuria", []string{"disúria"}},
		{"Disuria", []string{"Disúria"}},
		{"tmbm", []string{"também"}},
		{"VC", []string{"VOCÊ"}},
		{"hipertenção", []string{"hipertensão"}},
		{"cefaléia", []string{"cefaleia"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Suggest(tt.in))
		})
	}
}

func TestCommonMistakeTargetsAreKnown(t *testing.T) {
	d := openDict(t)
	for k, v := range commonMistakes {
		assert.Truef(t, d.IsKnown(v), "canonical form %q of %q is not in the dictionary", v, k)
		assert.Equalf(t, dictionary.Normalize(k), k, "key %q must be lower case", k)
	}
}

func TestCommonMistakeKeysAreNotWords(t *testing.T) {
	d := openDict(t)
	for k := range commonMistakes {
		assert.Falsef(t, d.IsKnown(k), "%q is a dictionary word and would never be flagged", k)
	}
}

func TestSuggestDiacriticStripping(t *testing.T) {
	g := New(openDict(t))
	assert.Equal(t, []string{"para"}, g.Suggest("pára"))
	assert.Equal(t, []string{"dor"}, g.Suggest("dôr"))
	assert.Equal(t, []string{"febre"}, g.Suggest("fébre"))
}

func TestSuggestInChecksGivenLexicon(t *testing.T) {
	dict := dictionary.New([]string{"febre"}, []string{"PALA"}, nil)
	g := New(dict)
	assert.Equal(t, []string{"pala"}, g.Suggest("palá"))

	baseOnly := func(w string) bool { return dict.IsKnownIn(w, dictionary.Base, dictionary.User) }
	assert.Empty(t, g.SuggestIn("palá", lexFunc(baseOnly)))
	assert.Equal(t, []string{"febre"}, g.SuggestIn("fébre", lexFunc(baseOnly)))
}

type lexFunc func(string) bool

func (f lexFunc) IsKnown(w string) bool { return f(w) }

func TestSuggestNoCandidates(t *testing.T) {
	g := New(openDict(t))
	got := g.Suggest("qwertyuiop")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	// stripped form not in the dictionary
	assert.Empty(t, g.Suggest("xýz"))
}

func TestSuggestCapAndOrder(t *testing.T) {
	many := func(word string, _ Lexicon) []string {
		return []string{"um", "dois", "um", "três", "quatro", "cinco"}
	}
	first := func(word string, _ Lexicon) []string { return []string{"zero", word} }
	g := New(openDict(t), WithRules(first, many))
	assert.Equal(t, []string{"zero", "um", "dois"}, g.Suggest("abc"))

	g = New(openDict(t), WithRules(many), WithEngineOptions(options.WithMaxSuggestions(5)))
	assert.Equal(t, []string{"um", "dois", "três", "quatro", "cinco"}, g.Suggest("abc"))
}

func TestSuggestMistakeWinsOverRules(t *testing.T) {
	called := false
	rule := func(string, Lexicon) []string { called = true; return []string{"x"} }
	g := New(openDict(t), WithRules(rule))
	assert.Equal(t, []string{"também"}, g.Suggest("tbm"))
	assert.False(t, called)
}

func TestWithMistakes(t *testing.T) {
	g := New(openDict(t), WithMistakes(map[string]string{"PCR-T": "PCR"}))
	c, ok := g.Mistake("pcr-t")
	require.True(t, ok)
	assert.Equal(t, "PCR", c)
	assert.Equal(t, []string{"PCR"}, g.Suggest("pcr-t"))
}

func TestSuggestIsDeterministic(t *testing.T) {
	g := New(openDict(t))
	for _, w := range []string{"disuria", "pára", "qwerty"} {
		assert.Equal(t, g.Suggest(w), g.Suggest(w))
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "hipertensao", RemoveDiacritics("hipertensão"))
	assert.Equal(t, "acucar", RemoveDiacritics("açúcar"))
	assert.Equal(t, "febre", RemoveDiacritics("febre"))
}
