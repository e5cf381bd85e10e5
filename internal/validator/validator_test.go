package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspell/internal/dictionary"
	"medspell/internal/settings"
	"medspell/internal/tokenizer"
)

func word(s string) tokenizer.Token {
	return tokenizer.Token{Text: s, End: len(s), Kind: tokenizer.Word}
}

func TestClassify(t *testing.T) {
	dict := dictionary.New([]string{"febre"}, []string{"ECG"}, []string{"mmHg"})
	require.NoError(t, dict.AddUserTerm(context.Background(), "xyzmed"))

	medical := settings.Defaults()
	general := settings.Defaults()
	general.UseMedicalDictionary = false
	disabled := settings.Defaults()
	disabled.Enabled = false

	tests := []struct {
		name string
		tok  tokenizer.Token
		s    settings.Settings
		want Result
	}{
		{"base word", word("Febre"), medical, Valid},
		{"unknown", word("febri"), medical, Invalid},
		{"acronym", word("ECG"), medical, Valid},
		{"unit", word("mmhg"), medical, Valid},
		{"user term", word("XYZMED"), medical, Valid},
		{"acronym without medical dictionary", word("ECG"), general, Invalid},
		{"unit without medical dictionary", word("mmHg"), general, Invalid},
		{"user term without medical dictionary", word("xyzmed"), general, Valid},
		{"base without medical dictionary", word("febre"), general, Valid},
		{"disabled", word("qwerty"), disabled, Valid},
		{"numeral", tokenizer.Token{Text: "12,5", Kind: tokenizer.Numeral}, medical, Valid},
		{"short", tokenizer.Token{Text: "vc", Kind: tokenizer.Short}, medical, Valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tok, dict, tt.s))
		})
	}
}

func TestClassifySeesUserEditsImmediately(t *testing.T) {
	ctx := context.Background()
	dict := dictionary.New(nil, nil, nil)
	s := settings.Defaults()

	assert.Equal(t, Invalid, Classify(word("novoterm"), dict, s))
	require.NoError(t, dict.AddUserTerm(ctx, "novoterm"))
	assert.Equal(t, Valid, Classify(word("novoterm"), dict, s))
	require.NoError(t, dict.RemoveUserTerm(ctx, "novoterm"))
	assert.Equal(t, Invalid, Classify(word("novoterm"), dict, s))
}

func TestAcceptedMatchesClassify(t *testing.T) {
	dict := dictionary.New([]string{"febre"}, []string{"ECG"}, []string{"mmHg"})
	general := settings.Defaults()
	general.UseMedicalDictionary = false

	for _, s := range []settings.Settings{settings.Defaults(), general} {
		accepted := Accepted{Lexicon: dict, Settings: s}
		for _, w := range []string{"febre", "ECG", "ecg", "mmHg", "febri"} {
			assert.Equal(t, Classify(word(w), dict, s) == Valid, accepted.IsKnown(w), w)
		}
	}
	assert.False(t, Accepted{Lexicon: dict, Settings: general}.IsKnown("ECG"))
}
