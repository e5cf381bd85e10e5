// Package textutil collects small rune-aware string helpers shared by the
// suggestion generator and the command line reports.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Distance is the unit-cost Damerau–Levenshtein distance between a and b,
// counting adjacent transpositions as one edit.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				x = min(x, prev2[j-2]+1)
			}
			curr[j] = x
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// Distances returns Distance(origin, s) for every s.
func Distances(origin string, suggestions []string) []int {
	out := make([]int, len(suggestions))
	for i, s := range suggestions {
		out[i] = Distance(strings.ToLower(origin), strings.ToLower(s))
	}
	return out
}

func IsTitle(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(r) {
		return false
	}
	rest := s[size:]
	return strings.ToLower(rest) == rest
}

func IsUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// MatchCase renders candidate in the casing style of original: all caps,
// title case, or as given.
func MatchCase(original, candidate string) string {
	switch {
	case utf8.RuneCountInString(original) > 1 && IsUpper(original):
		return strings.ToUpper(candidate)
	case IsTitle(original):
		return Title(candidate)
	}
	return candidate
}
