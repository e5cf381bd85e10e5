package textutil

import (
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"febre", "febre", 0},
		{"febri", "febre", 1},
		{"disuria", "disúria", 1},
		{"tosee", "tosse", 1},
		{"ab", "ba", 1},
		{"tmbm", "também", 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistances(t *testing.T) {
	got := Distances("Disuria", []string{"disúria", "disuria"})
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Fatalf("Distances() = %v", got)
	}
}

func TestMatchCase(t *testing.T) {
	tests := []struct {
		name, original, candidate, want string
	}{
		{"lower", "disuria", "disúria", "disúria"},
		{"title", "Disuria", "disúria", "Disúria"},
		{"upper", "DISURIA", "disúria", "DISÚRIA"},
		{"mixed", "diSuria", "disúria", "disúria"},
		{"single capital", "Q", "que", "Que"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCase(tt.original, tt.candidate); got != tt.want {
				t.Errorf("MatchCase(%q, %q) = %q; want %q", tt.original, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIsTitleIsUpper(t *testing.T) {
	if !IsTitle("Febre") || IsTitle("FEBRE") || IsTitle("febre") || IsTitle("") {
		t.Error("IsTitle mismatch")
	}
	if !IsUpper("ECG") || IsUpper("Ecg") || IsUpper("123") {
		t.Error("IsUpper mismatch")
	}
}
