// Package userdict persists the user layer of the dictionary. Every store
// satisfies dictionary.TermStore and treats missing or corrupt data as an
// empty list.
package userdict

import (
	"context"
	"strings"
	"sync"
)

// Dict is the on-disk document shape: {"words": ["...", ...]}.
type Dict struct {
	Profile string   `json:"profile,omitempty"`
	Words   []string `json:"words"`
}

// clean drops blanks and duplicates while keeping first-seen order.
func clean(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// MemoryStore is a process-local store, mostly useful in tests and for
// the "memory" storage backend.
type MemoryStore struct {
	mu    sync.Mutex
	words []string
	saves int
}

func NewMemoryStore(words ...string) *MemoryStore {
	return &MemoryStore{words: words}
}

func (m *MemoryStore) Load(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clean(m.words), nil
}

func (m *MemoryStore) Save(_ context.Context, terms []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words = append([]string(nil), terms...)
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
