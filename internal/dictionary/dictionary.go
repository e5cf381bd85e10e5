// Package dictionary holds the layered vocabulary consulted by the spell
// checker: general words, protected acronyms, measurement units and the
// user's own additions.
package dictionary

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/*.txt
var embedded embed.FS

type Layer int

const (
	Base Layer = iota
	Acronyms
	Units
	User
)

func (l Layer) String() string {
	switch l {
	case Acronyms:
		return "acronyms"
	case Units:
		return "units"
	case User:
		return "user"
	default:
		return "base"
	}
}

// TermStore persists the user layer. Implementations return an empty list
// for missing or unreadable storage.
type TermStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, terms []string) error
}

// Store is safe for concurrent use. The user layer is shared by every
// session that holds the same *Store.
type Store struct {
	mu            sync.RWMutex
	base          map[string]bool
	acronyms      map[string]bool // exact case
	acronymsLower map[string]bool
	units         map[string]bool
	user          map[string]bool
	userOrder     []string

	terms     TermStore
	wordFiles []string
	log       zerolog.Logger
}

type Option func(*Store)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithWordFiles adds extra vocabulary files to the base layer.
func WithWordFiles(paths ...string) Option {
	return func(s *Store) { s.wordFiles = append(s.wordFiles, paths...) }
}

// Normalize lower-cases word after NFC composition so that decomposed
// accents compare equal to precomposed ones.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
}

func newStore(opts ...Option) *Store {
	s := &Store{
		base:          make(map[string]bool),
		acronyms:      make(map[string]bool),
		acronymsLower: make(map[string]bool),
		units:         make(map[string]bool),
		user:          make(map[string]bool),
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds a Store from the embedded word lists, any configured word
// files and the user layer held by terms (which may be nil).
func Open(ctx context.Context, terms TermStore, opts ...Option) (*Store, error) {
	s := newStore(opts...)
	s.terms = terms

	for name, add := range map[string]func(string){
		"data/base.txt":     s.addBase,
		"data/acronyms.txt": s.addAcronym,
		"data/units.txt":    s.addUnit,
	} {
		data, err := embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		eachWord(data, add)
	}

	for _, path := range s.wordFiles {
		n, err := LoadWordFile(path, s.addBase)
		if err != nil {
			return nil, fmt.Errorf("load word file %s: %w", path, err)
		}
		s.log.Info().Str("path", path).Int("words", n).Msg("vocabulary file loaded")
	}

	s.loadUserTerms(ctx)
	return s, nil
}

// New returns a Store holding exactly the given layers and no persistence.
func New(base, acronyms, units []string, opts ...Option) *Store {
	s := newStore(opts...)
	for _, w := range base {
		s.addBase(w)
	}
	for _, w := range acronyms {
		s.addAcronym(w)
	}
	for _, w := range units {
		s.addUnit(w)
	}
	return s
}

func (s *Store) addBase(w string) {
	if n := Normalize(w); n != "" {
		s.base[n] = true
	}
}

func (s *Store) addAcronym(w string) {
	w = norm.NFC.String(strings.TrimSpace(w))
	if w == "" {
		return
	}
	s.acronyms[w] = true
	s.acronymsLower[strings.ToLower(w)] = true
}

func (s *Store) addUnit(w string) {
	if n := Normalize(w); n != "" {
		s.units[n] = true
	}
}

func (s *Store) loadUserTerms(ctx context.Context) {
	if s.terms == nil {
		return
	}
	words, err := s.terms.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load user dictionary, starting empty")
		return
	}
	for _, w := range words {
		s.appendUser(Normalize(w))
	}
	s.log.Debug().Int("terms", len(s.userOrder)).Msg("user dictionary loaded")
}

func (s *Store) appendUser(lw string) bool {
	if lw == "" || s.user[lw] {
		return false
	}
	s.user[lw] = true
	s.userOrder = append(s.userOrder, lw)
	return true
}

// IsKnown reports membership in any layer. Lookups are case-insensitive;
// acronyms also match in their exact case.
func (s *Store) IsKnown(word string) bool {
	return s.IsKnownIn(word, Base, Acronyms, Units, User)
}

// IsKnownIn restricts the lookup to the given layers.
func (s *Store) IsKnownIn(word string, layers ...Layer) bool {
	exact := norm.NFC.String(word)
	lw := strings.ToLower(exact)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range layers {
		switch l {
		case Base:
			if s.base[lw] {
				return true
			}
		case Acronyms:
			if s.acronyms[exact] || s.acronymsLower[lw] {
				return true
			}
		case Units:
			if s.units[lw] {
				return true
			}
		case User:
			if s.user[lw] {
				return true
			}
		}
	}
	return false
}

// AddUserTerm appends word to the user layer and persists it. Membership
// changes before persistence and is kept if saving fails.
func (s *Store) AddUserTerm(ctx context.Context, word string) error {
	lw := Normalize(word)
	s.mu.Lock()
	if !s.appendUser(lw) {
		s.mu.Unlock()
		return nil
	}
	snapshot := append([]string(nil), s.userOrder...)
	s.mu.Unlock()
	return s.persist(ctx, snapshot)
}

// RemoveUserTerm deletes word from the user layer and persists the result.
func (s *Store) RemoveUserTerm(ctx context.Context, word string) error {
	lw := Normalize(word)
	s.mu.Lock()
	if !s.user[lw] {
		s.mu.Unlock()
		return nil
	}
	delete(s.user, lw)
	kept := s.userOrder[:0]
	for _, w := range s.userOrder {
		if w != lw {
			kept = append(kept, w)
		}
	}
	s.userOrder = kept
	snapshot := append([]string(nil), s.userOrder...)
	s.mu.Unlock()
	return s.persist(ctx, snapshot)
}

// ListUserTerms returns the user layer in insertion order.
func (s *Store) ListUserTerms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.userOrder...)
}

// Len returns the number of entries per layer.
func (s *Store) Len(l Layer) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch l {
	case Acronyms:
		return len(s.acronyms)
	case Units:
		return len(s.units)
	case User:
		return len(s.user)
	default:
		return len(s.base)
	}
}

func (s *Store) persist(ctx context.Context, terms []string) error {
	if s.terms == nil {
		return nil
	}
	if err := s.terms.Save(ctx, terms); err != nil {
		return fmt.Errorf("save user dictionary: %w", err)
	}
	return nil
}
