// Package session drives spell checking for one editable text surface.
//
// A Session moves between three states:
//
//	Idle      checking disabled or no text
//	Scanned   errors computed for the current text, possibly none
//	MenuOpen  one error selected for apply / add-to-dictionary / ignore
//
// Every text change rescans the whole text and replaces the error list, so
// offsets in the list always refer to the current text. A Session is owned
// by a single widget and is not safe for concurrent use; the Dictionary
// behind its Engine is.
package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"medspell/internal/dictionary"
	"medspell/internal/settings"
)

type State int

const (
	Idle State = iota
	Scanned
	MenuOpen
)

func (s State) String() string {
	switch s {
	case Scanned:
		return "scanned"
	case MenuOpen:
		return "menu-open"
	default:
		return "idle"
	}
}

// Host is the editable text surface driven by a Session.
type Host interface {
	Text() string
	ReplaceText(text string)
}

// SettingsSource is read at the start of every scan.
type SettingsSource interface {
	Load(ctx context.Context) settings.Settings
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Menu is what a menu rendering surface needs to show the action list.
type Menu struct {
	Position Point        `json:"position"`
	Error    FlaggedError `json:"error"`
}

type Snapshot struct {
	State  State
	Errors []FlaggedError
	Menu   *Menu
}

type Session struct {
	engine   *Engine
	host     Host
	settings SettingsSource
	log      zerolog.Logger
	observer func(Snapshot)

	state  State
	errors []FlaggedError
	menu   *Menu
}

type Option func(*Session)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithObserver registers fn to receive a snapshot after every transition.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Session) { s.observer = fn }
}

func New(engine *Engine, host Host, src SettingsSource, opts ...Option) *Session {
	s := &Session{
		engine:   engine,
		host:     host,
		settings: src,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }

// Errors returns a copy of the current error list.
func (s *Session) Errors() []FlaggedError {
	return append([]FlaggedError(nil), s.errors...)
}

// Menu returns the open menu, if any.
func (s *Session) Menu() (Menu, bool) {
	if s.menu == nil {
		return Menu{}, false
	}
	return *s.menu, true
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{State: s.state, Errors: s.Errors()}
	if s.menu != nil {
		m := *s.menu
		snap.Menu = &m
	}
	return snap
}

// TextChanged rescans the host text. With auto-correct on, every error with
// exactly one suggestion is replaced in the host before the final scan.
func (s *Session) TextChanged(ctx context.Context) {
	st := s.settings.Load(ctx)
	s.scan(st)
	s.notify()
}

// Refresh re-reads settings. Turning checking off clears all errors and
// force-closes the menu.
func (s *Session) Refresh(ctx context.Context) {
	s.TextChanged(ctx)
}

func (s *Session) scan(st settings.Settings) {
	text := s.host.Text()
	if !st.Enabled || strings.TrimSpace(text) == "" {
		s.errors, s.menu, s.state = nil, nil, Idle
		return
	}

	errs := s.engine.Scan(text, st)
	if st.AutoCorrect {
		if fixed, n := AutoCorrect(text, errs); n > 0 {
			s.log.Debug().Int("replacements", n).Msg("auto-corrected")
			s.host.ReplaceText(fixed)
			errs = s.engine.Scan(fixed, st)
		}
	}
	s.errors = errs
	s.log.Debug().Int("errors", len(errs)).Msg("scanned")

	if s.menu != nil {
		s.state = MenuOpen
	} else {
		s.state = Scanned
	}
}

// OpenMenuAt opens the menu for the error covering offset, a byte offset
// into the current text. It reports whether an error was found.
func (s *Session) OpenMenuAt(offset int, pos Point) bool {
	for _, e := range s.errors {
		if offset >= e.Position && offset <= e.End {
			s.open(e, pos)
			return true
		}
	}
	return false
}

// OpenMenu opens the menu for e if it is still in the current error list.
func (s *Session) OpenMenu(e FlaggedError, pos Point) bool {
	for _, cur := range s.errors {
		if cur.Position == e.Position && cur.Word == e.Word {
			s.open(cur, pos)
			return true
		}
	}
	return false
}

func (s *Session) open(e FlaggedError, pos Point) {
	s.menu = &Menu{Position: pos, Error: e}
	s.state = MenuOpen
	s.notify()
}

// Apply replaces every occurrence of the menu word in the current host text
// with suggestion, closes the menu and rescans. If the word no longer
// occurs the text is left alone.
func (s *Session) Apply(ctx context.Context, suggestion string) {
	if s.menu == nil {
		return
	}
	word := s.menu.Error.Word
	s.closeMenu()

	text := s.host.Text()
	if fixed, n := s.engine.ReplaceWord(text, word, suggestion); n > 0 {
		s.log.Debug().Str("word", word).Str("replacement", suggestion).Int("occurrences", n).Msg("applied")
		s.host.ReplaceText(fixed)
	}
	s.TextChanged(ctx)
}

// AddToDictionary adds the menu word to the user layer and drops its errors
// from the current list without a rescan. The returned error only reports
// a persistence failure; the word is accepted either way.
func (s *Session) AddToDictionary(ctx context.Context) error {
	if s.menu == nil {
		return nil
	}
	word := s.menu.Error.Word
	s.closeMenu()

	err := s.engine.Dictionary().AddUserTerm(ctx, word)
	if err != nil {
		s.log.Warn().Err(err).Str("word", word).Msg("user dictionary not saved")
	}

	target := dictionary.Normalize(word)
	kept := s.errors[:0]
	for _, e := range s.errors {
		if dictionary.Normalize(e.Word) != target {
			kept = append(kept, e)
		}
	}
	s.errors = kept
	s.notify()
	return err
}

// Ignore closes the menu without touching text or dictionary. The word is
// flagged again on the next rescan.
func (s *Session) Ignore() {
	if s.menu == nil {
		return
	}
	s.closeMenu()
	s.notify()
}

// Dismiss handles an interaction outside the menu and behaves like Ignore.
func (s *Session) Dismiss() { s.Ignore() }

func (s *Session) closeMenu() {
	s.menu = nil
	if s.state == MenuOpen {
		s.state = Scanned
	}
}

func (s *Session) notify() {
	if s.observer != nil {
		s.observer(s.Snapshot())
	}
}
