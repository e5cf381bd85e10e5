// Package settings holds the user-facing spell-check switches and the
// stores that persist them per profile.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownKey = errors.New("settings: unknown key")

type Settings struct {
	Enabled              bool `yaml:"enabled" json:"enabled"`
	AutoCorrect          bool `yaml:"auto_correct" json:"autoCorrect"`
	UseMedicalDictionary bool `yaml:"use_medical_dictionary" json:"useMedicalDictionary"`
}

// Defaults apply when nothing has been stored yet.
func Defaults() Settings {
	return Settings{Enabled: true, AutoCorrect: false, UseMedicalDictionary: true}
}

// Store loads and saves Settings. Load never fails: missing or unreadable
// storage yields Defaults.
type Store interface {
	Load(ctx context.Context) Settings
	Save(ctx context.Context, s Settings) error
}

// Keys lists the names accepted by Set, in display order.
var Keys = []string{"enabled", "auto_correct", "use_medical_dictionary"}

// Set updates a single switch by name.
func (s *Settings) Set(key, value string) error {
	var field *bool
	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case "enabled":
		field = &s.Enabled
	case "auto_correct", "autocorrect":
		field = &s.AutoCorrect
	case "use_medical_dictionary", "medical":
		field = &s.UseMedicalDictionary
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("settings: %s: %w", key, err)
	}
	*field = b
	return nil
}

// Get returns a single switch by name.
func (s Settings) Get(key string) (bool, error) {
	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case "enabled":
		return s.Enabled, nil
	case "auto_correct", "autocorrect":
		return s.AutoCorrect, nil
	case "use_medical_dictionary", "medical":
		return s.UseMedicalDictionary, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// MemoryStore keeps Settings in process. The zero value holds Defaults.
type MemoryStore struct {
	s   Settings
	set bool
}

func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{s: s, set: true}
}

func (m *MemoryStore) Load(context.Context) Settings {
	if !m.set {
		return Defaults()
	}
	return m.s
}

func (m *MemoryStore) Save(_ context.Context, s Settings) error {
	m.s, m.set = s, true
	return nil
}
