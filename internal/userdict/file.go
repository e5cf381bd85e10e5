package userdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// FileStore keeps the user dictionary as a JSON document on local disk.
type FileStore struct {
	path    string
	profile string
	lock    *flock.Flock
	log     zerolog.Logger
}

func NewFileStore(path, profile string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, profile: profile, lock: flock.New(path + ".lock"), log: log}
}

// Load never reports corrupt content as an error; it logs and returns an
// empty list instead.
func (f *FileStore) Load(context.Context) ([]string, error) {
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err := f.lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock user dictionary: %w", err)
	}
	defer f.lock.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("user dictionary unreadable")
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		f.log.Warn().Str("path", f.path).Msg("user dictionary corrupt, ignoring")
		return nil, nil
	}
	words := gjson.GetBytes(data, "words")
	if !words.IsArray() {
		f.log.Warn().Str("path", f.path).Msg("user dictionary has no words array, ignoring")
		return nil, nil
	}
	var out []string
	for _, w := range words.Array() {
		if w.Type == gjson.String {
			out = append(out, w.String())
		}
	}
	return clean(out), nil
}

func (f *FileStore) Save(_ context.Context, terms []string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create user dictionary dir: %w", err)
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock user dictionary: %w", err)
	}
	defer f.lock.Unlock()

	data, err := json.MarshalIndent(Dict{Profile: f.profile, Words: append([]string{}, terms...)}, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write user dictionary: %w", err)
	}
	return os.Rename(tmp, f.path)
}
