package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileStore keeps Settings in a YAML file guarded by a sibling lock file.
type FileStore struct {
	path string
	lock *flock.Flock
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, lock: flock.New(path + ".lock"), log: log}
}

func (f *FileStore) Load(context.Context) Settings {
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		return Defaults()
	}
	if err := f.lock.RLock(); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("settings lock failed, using defaults")
		return Defaults()
	}
	defer f.lock.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults()
	}
	if err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("settings unreadable, using defaults")
		return Defaults()
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("settings corrupt, using defaults")
		return Defaults()
	}
	return s
}

func (f *FileStore) Save(_ context.Context, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer f.lock.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return os.Rename(tmp, f.path)
}
