// Package prefs persists small string preferences (last server, username,
// channel) as JSON under the home directory so the connect form can be
// pre-filled on the next launch.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "prefs.json"

// Store is a mutex-guarded key/value preference file.
type Store struct {
	dir string

	mu     sync.Mutex
	loaded bool
	values map[string]string
}

// NewStore returns a preference store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// GetString returns the stored value for key, or fallback when absent.
func (s *Store) GetString(key, fallback string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return fallback
	}
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	return v
}

// SetString stages a value; it is not written until Save.
func (s *Store) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		s.values = make(map[string]string)
		s.loaded = true
	}
	s.values[key] = value
}

// Save flushes staged values to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, prefsFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Store) load() error {
	if s.loaded {
		return nil
	}
	s.values = make(map[string]string)
	b, err := os.ReadFile(filepath.Join(s.dir, prefsFile))
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, &s.values); err != nil {
		return err
	}
	s.loaded = true
	return nil
}
