// Package prefs persists window preferences between runs. The on-disk
// location is keyed by an application identity triple so multiple widgets
// from the same vendor do not collide.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const prefsFile = "window.yml"

// Identity names the application for preference storage.
type Identity struct {
	Vendor string
	Author string
	App    string
}

// Window is the persisted geometry. This is the only user data the widget
// stores.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
}

// Store loads and saves a Window for one Identity.
type Store struct {
	path string
}

// NewStore creates a store rooted at the user config directory, e.g.
// ~/.config/<vendor>/<author>/<app>/window.yml on Linux.
func NewStore(id Identity) (*Store, error) {
	if id.Vendor == "" || id.Author == "" || id.App == "" {
		return nil, fmt.Errorf("prefs: identity triple must be fully specified, got %+v", id)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("prefs: finding config directory: %w", err)
	}
	return &Store{
		path: filepath.Join(base, id.Vendor, id.Author, id.App, prefsFile),
	}, nil
}

// NewStoreAt creates a store over an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved window geometry. A missing file is not an error; it
// returns the provided fallback.
func (s *Store) Load(fallback Window) (Window, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("prefs: reading %s: %w", s.path, err)
	}

	var w Window
	if err := yaml.Unmarshal(data, &w); err != nil {
		return fallback, fmt.Errorf("prefs: parsing %s: %w", s.path, err)
	}
	return w, nil
}

// Save writes the window geometry, creating parent directories as needed.
func (s *Store) Save(w Window) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("prefs: encoding window preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: creating %s: %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: writing %s: %w", s.path, err)
	}
	return nil
}
