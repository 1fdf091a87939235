// Package tracker persists the list of tracked Markdown files.
//
// The tracked list lives in a JSON file, by default
// ~/.checkmarks_config.json, shaped as {"lists": ["/abs/path.md", ...]}.
// Two legacy shapes are accepted on load and rewritten to the modern shape
// on the next save: a bare JSON array of paths, and an object keyed by
// "tracked_files". A malformed file loads as an empty list.
//
// Saves overwrite the whole file and are not transactional. Concurrent
// invocations race on read-modify-write; the last writer wins. This matches
// the expected single-user, sequential usage and is a documented risk.
package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nibzard/checkmarks-go/internal/checklist"
	"github.com/nibzard/checkmarks-go/internal/config"
)

// DefaultConfigFileName is the dotfile holding the tracked list.
const DefaultConfigFileName = ".checkmarks_config.json"

// DefaultConfigPath returns the tracked-list file in the user's home
// directory, falling back to the bare file name when home is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, DefaultConfigFileName)
}

// Store reads and writes the tracked-list file at a fixed path.
type Store struct {
	path  string
	lists []string
}

// OpenStore loads the tracked list from path. A missing or malformed file
// yields an empty list; OpenStore never fails.
func OpenStore(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	s.lists = decodeTracked(data)
	return s
}

// decodeTracked accepts the modern object shape, the legacy bare array, and
// the legacy tracked_files key. Anything else decodes as empty.
func decodeTracked(data []byte) []string {
	var obj struct {
		Lists        []string `json:"lists"`
		TrackedFiles []string `json:"tracked_files"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Lists != nil {
			return obj.Lists
		}
		return obj.TrackedFiles
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		return legacy
	}
	return nil
}

// Save writes the tracked list back in the modern shape with 2-space
// indentation and a trailing newline.
func (s *Store) Save() error {
	out := struct {
		Lists []string `json:"lists"`
	}{Lists: s.lists}
	if out.Lists == nil {
		out.Lists = []string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(s.path, data, 0644)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Manager combines the store with stats aggregation.
type Manager struct {
	store *Store
}

// NewManager opens the tracked list at configPath, using the default
// location when configPath is empty.
func NewManager(configPath string) *Manager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return &Manager{store: OpenStore(configPath)}
}

// Normalize resolves a user-supplied path to its absolute canonical form.
func Normalize(path string) string {
	expanded := config.ExpandPath(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return filepath.Clean(expanded)
	}
	return filepath.Clean(abs)
}

// Add appends path to the tracked list if not already present. It reports
// whether the list changed; the file is only rewritten on change.
func (m *Manager) Add(path string) (bool, error) {
	norm := Normalize(path)
	for _, p := range m.store.lists {
		if p == norm {
			return false, nil
		}
	}
	m.store.lists = append(m.store.lists, norm)
	return true, m.store.Save()
}

// Remove deletes path from the tracked list if present. It reports whether
// the list changed; the file is only rewritten on change.
func (m *Manager) Remove(path string) (bool, error) {
	norm := Normalize(path)
	for i, p := range m.store.lists {
		if p == norm {
			m.store.lists = append(m.store.lists[:i], m.store.lists[i+1:]...)
			return true, m.store.Save()
		}
	}
	return false, nil
}

// Paths returns the tracked paths in insertion order.
func (m *Manager) Paths() []string {
	out := make([]string, len(m.store.lists))
	copy(out, m.store.lists)
	return out
}

// Stats parses every tracked file and returns fresh stats in list order.
func (m *Manager) Stats() []checklist.Stat {
	return checklist.BuildStats(m.Paths())
}

// ConfigPath returns the backing tracked-list file path.
func (m *Manager) ConfigPath() string {
	return m.store.path
}
