package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyvibe/proxyrun/internal/model"
)

// fileData represents the JSON file structure.
type fileData struct {
	Profiles []model.Profile `json:"profiles"`
}

// JSONStore implements ProfileStore using a single JSON file.
type JSONStore struct {
	path     string
	profiles []model.Profile
}

// NewJSONStore creates a store backed by <configDir>/profiles.json and loads
// any existing profiles. A missing, unreadable, or corrupt file yields an
// empty collection; corrupt state is never fatal.
func NewJSONStore(configDir string) *JSONStore {
	s := &JSONStore{path: filepath.Join(configDir, "profiles.json")}
	s.load()
	return s
}

// load reads the profile file, tolerating every failure as "no profiles".
func (s *JSONStore) load() {
	s.profiles = []model.Profile{}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var data fileData
	if err := json.Unmarshal(content, &data); err != nil {
		return
	}
	if data.Profiles != nil {
		s.profiles = data.Profiles
	}
}

// persist writes the whole collection back to disk, creating the containing
// directory if needed.
func (s *JSONStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &PersistError{Err: err}
	}

	content, err := json.MarshalIndent(fileData{Profiles: s.profiles}, "", "  ")
	if err != nil {
		return &PersistError{Err: err}
	}

	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}

// Profiles returns a copy of the collection in stored order.
func (s *JSONStore) Profiles() []model.Profile {
	result := make([]model.Profile, len(s.profiles))
	copy(result, s.profiles)
	return result
}

// Add appends the profile and persists the collection. The append is skipped
// entirely when the trimmed name is empty.
func (s *JSONStore) Add(p model.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameEmpty
	}

	s.profiles = append(s.profiles, p)
	return s.persist()
}

// Update overwrites the profile at index and persists the collection.
// An out-of-range index leaves the collection untouched but the write still
// happens, mirroring the original launcher's behavior.
func (s *JSONStore) Update(index int, p model.Profile) error {
	if index == NoIndex {
		return ErrNoSelection
	}

	if index >= 0 && index < len(s.profiles) {
		s.profiles[index] = p
	}
	return s.persist()
}

// Delete removes the profile at index and persists the collection. Like
// Update, an out-of-range index is a mutation no-op but persists anyway.
func (s *JSONStore) Delete(index int) error {
	if index == NoIndex {
		return ErrNoSelection
	}

	if index >= 0 && index < len(s.profiles) {
		s.profiles = append(s.profiles[:index], s.profiles[index+1:]...)
	}
	return s.persist()
}

// Path returns the profile file location.
func (s *JSONStore) Path() string {
	return s.path
}
