// Package store provides profile persistence for ProxyRun.
package store

import (
	"errors"

	"github.com/lazyvibe/proxyrun/internal/model"
)

var (
	// ErrNameEmpty is returned when adding a profile whose trimmed name is empty.
	ErrNameEmpty = errors.New("profile name must not be empty")
	// ErrNoSelection is returned when an update or delete has no profile index.
	ErrNoSelection = errors.New("no profile selected")
)

// NoIndex marks the absence of a profile selection.
const NoIndex = -1

// PersistError wraps an I/O failure while writing the profile file.
// The in-memory collection keeps its post-mutation state when this occurs.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return "failed to persist profiles: " + e.Err.Error()
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// ProfileStore defines the interface for profile persistence.
//
// Profiles are identified by their position in the collection; every mutation
// rewrites the whole persisted list.
type ProfileStore interface {
	// Profiles returns a copy of the in-memory collection in stored order.
	Profiles() []model.Profile
	// Add appends a profile and persists the collection.
	Add(p model.Profile) error
	// Update overwrites the profile at index and persists the collection.
	Update(index int, p model.Profile) error
	// Delete removes the profile at index and persists the collection.
	Delete(index int) error
}
