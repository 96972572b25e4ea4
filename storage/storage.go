// Package storage persists analyzed playlists to a local JSON document and
// handles backup export/import of the full store.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common storage conditions.
var (
	// ErrNotFound indicates the requested record was not found.
	ErrNotFound = errors.New("storage: not found")
	// ErrStorageCorrupt indicates data corruption was detected.
	ErrStorageCorrupt = errors.New("storage: data corruption detected")
	// ErrLockTimeout indicates a timeout acquiring a file lock.
	ErrLockTimeout = errors.New("storage: lock acquisition timeout")
	// ErrInvalidBackup indicates a backup document was malformed or missing
	// one of its required top-level fields. The store is left untouched.
	ErrInvalidBackup = errors.New("storage: invalid backup document")
)

// StorageError wraps storage errors with operation and entity context.
// Use errors.As() to extract this error type and get operation details:
//
//	var storErr *storage.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("Failed to %s %s %s: %v\n", storErr.Op, storErr.Entity, storErr.ID, storErr.Err)
//	}
type StorageError struct {
	// Op is the operation that failed ("read", "write", "lock", "import").
	Op string
	// Entity is the entity type ("store", "backup", "playlist").
	Entity string
	// ID is the entity ID if applicable.
	ID string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the storage error.
func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("storage: %s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *StorageError) Unwrap() error { return e.Err }

// PlaylistStore is the durable playlist collaborator consumed by the
// analysis manager. The contract is whole-list replacement: callers read the
// full list, modify one record, and write the full list back. Implementations
// must make each Save atomic so a record is never half-written.
type PlaylistStore interface {
	// Load returns all stored playlist records.
	Load(ctx context.Context) ([]StoredPlaylist, error)
	// Save replaces the full set of stored playlist records.
	Save(ctx context.Context, playlists []StoredPlaylist) error
	// Close releases any resources held by the store.
	Close() error
}

// Upsert replaces the record matching playlist.ID in the given list, or
// appends it when absent. At most one record exists per identifier.
func Upsert(playlists []StoredPlaylist, playlist StoredPlaylist) []StoredPlaylist {
	for i := range playlists {
		if playlists[i].ID == playlist.ID {
			playlists[i] = playlist
			return playlists
		}
	}
	return append(playlists, playlist)
}
