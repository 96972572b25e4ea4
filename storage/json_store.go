package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	schemaVersion = "1.0"
	lockTimeout   = 5 * time.Second
)

// JSONStore implements PlaylistStore using a single JSON file. The file is
// flock-guarded for the store's lifetime and every save rewrites the whole
// document atomically, so concurrent runs racing on the same identifier
// resolve last-writer-wins with no interleaved partial records.
type JSONStore struct {
	path string
	lock *FileLock
	data *storeData
	mu   sync.RWMutex
}

// storeData is the top-level JSON structure.
type storeData struct {
	Version   string           `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
	Playlists []StoredPlaylist `json:"playlists"`
}

// NewJSONStore creates a new JSON file store at the given path.
// If the file exists, it is loaded; otherwise an empty store is created.
func NewJSONStore(path string) (*JSONStore, error) {
	// The lock file lives next to the store file, so the directory must exist
	// before the lock is taken.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StorageError{Op: "create", Entity: "store", ID: path, Err: err}
	}

	s := &JSONStore{
		path: path,
		lock: NewFileLock(path),
	}

	if err := s.lock.Lock(lockTimeout); err != nil {
		return nil, err
	}

	if err := s.load(); err != nil {
		s.lock.Unlock()
		return nil, err
	}

	return s, nil
}

// load reads the JSON file into memory. Creates empty data if file doesn't exist.
func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = &storeData{Version: schemaVersion, UpdatedAt: time.Now()}
			// Save immediately to catch permission errors early
			return s.save()
		}
		return &StorageError{Op: "read", Entity: "store", Err: err}
	}

	s.data = &storeData{}
	if err := json.Unmarshal(data, s.data); err != nil {
		return &StorageError{Op: "read", Entity: "store", Err: ErrStorageCorrupt}
	}
	if s.data.Version == "" {
		s.data.Version = schemaVersion
	}

	return nil
}

// save persists the data to disk atomically.
func (s *JSONStore) save() error {
	s.data.UpdatedAt = time.Now()

	writer, err := NewAtomicWriter(s.path)
	if err != nil {
		return &StorageError{Op: "write", Entity: "store", Err: err}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.data); err != nil {
		writer.Abort()
		return &StorageError{Op: "write", Entity: "store", Err: err}
	}

	if err := writer.Commit(); err != nil {
		return &StorageError{Op: "write", Entity: "store", Err: err}
	}

	return nil
}

// Load returns a copy of all stored playlist records.
func (s *JSONStore) Load(ctx context.Context) ([]StoredPlaylist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlists := make([]StoredPlaylist, len(s.data.Playlists))
	copy(playlists, s.data.Playlists)
	return playlists, nil
}

// Save replaces the full record list and persists it atomically.
func (s *JSONStore) Save(ctx context.Context, playlists []StoredPlaylist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Playlists = make([]StoredPlaylist, len(playlists))
	copy(s.data.Playlists, playlists)
	return s.save()
}

// Close releases resources held by the store.
func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.Unlock()
}
