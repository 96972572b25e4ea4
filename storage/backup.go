package storage

import (
	"context"
	"encoding/json"
	"os"
	"time"
)

// backupVersion is the backup document format version.
const backupVersion = "1.0.0"

// ExportBackup bundles the store's full contents into a backup document and
// writes it to path. The snapshot that was written is returned.
func ExportBackup(ctx context.Context, store PlaylistStore, path string) (*BackupSnapshot, error) {
	playlists, err := store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "export", Entity: "backup", Err: err}
	}

	snapshot := &BackupSnapshot{
		Playlists: playlists,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Version:   backupVersion,
	}

	writer, err := NewAtomicWriter(path)
	if err != nil {
		return nil, &StorageError{Op: "export", Entity: "backup", ID: path, Err: err}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		writer.Abort()
		return nil, &StorageError{Op: "export", Entity: "backup", ID: path, Err: err}
	}
	if err := writer.Commit(); err != nil {
		return nil, &StorageError{Op: "export", Entity: "backup", ID: path, Err: err}
	}

	return snapshot, nil
}

// ImportBackup reads and validates a backup document, then fully replaces
// the store's contents with it. There are no merge semantics. Validation
// failures return ErrInvalidBackup and leave the store untouched.
func ImportBackup(ctx context.Context, store PlaylistStore, path string) (*BackupSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Op: "import", Entity: "backup", ID: path, Err: err}
	}

	snapshot, err := ParseBackup(data)
	if err != nil {
		return nil, err
	}

	if err := store.Save(ctx, snapshot.Playlists); err != nil {
		return nil, &StorageError{Op: "import", Entity: "backup", ID: path, Err: err}
	}

	return snapshot, nil
}

// ParseBackup decodes a backup document, requiring all three top-level
// fields (playlists, createdAt, version) to be present. Absence of any one
// of them is a format error, not a soft default.
func ParseBackup(data []byte) (*BackupSnapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, ErrInvalidBackup
	}

	for _, key := range []string{"playlists", "createdAt", "version"} {
		if _, ok := fields[key]; !ok {
			return nil, ErrInvalidBackup
		}
	}

	snapshot := &BackupSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, ErrInvalidBackup
	}
	if snapshot.CreatedAt == "" || snapshot.Version == "" {
		return nil, ErrInvalidBackup
	}

	return snapshot, nil
}
