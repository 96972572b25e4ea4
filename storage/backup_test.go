package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	backupPath := filepath.Join(t.TempDir(), "backup.json")

	source := newTestStore(t)
	defer source.Close()
	want := []StoredPlaylist{samplePlaylist("PL1"), samplePlaylist("PL2")}
	if err := source.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	snapshot, err := ExportBackup(ctx, source, backupPath)
	if err != nil {
		t.Fatalf("ExportBackup() error = %v", err)
	}
	if snapshot.Version == "" || snapshot.CreatedAt == "" {
		t.Errorf("ExportBackup() snapshot missing version/createdAt: %+v", snapshot)
	}
	if _, err := time.Parse(time.RFC3339, snapshot.CreatedAt); err != nil {
		t.Errorf("CreatedAt %q is not RFC3339: %v", snapshot.CreatedAt, err)
	}

	target := newTestStore(t)
	defer target.Close()
	imported, err := ImportBackup(ctx, target, backupPath)
	if err != nil {
		t.Fatalf("ImportBackup() error = %v", err)
	}
	if len(imported.Playlists) != 2 {
		t.Fatalf("ImportBackup() carried %d playlists, want 2", len(imported.Playlists))
	}

	got, err := target.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "PL1" || got[1].ID != "PL2" {
		t.Errorf("imported store = %+v, want the exported records", got)
	}
	if len(got[0].Videos) != 2 {
		t.Errorf("imported playlist lost its videos: %d, want 2", len(got[0].Videos))
	}
}

// TestExportBackupFieldSet pins the interchange format: exactly three
// top-level fields with these names.
func TestExportBackupFieldSet(t *testing.T) {
	ctx := context.Background()
	backupPath := filepath.Join(t.TempDir(), "backup.json")

	store := newTestStore(t)
	defer store.Close()
	if _, err := ExportBackup(ctx, store, backupPath); err != nil {
		t.Fatalf("ExportBackup() error = %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(fields) != 3 {
		t.Errorf("backup document has %d top-level fields, want 3: %v", len(fields), fields)
	}
	for _, key := range []string{"playlists", "createdAt", "version"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("backup document missing field %q", key)
		}
	}
}

func TestImportBackupMissingVersion(t *testing.T) {
	ctx := context.Background()
	backupPath := filepath.Join(t.TempDir(), "bad.json")

	doc := `{"playlists": [], "createdAt": "2026-08-30T00:00:00Z"}`
	if err := os.WriteFile(backupPath, []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store := newTestStore(t)
	defer store.Close()
	existing := []StoredPlaylist{samplePlaylist("PLkeep")}
	if err := store.Save(ctx, existing); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	_, err := ImportBackup(ctx, store, backupPath)
	if !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("ImportBackup() error = %v, want ErrInvalidBackup", err)
	}

	// The failed import must leave the store untouched.
	got, _ := store.Load(ctx)
	if len(got) != 1 || got[0].ID != "PLkeep" {
		t.Errorf("store changed by failed import: %+v", got)
	}
}

func TestParseBackup(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			"valid",
			`{"playlists": [{"id": "PL1"}], "createdAt": "2026-08-30T00:00:00Z", "version": "1.0.0"}`,
			false,
		},
		{
			"valid empty playlists",
			`{"playlists": [], "createdAt": "2026-08-30T00:00:00Z", "version": "1.0.0"}`,
			false,
		},
		{"missing playlists", `{"createdAt": "2026-08-30T00:00:00Z", "version": "1.0.0"}`, true},
		{"missing createdAt", `{"playlists": [], "version": "1.0.0"}`, true},
		{"missing version", `{"playlists": [], "createdAt": "2026-08-30T00:00:00Z"}`, true},
		{"empty version string", `{"playlists": [], "createdAt": "2026-08-30T00:00:00Z", "version": ""}`, true},
		{"not json", `{oops`, true},
		{"not an object", `[1, 2, 3]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := ParseBackup([]byte(tt.doc))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBackup) {
					t.Errorf("ParseBackup() error = %v, want ErrInvalidBackup", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBackup() error = %v", err)
			}
			if snapshot.Version == "" {
				t.Error("ParseBackup() returned empty version for valid document")
			}
		})
	}
}
