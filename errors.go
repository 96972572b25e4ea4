package ytlens

import (
	"ytlens/config"
	"ytlens/storage"
	"ytlens/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytlens.ErrPlaylistNotFound) {
//		fmt.Println("Playlist not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var apiErr *ytlens.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed: %v\n", apiErr.Op, apiErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// APIError wraps errors from YouTube Data API calls.
	APIError = youtube.APIError
	// StorageError wraps errors during storage operations.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrPlaylistNotFound indicates the playlist metadata lookup yielded nothing.
	ErrPlaylistNotFound = youtube.ErrPlaylistNotFound
	// ErrConfirmationRequired indicates re-analysis needs caller confirmation.
	ErrConfirmationRequired = youtube.ErrConfirmationRequired
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = youtube.ErrMissingAPIKey

	// Storage errors
	// ErrNotFound indicates a record was not found in storage.
	ErrNotFound = storage.ErrNotFound
	// ErrStorageCorrupt indicates data corruption was detected.
	ErrStorageCorrupt = storage.ErrStorageCorrupt
	// ErrLockTimeout indicates a timeout acquiring a file lock.
	ErrLockTimeout = storage.ErrLockTimeout
	// ErrInvalidBackup indicates a malformed or incomplete backup document.
	ErrInvalidBackup = storage.ErrInvalidBackup

	// ErrNoAPIKey indicates no API key has been stored locally.
	ErrNoAPIKey = config.ErrNoAPIKey
)
