package storage

import "time"

// StoredPlaylist is the persisted projection of an analyzed playlist.
// Records are keyed by playlist ID and upserted on every successful
// analysis run.
type StoredPlaylist struct {
	// ID is the YouTube playlist ID.
	ID string `json:"id"`
	// Title is the playlist title at the time of the last run.
	Title string `json:"title"`
	// Thumbnail is the playlist thumbnail URL.
	Thumbnail string `json:"thumbnail"`
	// LastAccessed is when the playlist was last analyzed.
	LastAccessed time.Time `json:"last_accessed"`
	// VideoCount is the number of items actually retrieved on the last run.
	VideoCount int `json:"video_count"`
	// LastRunID identifies the analysis run that produced this record.
	LastRunID string `json:"last_run_id,omitempty"`
	// Videos is the full item collection, kept for offline backup/restore.
	Videos []StoredVideo `json:"videos,omitempty"`
}

// StoredVideo is the persisted projection of one playlist item.
type StoredVideo struct {
	// ID is the composite identifier "<playlistID>-<videoID>".
	ID string `json:"id"`
	// Index is the 1-based ordinal position within the playlist.
	Index int `json:"index"`
	// Thumbnail is the video thumbnail URL.
	Thumbnail string `json:"thumbnail"`
	// Title is the video title.
	Title string `json:"title"`
	// Duration is the rendered clock duration, or the unavailable sentinel.
	Duration string `json:"duration"`
	// Unavailable marks items the primary listing carried no thumbnail for.
	Unavailable bool `json:"unavailable"`
	// VideoID is the underlying YouTube video ID.
	VideoID string `json:"video_id"`
}

// BackupSnapshot is an exported bundle of the whole store. It is a
// write-once transport artifact: importing one fully replaces the persisted
// store, with no merge semantics. The JSON field names are part of the
// interchange format and must not change.
type BackupSnapshot struct {
	// Playlists are all stored playlist records.
	Playlists []StoredPlaylist `json:"playlists"`
	// CreatedAt is the snapshot creation time as an ISO-8601 string.
	CreatedAt string `json:"createdAt"`
	// Version is the backup format version (semantic version string).
	Version string `json:"version"`
}
