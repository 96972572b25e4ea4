// Package ytlens analyzes public YouTube playlists.
//
// It retrieves an enriched, ordered listing of a playlist's items (title,
// thumbnail, duration, availability), derives aggregate statistics, and keeps
// a local JSON store of analyzed playlists with backup export/import.
//
// Overview
//
// The core pipeline lives in the youtube sub-package:
//
//   - youtube.DataAPI: the three YouTube Data API v3 calls (playlist
//     metadata, one page of playlist items, a video's duration)
//   - youtube.Fetcher: paginated item retrieval with per-page concurrent
//     duration enrichment
//   - youtube.Aggregate: summary statistics over a resolved item list
//   - youtube.AnalysisManager: orchestrates one analysis run and persists
//     the snapshot
//
// Quick Start
//
// Analyze a playlist:
//
//	ctx := context.Background()
//	api, err := youtube.NewDataAPI(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := storage.NewJSONStore("playlists.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	manager := youtube.NewAnalysisManager(api, store)
//	result, err := manager.Analyze(ctx, "PLxxxxxxxx", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s: %d videos, %s total\n",
//		result.Info.Title, result.Stats.TotalVideos, result.Stats.TotalDuration)
//
// Re-analyzing the same playlist right after a successful run returns
// ErrConfirmationRequired; confirm by passing AnalyzeOptions{Force: true}.
//
// Configuration
//
// ytlens uses a configuration system that loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (ytlens.json or ~/.config/ytlens/ytlens.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTLENS_API_KEY: YouTube Data API key (overrides the stored key file)
//   - YTLENS_STORE_PATH: Playlist store location
//   - YTLENS_KEY_PATH: Obfuscated API key file location
//   - YTLENS_CALL_TIMEOUT: Timeout for one analysis run's remote calls
//   - YTLENS_LOOKUP_CONCURRENCY: Concurrent duration lookups per page
//
// The API key is stored obfuscated (reversible per-byte XOR) when saved via
// the key file. That is not encryption; it only keeps the raw value out of
// clear text at rest.
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, ytlens.ErrPlaylistNotFound) {
//		fmt.Println("Playlist not found")
//	}
//
//	var storErr *ytlens.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("%s %s failed: %v\n", storErr.Op, storErr.Entity, storErr.Err)
//	}
//
// A failed page or duration lookup mid-run is not an error: the run completes
// with whatever was gathered, and the shortfall against the playlist's
// declared item count is the only signal.
//
// Sub-packages
//
//   - youtube: Data API client, pagination, aggregation, orchestration
//   - storage: JSON playlist store and backup export/import
//   - config: configuration and the obfuscated API key file
//
package ytlens
