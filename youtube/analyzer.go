package youtube

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ytlens/storage"
)

// Phase is the analysis manager's position in one run.
type Phase int

// Analysis phases. Error is terminal and reachable only from
// FetchingMetadata: item-fetch failures degrade to a partial result and the
// run still persists.
const (
	PhaseIdle Phase = iota
	PhaseFetchingMetadata
	PhaseFetchingItems
	PhasePersisting
	PhaseDone
	PhaseError
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetchingMetadata:
		return "fetching-metadata"
	case PhaseFetchingItems:
		return "fetching-items"
	case PhasePersisting:
		return "persisting"
	case PhaseDone:
		return "done"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// AnalyzeOptions configures a single analysis run.
type AnalyzeOptions struct {
	// Force bypasses the re-analysis confirmation gate.
	Force bool
}

// AnalysisResult is the outcome of one analysis run.
type AnalysisResult struct {
	// RunID uniquely identifies this run.
	RunID string
	// Info is the playlist's metadata.
	Info *PlaylistInfo
	// Videos is the resolved item list in ordinal order. It may be shorter
	// than Info.VideoCount after a partial fetch.
	Videos []Video
	// Stats is the aggregate summary of Videos.
	Stats Stats
}

// AnalysisManager orchestrates playlist analysis runs: metadata fetch, full
// item retrieval, aggregation, and persistence of the snapshot. It is the
// only writer of the playlist store, and each write replaces the whole
// record for the playlist's identifier.
type AnalysisManager struct {
	api     PlaylistAPI
	fetcher *Fetcher
	store   storage.PlaylistStore

	mu             sync.Mutex
	phase          Phase
	lastPlaylistID string
	lastItemCount  int
}

// NewAnalysisManager creates a manager over the given remote API and store.
func NewAnalysisManager(api PlaylistAPI, store storage.PlaylistStore) *AnalysisManager {
	return &AnalysisManager{
		api:     api,
		fetcher: NewFetcher(api),
		store:   store,
		phase:   PhaseIdle,
	}
}

// SetLookupConcurrency bounds concurrent per-page duration lookups.
func (m *AnalysisManager) SetLookupConcurrency(n int) {
	m.fetcher.LookupConcurrency = n
}

// Phase reports the manager's current phase.
func (m *AnalysisManager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

func (m *AnalysisManager) setPhase(p Phase) {
	m.mu.Lock()
	m.phase = p
	m.mu.Unlock()
}

// Analyze runs the full ingestion pipeline for one playlist.
//
// Re-running the playlist analyzed by the immediately preceding completed
// run, when that run produced a non-empty item list, returns
// ErrConfirmationRequired before any remote call is made; callers confirm by
// retrying with opts.Force. A different identifier, or an empty prior
// result, bypasses the gate.
//
// A metadata lookup failure ends the run with ErrPlaylistNotFound and the
// store untouched. Item-fetch failures do not fail the run: whatever was
// collected is aggregated and persisted, and the shortfall against
// Info.VideoCount is the only signal.
func (m *AnalysisManager) Analyze(ctx context.Context, playlistID string, opts *AnalyzeOptions) (*AnalysisResult, error) {
	if opts == nil {
		opts = &AnalyzeOptions{}
	}

	m.mu.Lock()
	if !opts.Force && playlistID == m.lastPlaylistID && m.lastItemCount > 0 {
		m.mu.Unlock()
		return nil, ErrConfirmationRequired
	}
	m.mu.Unlock()

	runID := uuid.NewString()
	log.Printf("ytlens: run %s analyzing playlist %s", runID, playlistID)

	m.setPhase(PhaseFetchingMetadata)
	info, err := m.api.PlaylistInfo(ctx, playlistID)
	if err != nil {
		m.setPhase(PhaseError)
		return nil, err
	}

	m.setPhase(PhaseFetchingItems)
	videos := m.fetcher.FetchAllItems(ctx, playlistID)
	if len(videos) < info.VideoCount {
		log.Printf("ytlens: run %s retrieved %d of %d declared items for %s",
			runID, len(videos), info.VideoCount, playlistID)
	}

	result := &AnalysisResult{
		RunID:  runID,
		Info:   info,
		Videos: videos,
		Stats:  Aggregate(videos),
	}

	m.setPhase(PhasePersisting)
	if err := m.persist(ctx, runID, info, videos); err != nil {
		// Persistence problems don't fail the run; the analysis result is
		// still good and the next run will overwrite the record anyway.
		log.Printf("ytlens: run %s failed to persist playlist %s: %v", runID, playlistID, err)
	}

	m.mu.Lock()
	m.lastPlaylistID = playlistID
	m.lastItemCount = len(videos)
	m.phase = PhaseDone
	m.mu.Unlock()

	return result, nil
}

// persist upserts the playlist's stored record: load the full list, replace
// or append the one record, write the full list back.
func (m *AnalysisManager) persist(ctx context.Context, runID string, info *PlaylistInfo, videos []Video) error {
	playlists, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	record := storage.StoredPlaylist{
		ID:           info.ID,
		Title:        info.Title,
		Thumbnail:    info.Thumbnail,
		LastAccessed: time.Now(),
		VideoCount:   len(videos),
		LastRunID:    runID,
		Videos:       make([]storage.StoredVideo, len(videos)),
	}
	for i, v := range videos {
		record.Videos[i] = storage.StoredVideo{
			ID:          v.ID,
			Index:       v.Index,
			Thumbnail:   v.Thumbnail,
			Title:       v.Title,
			Duration:    v.Duration,
			Unavailable: v.Unavailable,
			VideoID:     v.VideoID,
		}
	}

	return m.store.Save(ctx, storage.Upsert(playlists, record))
}
