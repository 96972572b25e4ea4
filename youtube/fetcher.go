package youtube

import (
	"context"
	"log"
	"sync"
)

// placeholderThumbnail is shown for entries whose primary listing carried no
// thumbnail.
const placeholderThumbnail = "https://via.placeholder.com/120x90/cccccc/666666?text=Unavailable"

// defaultLookupConcurrency bounds concurrent per-video duration lookups
// within a single page.
const defaultLookupConcurrency = 8

// Fetcher retrieves a playlist's full item list across pages, enriching each
// entry with its playback duration.
type Fetcher struct {
	api PlaylistAPI

	// LookupConcurrency bounds the number of in-flight duration lookups per
	// page. Values < 1 fall back to the default.
	LookupConcurrency int
}

// NewFetcher creates a fetcher over the given remote API.
func NewFetcher(api PlaylistAPI) *Fetcher {
	return &Fetcher{api: api, LookupConcurrency: defaultLookupConcurrency}
}

// FetchAllItems retrieves every playlist entry, following the page token
// until a page carries none. Ordinal positions advance by the size of each
// page, so numbering is contiguous from 1 with no gaps or duplicates.
//
// A page fetch failure aborts pagination and returns whatever was
// accumulated; it is not an error. Callers detect a short run only by
// comparing len(result) against the playlist's declared count.
func (f *Fetcher) FetchAllItems(ctx context.Context, playlistID string) []Video {
	var videos []Video

	pageToken := ""
	startOrdinal := 1
	for {
		page, err := f.api.PlaylistPage(ctx, playlistID, pageToken)
		if err != nil {
			log.Printf("ytlens: page fetch for %s aborted at ordinal %d, keeping %d items: %v",
				playlistID, startOrdinal, len(videos), err)
			return videos
		}

		videos = append(videos, f.enrichPage(ctx, playlistID, startOrdinal, page.Entries)...)
		startOrdinal += len(page.Entries)

		if page.NextPageToken == "" {
			return videos
		}
		pageToken = page.NextPageToken
	}
}

// enrichPage resolves one page of raw entries into Videos. Duration lookups
// for the page run concurrently under a semaphore; each result is written to
// its entry's slot, so the returned slice keeps the page's original order.
//
// Availability is decided from the primary listing's thumbnail alone, before
// any duration lookup runs, and a failed lookup does not change it.
func (f *Fetcher) enrichPage(ctx context.Context, playlistID string, startOrdinal int, entries []PageEntry) []Video {
	videos := make([]Video, len(entries))
	for i, entry := range entries {
		videos[i] = Video{
			ID:          playlistID + "-" + entry.VideoID,
			Index:       startOrdinal + i,
			Title:       entry.Title,
			Thumbnail:   entry.Thumbnail,
			Unavailable: !entry.HasThumbnail,
			VideoID:     entry.VideoID,
		}
		if !entry.HasThumbnail {
			videos[i].Thumbnail = placeholderThumbnail
		}
	}

	limit := f.LookupConcurrency
	if limit < 1 {
		limit = defaultLookupConcurrency
	}
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i := range videos {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			duration, err := f.api.VideoDuration(ctx, videos[i].VideoID)
			if err != nil {
				duration = DurationUnavailable
			}
			videos[i].Duration = duration
		}(i)
	}
	wg.Wait()

	return videos
}
