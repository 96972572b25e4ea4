package youtube

import (
	"context"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// pageSize is the fixed playlistItems page size. The Data API caps pages at 50.
const pageSize = 50

// DataAPI implements PlaylistAPI using the YouTube Data API v3.
// Calls are issued once each; failures are surfaced to the caller without
// retries so a partial run stays cheap and predictable.
type DataAPI struct {
	service *youtube.Service
}

// NewDataAPI creates a Data API client keyed by the given API key.
func NewDataAPI(ctx context.Context, apiKey string) (*DataAPI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &APIError{Op: "new service", Err: err}
	}

	return &DataAPI{service: service}, nil
}

// PlaylistInfo fetches a playlist's metadata in a single playlists.list call.
// An empty result set, a transport failure, or a malformed response all map
// to ErrPlaylistNotFound.
func (a *DataAPI) PlaylistInfo(ctx context.Context, playlistID string) (*PlaylistInfo, error) {
	call := a.service.Playlists.List([]string{"snippet", "contentDetails"}).
		Id(playlistID).
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		log.Printf("ytlens: playlists.list %s failed: %v", playlistID, err)
		return nil, ErrPlaylistNotFound
	}
	if len(resp.Items) == 0 {
		return nil, ErrPlaylistNotFound
	}

	item := resp.Items[0]
	info := &PlaylistInfo{ID: item.Id}

	if item.Snippet != nil {
		info.Title = item.Snippet.Title
		info.Description = item.Snippet.Description
		info.ChannelTitle = item.Snippet.ChannelTitle
		info.Thumbnail = bestThumbnail(item.Snippet.Thumbnails)
	}
	if item.ContentDetails != nil {
		info.VideoCount = int(item.ContentDetails.ItemCount)
	}

	return info, nil
}

// bestThumbnail picks the highest-resolution thumbnail available, falling
// back to the default resolution, falling back to an empty string.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil && t.High.Url != "" {
		return t.High.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

// PlaylistPage fetches one page of playlist entries via playlistItems.list.
func (a *DataAPI) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*ItemPage, error) {
	call := a.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		PageToken(pageToken).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, &APIError{Op: "playlistItems.list", PlaylistID: playlistID, Err: err}
	}

	page := &ItemPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}

		entry := PageEntry{Title: item.Snippet.Title}
		if item.Snippet.ResourceId != nil {
			entry.VideoID = item.Snippet.ResourceId.VideoId
		}
		// Availability is inferred from the primary listing payload only:
		// no default thumbnail means the video is treated as unavailable.
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			entry.Thumbnail = item.Snippet.Thumbnails.Default.Url
			entry.HasThumbnail = true
		}

		page.Entries = append(page.Entries, entry)
	}

	return page, nil
}

// VideoDuration resolves a video's duration via videos.list contentDetails.
// An empty result set yields the DurationUnavailable sentinel with a nil
// error; only transport failures return an error.
func (a *DataAPI) VideoDuration(ctx context.Context, videoID string) (string, error) {
	call := a.service.Videos.List([]string{"contentDetails"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return DurationUnavailable, &APIError{Op: "videos.list", Err: err}
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil {
		return DurationUnavailable, nil
	}

	return FormatDuration(resp.Items[0].ContentDetails.Duration), nil
}
