// Package youtube provides playlist metadata retrieval, paginated item
// listing, and playlist analysis over the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"net/url"
)

// Sentinel errors for playlist analysis operations.
var (
	// ErrPlaylistNotFound indicates the playlist metadata lookup returned no
	// result. Transport failures and malformed responses surface the same way;
	// callers treat this as a user-visible condition, not a crash.
	ErrPlaylistNotFound = errors.New("youtube: playlist not found")
	// ErrConfirmationRequired indicates re-analysis of the same playlist was
	// requested and the caller must confirm before remote calls are issued.
	ErrConfirmationRequired = errors.New("youtube: re-analysis requires confirmation")
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("youtube: api key required")
)

// PlaylistAPI is the remote playlist interface consumed by the fetcher and
// the analysis manager. It maps one-to-one onto the three Data API calls;
// implementations must not retry.
type PlaylistAPI interface {
	// PlaylistInfo fetches a playlist's descriptive metadata in a single call.
	// It returns ErrPlaylistNotFound when the result set is empty or the call
	// fails.
	PlaylistInfo(ctx context.Context, playlistID string) (*PlaylistInfo, error)

	// PlaylistPage fetches one bounded page of playlist entries. An empty
	// pageToken requests the first page; the returned NextPageToken is empty
	// on the last page.
	PlaylistPage(ctx context.Context, playlistID, pageToken string) (*ItemPage, error)

	// VideoDuration resolves a video's playback duration as a rendered clock
	// string. It returns DurationUnavailable (with a nil error) when the
	// result set is empty, and an error only on transport failure.
	VideoDuration(ctx context.Context, videoID string) (string, error)
}

// PlaylistInfo is a playlist's descriptive metadata, re-fetched wholesale on
// each analysis run.
type PlaylistInfo struct {
	// ID is the YouTube playlist ID (e.g. "PLxxxxxxxx").
	ID string `json:"id"`
	// Title is the playlist title.
	Title string `json:"title"`
	// Description is the playlist description.
	Description string `json:"description,omitempty"`
	// Thumbnail is the highest-resolution thumbnail URL available.
	Thumbnail string `json:"thumbnail"`
	// ChannelTitle is the owning channel's display name.
	ChannelTitle string `json:"channel_title"`
	// VideoCount is the item count the playlist declares. The number of items
	// actually retrieved may be lower after a partial fetch.
	VideoCount int `json:"video_count"`
}

// Video is one resolved playlist item.
type Video struct {
	// ID is the composite identifier "<playlistID>-<videoID>".
	ID string `json:"id"`
	// Index is the 1-based ordinal position within the playlist, contiguous
	// across pages.
	Index int `json:"index"`
	// Thumbnail is the video thumbnail URL, or a placeholder when the primary
	// listing carried none.
	Thumbnail string `json:"thumbnail"`
	// Title is the video title.
	Title string `json:"title"`
	// Duration is the rendered clock duration, or DurationUnavailable.
	Duration string `json:"duration"`
	// Unavailable is true exactly when the primary listing payload carried no
	// thumbnail for this entry. This is how the upstream system infers
	// deletion or privacy; it is an approximation, and it is intentionally
	// independent of whether the duration lookup succeeded.
	Unavailable bool `json:"unavailable"`
	// VideoID is the underlying YouTube video ID.
	VideoID string `json:"video_id"`
}

// VideoURL returns the full YouTube watch URL for this video.
func (v Video) VideoURL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoID
}

// ItemPage is one raw page of playlist entries.
type ItemPage struct {
	// Entries are the page's items in listing order.
	Entries []PageEntry
	// NextPageToken continues pagination; empty means the last page.
	NextPageToken string
}

// PageEntry is a single raw entry from the primary playlistItems listing,
// before duration enrichment.
type PageEntry struct {
	// VideoID is the YouTube video ID.
	VideoID string
	// Title is the video title.
	Title string
	// Thumbnail is the default thumbnail URL, empty when absent.
	Thumbnail string
	// HasThumbnail records whether the listing payload carried a thumbnail.
	// This is the sole availability signal.
	HasThumbnail bool
}

// APIError wraps Data API call failures with context about what failed.
// Use errors.As() to extract it:
//
//	var apiErr *youtube.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s for playlist %s: %v\n", apiErr.Op, apiErr.PlaylistID, apiErr.Err)
//	}
type APIError struct {
	// Op is the logical call that failed ("playlists.list",
	// "playlistItems.list", "videos.list").
	Op string
	// PlaylistID is the playlist being analyzed, if applicable.
	PlaylistID string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	if e.PlaylistID != "" {
		return "youtube: " + e.Op + " " + e.PlaylistID + ": " + e.Err.Error()
	}
	return "youtube: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }

// ExtractPlaylistID pulls the playlist ID out of a YouTube URL's "list" query
// parameter. Inputs that do not parse as URLs, or carry no list parameter,
// are returned unchanged so bare IDs pass through.
func ExtractPlaylistID(input string) string {
	u, err := url.Parse(input)
	if err != nil {
		return input
	}
	if id := u.Query().Get("list"); id != "" {
		return id
	}
	return input
}
