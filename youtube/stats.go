package youtube

// Stats summarizes a resolved playlist item collection. It is derived data:
// never persisted on its own, recomputed from the video list whenever needed.
type Stats struct {
	// TotalVideos is the number of items in the collection.
	TotalVideos int `json:"total_videos"`
	// AvailableVideos counts items not flagged unavailable.
	AvailableVideos int `json:"available_videos"`
	// UnavailableVideos counts items flagged unavailable.
	UnavailableVideos int `json:"unavailable_videos"`
	// TotalSeconds sums the durations of available items only.
	TotalSeconds int `json:"total_seconds"`
	// AverageSeconds is TotalSeconds / AvailableVideos, floored; 0 when no
	// items are available.
	AverageSeconds int `json:"average_seconds"`
	// TotalDuration is the human rendering of TotalSeconds.
	TotalDuration string `json:"total_duration"`
	// AverageDuration is the human rendering of AverageSeconds.
	AverageDuration string `json:"average_duration"`
}

// Aggregate folds a video collection into summary statistics in a single
// pass. Unavailable items are excluded from the duration sums even when they
// carry a parseable duration string. Pure: no I/O, input is not mutated.
func Aggregate(videos []Video) Stats {
	total := len(videos)

	unavailable := 0
	totalSeconds := 0
	for _, v := range videos {
		if v.Unavailable {
			unavailable++
			continue
		}
		totalSeconds += ClockToSeconds(v.Duration)
	}

	available := total - unavailable
	averageSeconds := 0
	if available > 0 {
		averageSeconds = totalSeconds / available
	}

	return Stats{
		TotalVideos:       total,
		AvailableVideos:   available,
		UnavailableVideos: unavailable,
		TotalSeconds:      totalSeconds,
		AverageSeconds:    averageSeconds,
		TotalDuration:     FormatTotal(totalSeconds),
		AverageDuration:   FormatTotal(averageSeconds),
	}
}
