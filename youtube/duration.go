package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DurationUnavailable is the placeholder used when a video's duration cannot
// be resolved, either because the contentDetails lookup came back empty or
// because the raw duration token did not parse.
const DurationUnavailable = "Unavailable"

var isoDurationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration converts an ISO-8601 style duration token (e.g. "PT1H2M3S")
// into a clock string: "HH:MM:SS" when hours are present, "MM:SS" otherwise,
// with each field zero-padded to two digits. Inputs that do not match the
// pattern yield DurationUnavailable rather than an error.
func FormatDuration(raw string) string {
	if raw == DurationUnavailable {
		return DurationUnavailable
	}

	match := isoDurationRegex.FindStringSubmatch(raw)
	if match == nil {
		return DurationUnavailable
	}

	hours := atoiOrZero(match[1])
	minutes := atoiOrZero(match[2])
	seconds := atoiOrZero(match[3])

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ClockToSeconds converts a clock string produced by FormatDuration back into
// a total number of seconds. The DurationUnavailable sentinel maps to 0, as
// does any string that does not split into exactly two or three fields.
func ClockToSeconds(clock string) int {
	if clock == DurationUnavailable {
		return 0
	}

	parts := strings.Split(clock, ":")
	switch len(parts) {
	case 3:
		return atoiOrZero(parts[0])*3600 + atoiOrZero(parts[1])*60 + atoiOrZero(parts[2])
	case 2:
		return atoiOrZero(parts[0])*60 + atoiOrZero(parts[1])
	default:
		return 0
	}
}

// FormatTotal renders a total second count for display: "{h}h {m}m {s}s" when
// hours are present, "{m}m {s}s" when only minutes, else "{s}s". Unlike the
// per-video clock format, fields are not zero-padded.
func FormatTotal(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
