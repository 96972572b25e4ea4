package youtube

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"hours minutes seconds", "PT1H2M3S", "01:02:03"},
		{"minutes seconds", "PT4M5S", "04:05"},
		{"seconds only", "PT30S", "00:30"},
		{"hours only", "PT2H", "02:00:00"},
		{"hours and seconds", "PT1H5S", "01:00:05"},
		{"double digit everything", "PT12H34M56S", "12:34:56"},
		{"zero duration", "PT0S", "00:00"},
		{"non-matching input", "garbage", "Unavailable"},
		{"sentinel passthrough", DurationUnavailable, "Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.raw); got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClockToSeconds(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  int
	}{
		{"three fields", "01:02:03", 3723},
		{"two fields", "04:05", 245},
		{"one hour", "01:00:00", 3600},
		{"sentinel", DurationUnavailable, 0},
		{"one field", "42", 0},
		{"four fields", "1:2:3:4", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClockToSeconds(tt.clock); got != tt.want {
				t.Errorf("ClockToSeconds(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

// TestClockToSecondsMonotonic verifies numeric ordering follows clock
// ordering across the HH:MM:SS boundary.
func TestClockToSecondsMonotonic(t *testing.T) {
	if ClockToSeconds("01:00:00") <= ClockToSeconds("00:59:59") {
		t.Errorf("ClockToSeconds(01:00:00) = %d should exceed ClockToSeconds(00:59:59) = %d",
			ClockToSeconds("01:00:00"), ClockToSeconds("00:59:59"))
	}
	if ClockToSeconds("10:00") <= ClockToSeconds("09:59") {
		t.Errorf("ClockToSeconds(10:00) = %d should exceed ClockToSeconds(09:59) = %d",
			ClockToSeconds("10:00"), ClockToSeconds("09:59"))
	}
}

// TestDurationRoundTrip checks that the clock rendering and the seconds
// projection agree for well-formed source tokens.
func TestDurationRoundTrip(t *testing.T) {
	tests := []struct {
		raw         string
		wantClock   string
		wantSeconds int
	}{
		{"PT1H2M3S", "01:02:03", 3723},
		{"PT59M59S", "59:59", 3599},
		{"PT1H", "01:00:00", 3600},
		{"PT1S", "00:01", 1},
		{"PT10H0M1S", "10:00:01", 36001},
	}

	for _, tt := range tests {
		clock := FormatDuration(tt.raw)
		if clock != tt.wantClock {
			t.Errorf("FormatDuration(%q) = %q, want %q", tt.raw, clock, tt.wantClock)
		}
		if got := ClockToSeconds(clock); got != tt.wantSeconds {
			t.Errorf("ClockToSeconds(FormatDuration(%q)) = %d, want %d", tt.raw, got, tt.wantSeconds)
		}
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"with hours", 3661, "1h 1m 1s"},
		{"minutes only", 125, "2m 5s"},
		{"seconds only", 45, "45s"},
		{"zero", 0, "0s"},
		{"exact hour", 3600, "1h 0m 0s"},
		{"large", 7384, "2h 3m 4s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTotal(tt.seconds); got != tt.want {
				t.Errorf("FormatTotal(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
