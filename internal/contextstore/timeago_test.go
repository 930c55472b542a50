package contextstore

import (
	"testing"
	"time"
)

func TestFormatAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero", 0, "0s ago"},
		{"seconds", 42 * time.Second, "42s ago"},
		{"last second bucket", 59 * time.Second, "59s ago"},
		{"exactly one minute", time.Minute, "1m ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"last minute bucket", 59*time.Minute + 59*time.Second, "59m ago"},
		{"exactly one hour", time.Hour, "1h ago"},
		{"hours", 23 * time.Hour, "23h ago"},
		{"exactly one day", 24 * time.Hour, "1d ago"},
		{"days", 72 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAgo(now.Add(-tt.elapsed), now); got != tt.want {
				t.Errorf("FormatAgo(-%v) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFormatAgo_FutureClampsToZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := FormatAgo(now.Add(time.Minute), now); got != "0s ago" {
		t.Errorf("future instant = %q, want %q", got, "0s ago")
	}
}
