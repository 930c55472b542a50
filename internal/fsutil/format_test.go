package fsutil

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0B"},
		{18, "18.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{2 * 1024 * 1024, "2.0MB"},
		{3 * 1024 * 1024 * 1024, "3.0GB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5.0TB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
