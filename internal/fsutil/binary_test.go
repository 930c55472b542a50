package fsutil

import (
	"bytes"
	"testing"
)

func TestIsBinaryContent(t *testing.T) {
	detector := NewSystemBinaryDetector(1024)

	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"plain text", []byte("hello world"), false},
		{"empty content", []byte{}, false},
		{"null byte early", []byte{'a', 0x00, 'b'}, true},
		{"null byte at start", []byte{0x00}, true},
		{"utf-16 le bom", []byte{0xFF, 0xFE, 'h', 0x00}, false},
		{"utf-16 be bom", []byte{0xFE, 0xFF, 0x00, 'h'}, false},
		{"utf-32 le bom", []byte{0xFF, 0xFE, 0x00, 0x00, 'h'}, false},
		{"utf-32 be bom", []byte{0x00, 0x00, 0xFE, 0xFF, 'h'}, false},
		{"multiline text", []byte("line1\nline2\nline3\n"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.IsBinaryContent(tt.content); got != tt.want {
				t.Errorf("IsBinaryContent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBinaryContent_RespectsSampleSize(t *testing.T) {
	detector := NewSystemBinaryDetector(4)

	// Null byte beyond the sample window is not inspected.
	content := append(bytes.Repeat([]byte{'a'}, 4), 0x00)
	if detector.IsBinaryContent(content) {
		t.Error("null byte outside sample window should not mark content binary")
	}
}
