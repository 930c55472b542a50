package config

import (
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestValidate_CollectsViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.Context.MaxFileSize = 0 },
			wantSub: "context.max_file_size",
		},
		{
			name:    "negative sample size",
			mutate:  func(c *Config) { c.Context.BinaryDetectionSampleSize = -1 },
			wantSub: "context.binary_detection_sample_size",
		},
		{
			name:    "zero line threshold",
			mutate:  func(c *Config) { c.Paste.LineThreshold = 0 },
			wantSub: "paste.line_threshold",
		},
		{
			name:    "zero char threshold",
			mutate:  func(c *Config) { c.Paste.CharThreshold = 0 },
			wantSub: "paste.char_threshold",
		},
		{
			name:    "zero preview lines",
			mutate:  func(c *Config) { c.Paste.PreviewLines = 0 },
			wantSub: "paste.preview_lines",
		},
		{
			name:    "zero shell timeout",
			mutate:  func(c *Config) { c.Shell.TimeoutSeconds = 0 },
			wantSub: "shell.timeout_seconds",
		},
		{
			name:    "empty query model",
			mutate:  func(c *Config) { c.Query.Model = "" },
			wantSub: "query.model",
		},
		{
			name:    "zero tree depth",
			mutate:  func(c *Config) { c.Tree.MaxDepth = 0 },
			wantSub: "tree.max_depth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_MultipleViolationsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Context.MaxFileSize = 0
	cfg.Shell.TimeoutSeconds = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, sub := range []string{"context.max_file_size", "shell.timeout_seconds"} {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("error %q missing violation %q", err.Error(), sub)
		}
	}
}
