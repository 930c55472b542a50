package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Context validation
	if c.Context.MaxFileSize < 1 {
		errs = append(errs, "context.max_file_size must be >= 1")
	}
	if c.Context.BinaryDetectionSampleSize < 1 {
		errs = append(errs, "context.binary_detection_sample_size must be >= 1")
	}

	// Paste validation
	if c.Paste.LineThreshold < 1 {
		errs = append(errs, "paste.line_threshold must be >= 1")
	}
	if c.Paste.CharThreshold < 1 {
		errs = append(errs, "paste.char_threshold must be >= 1")
	}
	if c.Paste.PreviewLines < 1 {
		errs = append(errs, "paste.preview_lines must be >= 1")
	}

	// Shell validation
	if c.Shell.TimeoutSeconds < 1 {
		errs = append(errs, "shell.timeout_seconds must be >= 1")
	}
	if c.Shell.MaxOutputSize < 1 {
		errs = append(errs, "shell.max_output_size must be >= 1")
	}

	// Query validation
	if c.Query.Mode == "" {
		errs = append(errs, "query.mode must not be empty")
	}
	if c.Query.Model == "" {
		errs = append(errs, "query.model must not be empty")
	}

	// Tree validation
	if c.Tree.MaxDepth < 1 {
		errs = append(errs, "tree.max_depth must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
