package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Context ContextConfig `json:"context"`
	Paste   PasteConfig   `json:"paste"`
	Shell   ShellConfig   `json:"shell"`
	Query   QueryConfig   `json:"query"`
	Tree    TreeConfig    `json:"tree"`
}

// ContextConfig controls validation of files added to the query context.
type ContextConfig struct {
	MaxFileSize               int64 `json:"max_file_size"`                // Default: 500000 bytes
	BinaryDetectionSampleSize int   `json:"binary_detection_sample_size"` // Default: 1024 bytes
}

// PasteConfig controls multi-line paste classification.
type PasteConfig struct {
	LineThreshold int `json:"line_threshold"` // Default: 3 lines
	CharThreshold int `json:"char_threshold"` // Default: 200 characters
	PreviewLines  int `json:"preview_lines"`  // Default: 3 lines
}

// ShellConfig controls the shell command fallback.
type ShellConfig struct {
	TimeoutSeconds int   `json:"timeout_seconds"` // Default: 30
	MaxOutputSize  int64 `json:"max_output_size"` // Default: 1 * 1024 * 1024 (1MB)
}

// QueryConfig holds the parameters sent with every AI query.
type QueryConfig struct {
	Mode      string   `json:"mode"`      // Default: "pro"
	Model     string   `json:"model"`     // Default: "gemini-2.0-flash"
	Sources   []string `json:"sources"`   // Default: ["web"]
	Stream    bool     `json:"stream"`    // Default: false
	Incognito bool     `json:"incognito"` // Default: true
}

// TreeConfig controls the tree view.
type TreeConfig struct {
	MaxDepth int `json:"max_depth"` // Default: 3
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Context: ContextConfig{
			MaxFileSize:               500_000,
			BinaryDetectionSampleSize: 1024,
		},
		Paste: PasteConfig{
			LineThreshold: 3,
			CharThreshold: 200,
			PreviewLines:  3,
		},
		Shell: ShellConfig{
			TimeoutSeconds: 30,
			MaxOutputSize:  1 * 1024 * 1024,
		},
		Query: QueryConfig{
			Mode:      "pro",
			Model:     "gemini-2.0-flash",
			Sources:   []string{"web"},
			Stream:    false,
			Incognito: true,
		},
		Tree: TreeConfig{
			MaxDepth: 3,
		},
	}
}
