package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// mockFS implements FileSystem for loader tests
type mockFS struct {
	homeDir    string
	homeErr    error
	files      map[string][]byte
	readErrors map[string]error
}

func newMockFS(homeDir string) *mockFS {
	return &mockFS{
		homeDir:    homeDir,
		files:      make(map[string][]byte),
		readErrors: make(map[string]error),
	}
}

func (m *mockFS) UserHomeDir() (string, error) {
	return m.homeDir, m.homeErr
}

func (m *mockFS) ReadFile(path string) ([]byte, error) {
	if err, ok := m.readErrors[path]; ok {
		return nil, err
	}
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func configPath(home string) string {
	return filepath.Join(home, ".config", ConfigDir, ConfigFile)
}

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := newMockFS("/home/user")
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Context.MaxFileSize != defaults.Context.MaxFileSize {
		t.Errorf("expected default max file size %d, got %d", defaults.Context.MaxFileSize, cfg.Context.MaxFileSize)
	}
	if cfg.Shell.TimeoutSeconds != 30 {
		t.Errorf("expected default shell timeout 30, got %d", cfg.Shell.TimeoutSeconds)
	}
}

func TestLoad_NoHomeDir_ReturnsDefaults(t *testing.T) {
	fs := newMockFS("")
	fs.homeErr = errors.New("no home")
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paste.LineThreshold != 3 {
		t.Errorf("expected default line threshold 3, got %d", cfg.Paste.LineThreshold)
	}
}

func TestLoad_PartialConfig_MergesOverDefaults(t *testing.T) {
	fs := newMockFS("/home/user")
	fs.files[configPath("/home/user")] = []byte(`{"context": {"max_file_size": 100000}}`)
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Context.MaxFileSize != 100000 {
		t.Errorf("expected overridden max file size 100000, got %d", cfg.Context.MaxFileSize)
	}
	// Missing keys keep defaults
	if cfg.Context.BinaryDetectionSampleSize != 1024 {
		t.Errorf("expected default sample size 1024, got %d", cfg.Context.BinaryDetectionSampleSize)
	}
	if cfg.Query.Mode != "pro" {
		t.Errorf("expected default query mode, got %q", cfg.Query.Mode)
	}
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := newMockFS("/home/user")
	fs.files[configPath("/home/user")] = []byte(`{not valid json`)
	loader := NewLoaderWithFS(fs)

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestLoad_PermissionError_ReturnsError(t *testing.T) {
	fs := newMockFS("/home/user")
	fs.readErrors[configPath("/home/user")] = os.ErrPermission
	loader := NewLoaderWithFS(fs)

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for permission failure, got nil")
	}
}

func TestLoad_InvalidValues_ReturnsValidationError(t *testing.T) {
	fs := newMockFS("/home/user")
	fs.files[configPath("/home/user")] = []byte(`{"shell": {"timeout_seconds": 0}}`)
	loader := NewLoaderWithFS(fs)

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected validation error for zero timeout, got nil")
	}
}
