package boundary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestBoundary builds a boundary over a temp directory with a file and a
// subdirectory inside it, plus a sibling directory outside it.
func newTestBoundary(t *testing.T) (*Boundary, string, string) {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	outside := filepath.Join(base, "outside")
	for _, dir := range []string{home, outside, filepath.Join(home, "sub")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(home, "sub", "file.txt"), []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("secret"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	b, err := New(home)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, home, outside
}

func TestNew_RootMustExistAndBeDirectory(t *testing.T) {
	if _, err := New("/nonexistent/path/for/sure"); err == nil {
		t.Error("expected error for nonexistent root")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(file); err == nil {
		t.Error("expected error for file root")
	}
}

func TestIsAllowed_InsideBoundary(t *testing.T) {
	b, home, _ := newTestBoundary(t)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root itself", home, true},
		{"subdirectory", filepath.Join(home, "sub"), true},
		{"file in subdirectory", filepath.Join(home, "sub", "file.txt"), true},
		{"dot-dot back inside", filepath.Join(home, "sub", "..", "sub", "file.txt"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsAllowed_OutsideBoundary(t *testing.T) {
	b, home, outside := newTestBoundary(t)

	tests := []struct {
		name string
		path string
	}{
		{"sibling directory", outside},
		{"file in sibling", filepath.Join(outside, "secret.txt")},
		{"dot-dot escape", filepath.Join(home, "..", "outside", "secret.txt")},
		{"filesystem root", "/"},
		{"nonexistent path", filepath.Join(home, "no", "such", "file")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if b.IsAllowed(tt.path) {
				t.Errorf("IsAllowed(%q) = true, want false", tt.path)
			}
		})
	}
}

func TestIsAllowed_SymlinkEscape(t *testing.T) {
	b, home, outside := newTestBoundary(t)

	// Symlink inside the boundary pointing at a file outside it.
	link := filepath.Join(home, "escape")
	if err := os.Symlink(filepath.Join(outside, "secret.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if b.IsAllowed(link) {
		t.Error("symlink escaping the boundary must be rejected")
	}
}

func TestIsAllowed_BrokenSymlinkFailsClosed(t *testing.T) {
	b, home, _ := newTestBoundary(t)

	link := filepath.Join(home, "dangling")
	if err := os.Symlink(filepath.Join(home, "gone.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if b.IsAllowed(link) {
		t.Error("broken symlink must fail closed")
	}
}

func TestResolve_ReturnsCanonicalPath(t *testing.T) {
	b, home, _ := newTestBoundary(t)

	got, err := b.Resolve(filepath.Join(home, "sub", "..", "sub", "file.txt"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(b.Root(), "sub", "file.txt")
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolve_OutsideReturnsSentinel(t *testing.T) {
	b, _, outside := newTestBoundary(t)

	_, err := b.Resolve(filepath.Join(outside, "secret.txt"))
	if !errors.Is(err, ErrOutsideBoundary) {
		t.Errorf("expected ErrOutsideBoundary, got %v", err)
	}
}

func TestRel_InsideBoundary(t *testing.T) {
	b, home, _ := newTestBoundary(t)

	rel, err := b.Rel(filepath.Join(home, "sub", "file.txt"))
	if err != nil {
		t.Fatalf("Rel: %v", err)
	}
	if rel != "sub/file.txt" {
		t.Errorf("Rel = %q, want %q", rel, "sub/file.txt")
	}
}
