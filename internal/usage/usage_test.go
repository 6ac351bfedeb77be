package usage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde path", "~/data", filepath.Join(home, "data")},
		{"bare tilde", "~", home},
		{"tilde slash", "~/", home},
		{"absolute path", "/var/log", "/var/log"},
		{"relative path", "data/file", "data/file"},
		{"tilde without slash", "~data", "~data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTilde(tt.path)
			if err != nil {
				t.Fatalf("ExpandTilde(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ExpandTilde(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMeasure_File(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "a.bin")
	writeFile(t, path, 1536)

	// Act
	entry, err := Measure(context.Background(), path)

	// Assert
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if entry.Size != 1536 || entry.Files != 1 || entry.Dir {
		t.Errorf("Measure() = %+v, want 1536 bytes in 1 file", entry)
	}
	if entry.Path != path {
		t.Errorf("Path = %q, want %q", entry.Path, path)
	}
}

func TestMeasure_Directory(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 1000)
	writeFile(t, filepath.Join(dir, "sub", "b.bin"), 24)
	writeFile(t, filepath.Join(dir, "sub", "deeper", "c.bin"), 0)
	if err := os.Symlink(filepath.Join(dir, "a.bin"), filepath.Join(dir, "link")); err != nil {
		t.Logf("symlink unsupported: %v", err)
	}

	// Act
	entry, err := Measure(context.Background(), dir)

	// Assert
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if !entry.Dir {
		t.Error("Dir = false, want true")
	}
	if entry.Size != 1024 {
		t.Errorf("Size = %d, want 1024", entry.Size)
	}
	if entry.Files != 3 {
		t.Errorf("Files = %d, want 3", entry.Files)
	}
}

func TestMeasure_EmptyDirectory(t *testing.T) {
	entry, err := Measure(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if entry.Size != 0 || entry.Files != 0 {
		t.Errorf("Measure() = %+v, want zero", entry)
	}
}

func TestMeasure_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := Measure(context.Background(), missing)

	if !IsNotFound(err) {
		t.Fatalf("Measure() error = %v, want NotFoundError", err)
	}
}

func TestMeasure_EmptyPath(t *testing.T) {
	if _, err := Measure(context.Background(), ""); err == nil {
		t.Fatal("Measure(\"\") should fail")
	}
}

func TestMeasure_Canceled(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := Measure(ctx, dir)

	// Assert
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Measure() error = %v, want context.Canceled", err)
	}
}

func TestMeasureAll(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	writeFile(t, a, 100)
	writeFile(t, b, 200)

	// Act
	entries, err := MeasureAll(context.Background(), []string{b, a})

	// Assert
	if err != nil {
		t.Fatalf("MeasureAll() error = %v", err)
	}
	if len(entries) != 2 || entries[0].Path != b || entries[1].Path != a {
		t.Fatalf("MeasureAll() = %+v, want b then a", entries)
	}
	if got := Total(entries); got != 300 {
		t.Errorf("Total() = %d, want 300", got)
	}
}

func TestMeasureAll_StopsAtError(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	writeFile(t, a, 100)

	_, err := MeasureAll(context.Background(), []string{a, filepath.Join(dir, "missing")})

	if !IsNotFound(err) {
		t.Fatalf("MeasureAll() error = %v, want NotFoundError", err)
	}
}
