package fsops_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammadafzall/drafter-agent/internal/fsops"
	"github.com/hammadafzall/drafter-agent/internal/safety"
)

// Shared sandbox root for all fsops tests.
var sharedDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fsops-tests-")
	if err != nil {
		panic(err)
	}
	// Set env once so fsops caches the same root for all tests.
	_ = os.Setenv("DRAFTER_WRITE_ROOT", dir)
	sharedDir = dir

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func rel(t *testing.T, elems ...string) string {
	return filepath.Join(append([]string{t.Name()}, elems...)...)
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	want := "line1\nline2"
	if err := fsops.WriteDocument(rel(t, "poem.txt"), want); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(sharedDir, rel(t, "poem.txt")))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != want {
		t.Fatalf("content mismatch: got %q want %q", string(b), want)
	}
}

func TestWriteDocument_CreatesParentDirs(t *testing.T) {
	p := rel(t, "deep", "nested", "doc.txt")
	if err := fsops.WriteDocument(p, "x"); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	if _, err := os.Stat(filepath.Join(sharedDir, p)); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestWriteDocument_EmptyContentAllowed(t *testing.T) {
	p := rel(t, "empty.txt")
	if err := fsops.WriteDocument(p, ""); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	fi, err := os.Stat(filepath.Join(sharedDir, p))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", fi.Size())
	}
}

func TestWriteDocument_RejectsEscape(t *testing.T) {
	err := fsops.WriteDocument(filepath.Join("..", "escape.txt"), "x")
	if err == nil {
		t.Fatal("expected error for traversal path")
	}
	var te safety.ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %T: %v", err, err)
	}
	if te.Code != "ERR_PATH_OUTSIDE_SANDBOX" {
		t.Fatalf("unexpected code: %s", te.Code)
	}
}
