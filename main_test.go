package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestDir builds a temp tree with dummy .hwp files: one at the top
// level and one inside a subdirectory for the recursive case.
func createTestDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "dummy.hwp"), []byte("dummy content"), 0644); err != nil {
		t.Fatalf("Failed to create dummy file: %v", err)
	}

	subDir := filepath.Join(tmpDir, "subdir")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create sub dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "subdummy.hwpx"), []byte("sub dummy content"), 0644); err != nil {
		t.Fatalf("Failed to create sub dummy file: %v", err)
	}

	return tmpDir
}

func TestRun_NoArgs(t *testing.T) {
	err := run([]string{}, false)
	if err == nil {
		t.Fatal("Expected an error when no arguments are provided, but got nil")
	}
	expectedErrMsg := "usage: hwpextract [-r] <file_or_dir1> [file_or_dir2]"
	if !strings.Contains(err.Error(), expectedErrMsg) {
		t.Errorf("Expected error message to contain '%s', but got '%s'", expectedErrMsg, err.Error())
	}
}

func TestRun_ValidDirNonRecursive(t *testing.T) {
	tmpDir := createTestDir(t)

	// Dummy files are not valid HWP documents; their failures are logged,
	// not returned.
	err := run([]string{tmpDir}, false)
	if err != nil {
		t.Errorf("Expected no error when processing a directory non-recursively, but got: %v", err)
	}
}

func TestRun_ValidDirRecursive(t *testing.T) {
	tmpDir := createTestDir(t)

	err := run([]string{tmpDir}, true)
	if err != nil {
		t.Errorf("Expected no error when processing a directory recursively, but got: %v", err)
	}
}

func TestRun_InvalidPath(t *testing.T) {
	invalidPath := filepath.Join("non", "existent", "path", "file.hwp")
	err := run([]string{invalidPath}, false)
	if err != nil {
		t.Errorf("Expected no error returned from run() for an invalid path (error should be logged), but got: %v", err)
	}
}

func TestGatherPaths_FiltersExtensions(t *testing.T) {
	tmpDir := createTestDir(t)
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths := gatherPaths([]string{tmpDir}, true)
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths (.hwp and .hwpx), got %d: %v", len(paths), paths)
	}
	for _, p := range paths {
		if !isHwpFile(p) {
			t.Errorf("Unexpected path gathered: %s", p)
		}
	}
}
