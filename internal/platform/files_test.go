package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureFolder(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "a", "b", "downloaded_videos")

	created, err := EnsureFolder(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if !created {
		t.Error("Expected created to be true on first call")
	}
	if info, err := os.Stat(testDir); err != nil || !info.IsDir() {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	created, err = EnsureFolder(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
	if created {
		t.Error("Expected created to be false for existing directory")
	}
}

func TestEnsureFolder_Errors(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "existing file", path: blocker},
		{name: "file as parent", path: filepath.Join(blocker, "sub")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnsureFolder(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var folderErr *FolderCreationError
			if !errors.As(err, &folderErr) {
				t.Fatalf("expected *FolderCreationError, got %T", err)
			}
			if folderErr.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, folderErr.Path)
			}
			if folderErr.Unwrap() == nil {
				t.Error("expected wrapped cause")
			}
		})
	}
}
