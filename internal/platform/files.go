package platform

import (
	"errors"
	"fmt"
	"os"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// FolderCreationError reports that a destination folder could not be provisioned
type FolderCreationError struct {
	Path string
	Err  error
}

func (e *FolderCreationError) Error() string {
	return fmt.Sprintf("failed to create folder %q: %v", e.Path, e.Err)
}

func (e *FolderCreationError) Unwrap() error {
	return e.Err
}

// EnsureFolder creates dirPath with intermediate directories if it doesn't exist.
// created reports whether the folder was made by this call.
func EnsureFolder(dirPath string) (created bool, err error) {
	if dirPath == "" {
		return false, &FolderCreationError{Path: dirPath, Err: errors.New("empty path")}
	}

	info, err := os.Stat(dirPath)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, &FolderCreationError{Path: dirPath, Err: errors.New("path exists and is not a directory")}
		}
		return false, nil
	case !os.IsNotExist(err):
		return false, &FolderCreationError{Path: dirPath, Err: err}
	}

	if err := os.MkdirAll(dirPath, DefaultDirPermissions); err != nil {
		return false, &FolderCreationError{Path: dirPath, Err: err}
	}
	return true, nil
}
