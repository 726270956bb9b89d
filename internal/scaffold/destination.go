package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DestinationNotEmptyError is returned when the destination directory already
// has entries. Generation never merges into or overwrites existing content.
type DestinationNotEmptyError struct {
	Path string
}

func (e *DestinationNotEmptyError) Error() string {
	return fmt.Sprintf("destination %s is not empty", e.Path)
}

// CheckDestination succeeds when path does not exist or is an empty directory.
func CheckDestination(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s is not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", path, err)
	}
	if len(entries) > 0 {
		return &DestinationNotEmptyError{Path: path}
	}
	return nil
}
