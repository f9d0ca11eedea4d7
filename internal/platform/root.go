package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoRoot is returned by FindRoot when no directory above the start carries
// a root marker.
var ErrNoRoot = errors.New("no note tree root found")

// rootMarkers identify the top of a note tree, checked in order in each
// directory.
var rootMarkers = []string{ConfigFileName, ".git"}

// FindRoot returns the closest directory at or above start that holds one of
// the root markers. Any failure other than a missing marker is reported as is.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		found, err := hasMarker(dir)
		if err != nil {
			return "", err
		}
		if found {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w above %s", ErrNoRoot, start)
		}
		dir = parent
	}
}

func hasMarker(dir string) (bool, error) {
	for _, marker := range rootMarkers {
		_, err := os.Stat(filepath.Join(dir, marker))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return false, fmt.Errorf("failed to check %s for %s: %w", dir, marker, err)
		}
	}
	return false, nil
}
