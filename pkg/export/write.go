package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// IndexPerm is the mode of files written by WriteIndex.
const IndexPerm os.FileMode = 0644

// WriteIndex encodes idx into filename. The index is staged next to the
// target and renamed over it once fully synced, so readers see either the
// previous file or the complete new one. A failed encode leaves the target
// untouched.
func WriteIndex(filename string, idx Index, format Format) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filename, err)
	}
	defer func() {
		if err != nil {
			staged.Close()
			os.Remove(staged.Name())
		}
	}()

	w := bufio.NewWriter(staged)
	if err = Encode(w, idx, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err = staged.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", filename, err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	// CreateTemp opens with 0600.
	if err = os.Chmod(staged.Name(), IndexPerm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", filename, err)
	}
	if err = os.Rename(staged.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
