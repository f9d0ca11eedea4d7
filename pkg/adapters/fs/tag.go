package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/strata/pkg/core"
)

// RelativeTag returns dir relative to root in slash form.
// Both paths must already be canonical. The prefix has to end on a path
// separator boundary, so "/notes-old" is not under "/notes".
func RelativeTag(root, dir string) (string, error) {
	root = filepath.Clean(root)
	dir = filepath.Clean(dir)

	if dir == root {
		return "", nil
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	rest, ok := strings.CutPrefix(dir, prefix)
	if !ok || rest == "" {
		return "", fmt.Errorf("%q not under %q: %w", dir, root, core.ErrTagPrefixMismatch)
	}
	return filepath.ToSlash(rest), nil
}

// canonicalize returns the absolute, symlink-free form of path.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
