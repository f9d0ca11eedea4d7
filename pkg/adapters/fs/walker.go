package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/strata/pkg/core"
)

// entries holds the partition of a walked tree by entry type.
type entries struct {
	regular  []string
	symlinks []string
	ignored  int
	special  int
}

// walker enumerates a canonical root without following symlinks.
type walker struct {
	root   string
	ignore []string
	logger *slog.Logger
}

// walk visits every entry under the root in lexical order.
// Entry types are taken from the entry itself, never from a symlink target.
func (w *walker) walk(ctx context.Context) (*entries, error) {
	out := &entries{}
	if err := filepath.WalkDir(w.root, w.visit(ctx, out)); err != nil {
		return nil, err
	}
	return out, nil
}

// visit returns the WalkDirFunc collecting into out.
func (w *walker) visit(ctx context.Context, out *entries) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == w.root {
				return fmt.Errorf("%w: %s: %v", core.ErrRootUnresolvable, path, err)
			}
			// Unreadable subdirectory: keep going with the rest of the tree.
			w.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if path == w.root {
			return nil
		}

		if w.ignored(path) {
			out.ignored++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		switch typ := d.Type(); {
		case typ.IsDir():
			return nil
		case typ&fs.ModeSymlink != 0:
			out.symlinks = append(out.symlinks, path)
		case typ.IsRegular():
			out.regular = append(out.regular, path)
		default:
			out.special++
			w.logger.Debug("skipping special file", "path", path, "type", typ.String())
		}
		return nil
	}
}

// ignored reports whether the root-relative form of path matches an ignore pattern.
func (w *walker) ignored(path string) bool {
	if len(w.ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
