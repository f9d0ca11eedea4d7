package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/strata/pkg/core"
)

// Config holds the configuration for a filesystem scan.
type Config struct {
	Root        string                       // Directory to scan, as supplied by the caller.
	Ignore      []string                     // doublestar patterns matched against root-relative slash paths.
	Workers     int                          // Concurrent file reads. Zero means runtime.NumCPU().
	Logger      *slog.Logger                 // Defaults to a discarding logger.
	SkipHandler func(path string, err error) // Called for every entry left out of the collection.
}

// Stats describes the most recent scan.
type Stats struct {
	Regular  int           `json:"regular"`
	Symlinks int           `json:"symlinks"`
	Notes    int           `json:"notes"`
	Skipped  int           `json:"skipped"`
	Links    int           `json:"links"`
	Ignored  int           `json:"ignored"`
	Special  int           `json:"special"`
	Duration time.Duration `json:"duration"`
	At       time.Time     `json:"at"`
}

// Scanner implements core.Source over a directory tree.
type Scanner struct {
	config Config
	logger *slog.Logger

	mu   sync.RWMutex
	last *Stats
}

var _ core.Source = (*Scanner)(nil)

// NewScanner validates config and returns a Scanner.
func NewScanner(config Config) (*Scanner, error) {
	for _, pattern := range config.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{config: config, logger: logger}, nil
}

// Scan walks the root once and returns the collection of notes found.
//
// Workflow:
//  1. Canonicalize the root. Failure here is the only fatal error.
//  2. Walk the tree, splitting entries into regular files and symlinks.
//  3. Build notes from regular files concurrently, keeping discovery order.
//  4. Append a tag to each note for every symlink resolving to it.
func (s *Scanner) Scan(ctx context.Context) (*core.Collection, error) {
	start := time.Now()

	root, err := resolveRoot(s.config.Root)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scan started", "root", s.config.Root, "canonical", root)

	w := &walker{root: root, ignore: s.config.Ignore, logger: s.logger}
	found, err := w.walk(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	notes, skipped, err := s.buildNotes(ctx, root, found.regular)
	if err != nil {
		return nil, err
	}

	links, unresolved := s.reconcile(root, notes, found.symlinks)

	stats := Stats{
		Regular:  len(found.regular),
		Symlinks: len(found.symlinks),
		Notes:    len(notes),
		Skipped:  skipped + unresolved,
		Links:    links,
		Ignored:  found.ignored,
		Special:  found.special,
		Duration: time.Since(start),
		At:       start,
	}
	s.mu.Lock()
	s.last = &stats
	s.mu.Unlock()

	s.logger.Info("scan finished",
		"root", s.config.Root,
		"notes", stats.Notes,
		"skipped", stats.Skipped,
		"links", stats.Links,
		"duration", stats.Duration,
	)

	return core.NewCollection(s.config.Root, notes), nil
}

// Stats returns the statistics of the last completed scan.
func (s *Scanner) Stats() (Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Stats{}, false
	}
	return *s.last, true
}

// buildNotes parses every regular file. Each result is stored in the slot of
// its discovery index so completion order does not leak into the output.
func (s *Scanner) buildNotes(ctx context.Context, root string, paths []string) ([]core.Note, int, error) {
	slots := make([]*core.Note, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			note, err := noteFromFile(path, root)
			if err != nil {
				errs[i] = err
				return nil
			}
			slots[i] = &note
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	notes := make([]core.Note, 0, len(paths))
	skipped := 0
	for i, slot := range slots {
		if slot == nil {
			skipped++
			s.skip(paths[i], errs[i])
			continue
		}
		notes = append(notes, *slot)
	}
	return notes, skipped, nil
}

// reconcile adds symlink tags to notes in place. It runs on a single goroutine.
func (s *Scanner) reconcile(root string, notes []core.Note, symlinks []string) (links, unresolved int) {
	if len(symlinks) == 0 {
		return 0, 0
	}

	byPath := make(map[string][]int, len(notes))
	for i, n := range notes {
		byPath[n.Path] = append(byPath[n.Path], i)
	}

	for _, link := range symlinks {
		target, err := filepath.EvalSymlinks(link)
		if err != nil {
			unresolved++
			s.skip(link, &core.NoteError{
				Path: link,
				Err:  fmt.Errorf("%w: %v", core.ErrSymlinkUnresolvable, err),
			})
			continue
		}

		idx, ok := byPath[target]
		if !ok {
			s.logger.Debug("symlink target is not a note", "link", link, "target", target)
			continue
		}

		tag, err := RelativeTag(root, filepath.Dir(link))
		if err != nil {
			unresolved++
			s.skip(link, &core.NoteError{Path: link, Err: err})
			continue
		}

		for _, i := range idx {
			notes[i].Tags = append(notes[i].Tags, tag)
		}
		links++
	}
	return links, unresolved
}

func (s *Scanner) skip(path string, err error) {
	s.logger.Debug("skipping entry", "path", path, "error", err)
	if s.config.SkipHandler != nil {
		s.config.SkipHandler(path, err)
	}
}

// resolveRoot canonicalizes root and checks that it is a directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: empty path", core.ErrRootUnresolvable)
	}
	canonical, err := canonicalize(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", core.ErrRootUnresolvable, root, err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", core.ErrRootUnresolvable, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", core.ErrRootUnresolvable, root)
	}
	return canonical, nil
}

// IsRootError reports whether err came from resolving or listing the scan root.
func IsRootError(err error) bool {
	return errors.Is(err, core.ErrRootUnresolvable)
}
