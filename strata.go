package strata

import (
	"context"
	"log/slog"

	"github.com/aretw0/strata/internal/platform"
	"github.com/aretw0/strata/pkg/adapters/fs"
	"github.com/aretw0/strata/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Collection is a public alias for the scan result.
type Collection = core.Collection

// Config is a public alias for the on-disk configuration.
type Config = platform.Config

// ConfigFileName is the config file looked up in the scan root.
const ConfigFileName = platform.ConfigFileName

// ErrNoRoot is returned by FindRoot when no enclosing tree root exists.
var ErrNoRoot = platform.ErrNoRoot

// --- Configuration ---

// Option defines a functional option for configuring a scan.
type Option = platform.Option

// WithLogger sets the logger for the scan.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom source.
func WithSource(src core.Source) Option {
	return platform.WithSource(src)
}

// WithConfigFile reads settings from an explicit file.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithoutConfigFile disables loading the config file from the scan root.
func WithoutConfigFile() Option {
	return platform.WithoutConfigFile()
}

// WithIgnore sets doublestar patterns of root-relative paths to skip.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithWorkers bounds the number of concurrent file reads.
func WithWorkers(n int) Option {
	return platform.WithWorkers(n)
}

// WithSkipHandler registers a callback for every path left out of the collection.
func WithSkipHandler(fn func(path string, err error)) Option {
	return platform.WithSkipHandler(fn)
}

// --- Operations ---

// FromDir scans root with default settings.
func FromDir(root string) (*Collection, error) {
	return Scan(context.Background(), root)
}

// Scan scans root once and returns the notes found.
func Scan(ctx context.Context, root string, opts ...Option) (*Collection, error) {
	return platform.Scan(ctx, root, opts...)
}

// NewSource builds a reusable source for root.
func NewSource(root string, opts ...Option) (core.Source, error) {
	return platform.NewSource(root, opts...)
}

// NoteFromFile builds a single note from path, discovered under scanRoot.
func NoteFromFile(path, scanRoot string) (Note, error) {
	return fs.NoteFromFile(path, scanRoot)
}

// TitleFromText extracts a title from the start of content.
func TitleFromText(content string) (string, error) {
	return core.TitleFromText(content)
}

// --- Utils ---

// FindRoot looks upwards from startDir for a note tree root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// IsRootError reports whether a scan failed because its root could not be
// resolved or read.
func IsRootError(err error) bool {
	return fs.IsRootError(err)
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}
