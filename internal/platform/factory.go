package platform

import (
	"context"

	"github.com/aretw0/strata/pkg/adapters/fs"
	"github.com/aretw0/strata/pkg/core"
)

// NewSource builds the source that will scan the directory root.
func NewSource(root string, opts ...Option) (core.Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.source != nil {
		return o.source, nil
	}

	scanner, err := newFS(root, o)
	if err != nil {
		return nil, err
	}
	return scanner, nil
}

// Scan builds a source for root and runs one scan.
func Scan(ctx context.Context, root string, opts ...Option) (*core.Collection, error) {
	src, err := NewSource(root, opts...)
	if err != nil {
		return nil, err
	}
	return src.Scan(ctx)
}

// newFS merges the config file with explicit options into a scanner.
func newFS(root string, o *options) (*fs.Scanner, error) {
	cfg, err := loadConfigFor(root, o)
	if err != nil {
		return nil, err
	}

	if o.ignore != nil {
		cfg.Ignore = o.ignore
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}

	if o.logger != nil && o.configFile != "" {
		o.logger.Debug("using config file", "path", o.configFile)
	}

	return fs.NewScanner(fs.Config{
		Root:        root,
		Ignore:      cfg.Ignore,
		Workers:     cfg.Workers,
		Logger:      o.logger,
		SkipHandler: o.skipHandler,
	})
}
