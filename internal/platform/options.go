package platform

import (
	"log/slog"

	"github.com/aretw0/strata/pkg/core"
)

// options holds the internal configuration for a scan.
type options struct {
	source      core.Source
	logger      *slog.Logger
	configFile  string
	skipConfig  bool
	ignore      []string
	workers     int
	skipHandler func(path string, err error)
}

// Option defines a functional option for configuring a scan.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger used during the scan.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom source (e.g. a fake in tests).
// If provided, no filesystem scanner is built and the config file is not read.
func WithSource(src core.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithConfigFile reads settings from path instead of <root>/.strata.yaml.
// The file must exist.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithoutConfigFile disables loading <root>/.strata.yaml.
func WithoutConfigFile() Option {
	return func(o *options) {
		o.skipConfig = true
	}
}

// WithIgnore sets the doublestar patterns of root-relative paths to leave out.
// Overrides the config file.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = append([]string(nil), patterns...)
	}
}

// WithWorkers bounds the number of concurrent file reads.
// Overrides the config file. Zero keeps the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSkipHandler registers a callback receiving every path left out of the
// collection together with the reason.
func WithSkipHandler(fn func(path string, err error)) Option {
	return func(o *options) {
		o.skipHandler = fn
	}
}
