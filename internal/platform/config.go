package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the scan root.
const ConfigFileName = ".strata.yaml"

// Config is the on-disk configuration of a note tree.
type Config struct {
	Ignore  []string `yaml:"ignore"`
	Workers int      `yaml:"workers"`
}

// LoadConfig reads and validates a config file.
// A missing file yields an error matching fs.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks patterns and limits.
func (c Config) Validate() error {
	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("bad ignore pattern %q", pattern)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// loadConfigFor resolves the config for a scan of root.
// An explicit file must exist; the implicit one in root is optional.
func loadConfigFor(root string, o *options) (Config, error) {
	if o.configFile != "" {
		return LoadConfig(o.configFile)
	}
	if o.skipConfig || root == "" {
		return Config{}, nil
	}
	cfg, err := LoadConfig(filepath.Join(root, ConfigFileName))
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		// Missing or unreadable: scan without it. Root problems surface from the scan itself.
		return Config{}, nil
	}
	return cfg, err
}
