// Package yaml loads docsearch configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docsearch"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the home
// directory when no path is given.
const DefaultFileName = ".docsearch.yaml"

// PathEnv names the environment variable that overrides the default path.
const PathEnv = "DOCSEARCH_CONFIG"

// Config holds the settings read from a configuration file. Zero values
// mean the setting was not given.
type Config struct {
	// Stack Exchange API key.
	SEKey string `yaml:"se_key"`

	// HTTP request timeout, e.g. "5s".
	Timeout time.Duration `yaml:"timeout"`

	// Stack Exchange requests per second.
	RateLimit float64 `yaml:"rate_limit"`

	// Log every lookup and fetch to stderr.
	Debug bool `yaml:"debug"`
}

// Validate returns an error if the configuration has invalid values.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return docsearch.Errorf(docsearch.EINVALID, "timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return docsearch.Errorf(docsearch.EINVALID, "rate_limit must not be negative")
	}
	return nil
}

// DefaultPath returns the configuration path from PathEnv, falling back to
// DefaultFileName in the user's home directory. It returns an empty string
// when neither is available.
func DefaultPath() string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads and validates the configuration file at path. Errors for a
// missing file wrap fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates configuration data. Unknown keys are
// rejected; an empty document yields an empty Config.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
