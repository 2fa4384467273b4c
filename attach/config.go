package attach

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/excerptkit/excerpt"
)

// Sentinel errors for configuration loading.
var (
	// ErrUnsupportedFormat indicates the config file extension is not
	// recognized.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Spec is the per-container configuration surface: how many display lines
// to keep and which markers to append.
type Spec struct {
	// Lines is the maximum number of display lines. Values below 1 are
	// treated as 1.
	Lines int `toml:"lines" yaml:"lines" json:"lines"`

	// End is the marker appended when truncation occurs. Empty means the
	// default "…".
	End string `toml:"end" yaml:"end" json:"end,omitempty"`

	// AlwaysEnd is a marker appended whether or not truncation occurs.
	AlwaysEnd string `toml:"always_end" yaml:"always_end" json:"always_end,omitempty"`
}

// normalize applies defaults.
func (s Spec) normalize() Spec {
	if s.Lines < 1 {
		s.Lines = 1
	}
	if s.End == "" {
		s.End = excerpt.DefaultEnd
	}
	return s
}

// Config is a declarative attachment file: named container specs plus the
// shared debounce knob for resize reactivity.
type Config struct {
	// DebounceMS is the resize quiet period in milliseconds. Zero means
	// the default (100ms).
	DebounceMS int `toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms,omitempty"`

	// Containers maps a container name to its spec.
	Containers map[string]Spec `toml:"containers" yaml:"containers" json:"containers"`
}

// Delay returns the configured debounce quiet period, or zero when unset
// (callers fall back to the debounce package default).
func (c *Config) Delay() time.Duration {
	if c.DebounceMS <= 0 {
		return 0
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load reads an attachment config from path. The format follows the file
// extension: .toml, .yaml, or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	for name, spec := range cfg.Containers {
		cfg.Containers[name] = spec.normalize()
	}
	return &cfg, nil
}

// Schema returns a JSON Schema describing the attachment config, for
// editor validation of config files.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	return r.Reflect(&Config{})
}
