package las

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds parsing options. The zero value is a valid default.
type Config struct {
	// LegacyZeroStrings preserves the historical value-coercion asymmetry:
	// a data token whose numeric value is zero stays a string instead of
	// becoming the number 0. Default false, which treats zero readings as
	// numbers.
	LegacyZeroStrings bool `json:"legacy_zero_strings" yaml:"legacy_zero_strings" toml:"legacy_zero_strings"`

	// NullValue overrides the NULL sentinel declared in the well section.
	// Nil reads the sentinel from the well table's NULL property.
	NullValue *float64 `json:"null_value" yaml:"null_value" toml:"null_value"`

	// StrictSections makes the absence of the optional ~O section an error
	// instead of an empty result. Default false, matching common files
	// that omit it.
	StrictSections bool `json:"strict_sections" yaml:"strict_sections" toml:"strict_sections"`
}

// DefaultConfig returns the default parsing options.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads a Config from a file, decoding by extension:
// .yaml/.yml, .toml, or .json.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q", ext)
	}

	return cfg, nil
}
