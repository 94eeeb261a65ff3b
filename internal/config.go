package internal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings read from config.yaml in the data
// directory. Every field has a default; a missing or malformed file
// yields the defaults rather than an error surfaced to the user.
type Config struct {
	// StoragePath overrides the detected data directory.
	StoragePath string `yaml:"storage_path,omitempty"`
	// GenerationDelayMS is the simulated generation latency.
	GenerationDelayMS int `yaml:"generation_delay_ms,omitempty"`
	// Accent is the ANSI 256 color used for highlights.
	Accent string `yaml:"accent,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		GenerationDelayMS: int(DefaultGenerationDelay / time.Millisecond),
		Accent:            "212",
	}
}

// LoadConfig reads the config file at path. Absent or unreadable files
// return the defaults; a parse failure logs and also falls back.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logger.Warnw("ignoring malformed config file", "path", path, "error", err)
		return cfg
	}

	if loaded.StoragePath != "" {
		cfg.StoragePath = loaded.StoragePath
	}
	if loaded.GenerationDelayMS > 0 {
		cfg.GenerationDelayMS = loaded.GenerationDelayMS
	}
	if loaded.Accent != "" {
		cfg.Accent = loaded.Accent
	}
	return cfg
}

// GenerationDelay returns the configured latency as a duration.
func (c Config) GenerationDelay() time.Duration {
	return time.Duration(c.GenerationDelayMS) * time.Millisecond
}

// Save writes the config back to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
