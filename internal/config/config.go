// Package config loads settings for the adt command from a YAML file and
// the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// SetImpls lists the values accepted by Sets.Impl.
var SetImpls = []string{"array", "sorted", "open", "chained"}

// Huffman configures the compress and decompress commands.
type Huffman struct {
	Suffix     string `yaml:"suffix" env:"ADT_SUFFIX" env-default:".huf"`
	TempDir    string `yaml:"temp_dir" env:"ADT_TEMP_DIR"`
	Workers    int    `yaml:"workers" env:"ADT_WORKERS" env-default:"4"`
	BufferSize int    `yaml:"buffer_size" env:"ADT_BUFFER_SIZE" env-default:"65536"`
}

// Sets selects the set implementation used by the word commands.
type Sets struct {
	Impl        string `yaml:"impl" env:"ADT_SET_IMPL" env-default:"chained"`
	MaxElements int    `yaml:"max_elements" env:"ADT_MAX_ELEMENTS" env-default:"18000"`
}

// Config is the top-level configuration of the adt command.
type Config struct {
	LogLevel string  `yaml:"log_level" env:"ADT_LOG_LEVEL" env-default:"info"`
	Huffman  Huffman `yaml:"huffman"`
	Sets     Sets    `yaml:"sets"`
}

// Load reads the YAML file at path, then applies environment overrides and
// defaults.  An empty path reads only the environment.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the commands cannot run with.
func (cfg Config) Validate() error {
	if cfg.Huffman.Suffix == "" {
		return fmt.Errorf("huffman.suffix must not be empty")
	}
	if cfg.Huffman.Workers <= 0 {
		return fmt.Errorf("huffman.workers must be positive, got %d", cfg.Huffman.Workers)
	}
	if cfg.Huffman.BufferSize <= 0 {
		return fmt.Errorf("huffman.buffer_size must be positive, got %d", cfg.Huffman.BufferSize)
	}
	if cfg.Sets.MaxElements <= 0 {
		return fmt.Errorf("sets.max_elements must be positive, got %d", cfg.Sets.MaxElements)
	}
	for _, impl := range SetImpls {
		if cfg.Sets.Impl == impl {
			return nil
		}
	}
	return fmt.Errorf("sets.impl must be one of %v, got %q", SetImpls, cfg.Sets.Impl)
}
