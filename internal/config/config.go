// Package config provides the CLI configuration.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every environment variable, e.g. ALMANAC_LOG_LEVEL.
const Prefix = "ALMANAC"

// LogFormat selects the log output format.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds the environment-based configuration.
type Config struct {
	// LogLevel is the log verbosity level.
	// Env: ALMANAC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is text or json.
	// Env: ALMANAC_LOG_FORMAT (default: text)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"text"`

	// Concurrency is the number of goroutines mapping the intervals of a stage.
	// Env: ALMANAC_CONCURRENCY (default: 1)
	Concurrency int `envconfig:"CONCURRENCY" default:"1"`

	// BruteForceBudget caps the number of seeds enumerated one by one. 0 disables the cap.
	// Env: ALMANAC_BRUTE_FORCE_BUDGET (default: 100000000)
	BruteForceBudget int64 `envconfig:"BRUTE_FORCE_BUDGET" default:"100000000"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the values that envconfig cannot.
func (c Config) Validate() error {
	switch LogFormat(strings.ToLower(string(c.LogFormat))) {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log format %q", c.LogFormat)
	}
	if c.Concurrency < 1 {
		return errors.Wrapf(ErrInvalidConfig, "concurrency %d", c.Concurrency)
	}
	if c.BruteForceBudget < 0 {
		return errors.Wrapf(ErrInvalidConfig, "brute force budget %d", c.BruteForceBudget)
	}

	return nil
}

// LoadDotEnv loads environment variables from a .env file.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return errors.Wrapf(godotenv.Load(path), "unable to load %s", path)
}

// Load reads the optional .env file then the environment. Variables already set in the environment win.
func Load(envPath string) (Config, error) {
	err := LoadDotEnv(envPath)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	err = envconfig.Process(Prefix, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to process environment")
	}
	cfg.LogFormat = LogFormat(strings.ToLower(string(cfg.LogFormat)))

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
