// Package config loads the bridge's runtime configuration.
//
// Values are layered, later sources winning: Default, an optional YAML file,
// an optional .env file, then the process environment (G1_* variables).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the bridge's runtime configuration.
type Config struct {
	NetworkInterface string  `yaml:"network_interface" env:"G1_NETWORK_INTERFACE"`
	DomainID         int32   `yaml:"domain_id" env:"G1_DOMAIN_ID"`
	LocoTimeout      float32 `yaml:"loco_timeout" env:"G1_LOCO_TIMEOUT"` // seconds
	ArmTimeout       float32 `yaml:"arm_timeout" env:"G1_ARM_TIMEOUT"`   // seconds
	Log              Log     `yaml:"log"`
	// MetricsAddr enables the Prometheus endpoint when set, e.g. ":9464".
	MetricsAddr string `yaml:"metrics_addr" env:"G1_METRICS_ADDR"`
	// Simulate swaps the native SDK for the in-process simulator.
	Simulate bool `yaml:"simulate" env:"G1_SIMULATE"`
}

// Log configures the logging sink.
type Log struct {
	Level      string `yaml:"level" env:"G1_LOG_LEVEL"`
	Format     string `yaml:"format" env:"G1_LOG_FORMAT"`
	File       string `yaml:"file" env:"G1_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"G1_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"G1_LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"G1_LOG_MAX_AGE_DAYS"`
}

// Default returns the configuration for a G1 on its wired interface.
func Default() Config {
	return Config{
		NetworkInterface: "eth0",
		DomainID:         0,
		LocoTimeout:      3.0,
		ArmTimeout:       10.0,
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Sources names the inputs Load reads. Empty paths are skipped; a nil Environ
// means os.Environ().
type Sources struct {
	File    string
	EnvFile string
	Environ []string
}

// FromEnv returns Sources taking file paths from G1_CONFIG and G1_ENV_FILE.
func FromEnv() Sources {
	return Sources{File: os.Getenv("G1_CONFIG"), EnvFile: os.Getenv("G1_ENV_FILE")}
}

// Load builds a validated Config from src.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", src.File, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", src.File, err)
		}
	}

	vars := make(map[string]string)
	if src.EnvFile != "" {
		dot, err := godotenv.Read(src.EnvFile)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", src.EnvFile, err)
		}
		for k, v := range dot {
			vars[k] = v
		}
	}
	environ := src.Environ
	if environ == nil {
		environ = os.Environ()
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := env.Parse(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.NetworkInterface) == "" {
		return fmt.Errorf("%w: network_interface is empty", ErrInvalidConfig)
	}
	if c.DomainID < 0 {
		return fmt.Errorf("%w: domain_id %d is negative", ErrInvalidConfig, c.DomainID)
	}
	if c.LocoTimeout <= 0 {
		return fmt.Errorf("%w: loco_timeout must be positive, got %g", ErrInvalidConfig, c.LocoTimeout)
	}
	if c.ArmTimeout <= 0 {
		return fmt.Errorf("%w: arm_timeout must be positive, got %g", ErrInvalidConfig, c.ArmTimeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// LogOptions converts the log section for logging.Open.
func (c Config) LogOptions() logging.Options {
	return logging.Options{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}
