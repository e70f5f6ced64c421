package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unitglance/unitglance/pkg/rates"
)

// Config is the server configuration, loaded from an optional YAML file
// and then overlaid with environment variables so container deployments
// can tweak single values without shipping a file.
type Config struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Sentry struct {
		DSN         string `yaml:"dsn"`
		Environment string `yaml:"environment"`
	} `yaml:"sentry"`

	// RedisURL, when set, backs both the rate cache and the settings
	// store. Empty keeps everything in process memory.
	RedisURL string `yaml:"redis_url"`

	// SettingsFile points at a YAML preferences file watched for edits.
	// Takes precedence over Redis for settings storage.
	SettingsFile string `yaml:"settings_file"`

	Rates struct {
		PrimaryURL   string   `yaml:"primary_url"`
		FallbackURL  string   `yaml:"fallback_url"`
		WarmPairs    []string `yaml:"warm_pairs"`
		WarmSchedule string   `yaml:"warm_schedule"`
	} `yaml:"rates"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Addr = ":8080"
	cfg.ShutdownTimeout = 15 * time.Second
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Sentry.Environment = "production"
	cfg.Rates.WarmSchedule = "*/20 * * * *"
	return cfg
}

// loadConfig reads the YAML file at path when one is given, then applies
// environment overrides. A missing explicit file is an error; no path at
// all just means defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setIf := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIf(&c.Addr, "UNITGLANCE_ADDR")
	setIf(&c.Log.Level, "UNITGLANCE_LOG_LEVEL")
	setIf(&c.Log.Format, "UNITGLANCE_LOG_FORMAT")
	setIf(&c.Sentry.DSN, "SENTRY_DSN")
	setIf(&c.Sentry.Environment, "SENTRY_ENVIRONMENT")
	setIf(&c.RedisURL, "UNITGLANCE_REDIS_URL")
	setIf(&c.SettingsFile, "UNITGLANCE_SETTINGS_FILE")
}

// warmPairs parses the configured "FROM-TO" pair strings, skipping
// anything malformed.
func (c *Config) warmPairs() []rates.Pair {
	pairs := make([]rates.Pair, 0, len(c.Rates.WarmPairs))
	for _, raw := range c.Rates.WarmPairs {
		from, to, ok := strings.Cut(raw, "-")
		if !ok || from == "" || to == "" {
			continue
		}
		pairs = append(pairs, rates.Pair{From: from, To: to})
	}
	return pairs
}
