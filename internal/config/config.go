// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	API    APIConfig    `toml:"api"`
	Log    LogConfig    `toml:"log"`
	Lookup LookupConfig `toml:"lookup"`
}

type APIConfig struct {
	BaseURL string        `toml:"base_url"`
	Locale  string        `toml:"locale"`
	Timeout time.Duration `toml:"timeout"` // 0 means no timeout
}

type LogConfig struct {
	Level string `toml:"level"`
}

type LookupConfig struct {
	Concurrency int     `toml:"concurrency"`
	MinScore    float64 `toml:"min_score"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://apis.justwatch.com/content"
	}
	if c.API.Locale == "" {
		c.API.Locale = "en_US"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Lookup.Concurrency == 0 {
		c.Lookup.Concurrency = 4
	}
	if c.Lookup.MinScore == 0 {
		c.Lookup.MinScore = 0.85
	}
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved variables and validation failures are reported as *Error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// substituteEnvVars replaces variable references with their values. Unset
// variables without a default are left in place and returned as missing.
// A set but empty variable falls back to its default.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := parts[1], parts[2] != "", parts[3]

		value, ok := os.LookupEnv(name)
		if ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return def
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}

// Summary renders the effective settings, one per line.
func (c *Config) Summary() string {
	timeout := "none"
	if c.API.Timeout > 0 {
		timeout = c.API.Timeout.String()
	}
	lines := []string{
		"api.base_url:       " + c.API.BaseURL,
		"api.locale:         " + c.API.Locale,
		"api.timeout:        " + timeout,
		"log.level:          " + c.Log.Level,
		fmt.Sprintf("lookup.concurrency: %d", c.Lookup.Concurrency),
		fmt.Sprintf("lookup.min_score:   %.2f", c.Lookup.MinScore),
	}
	return strings.Join(lines, "\n")
}
