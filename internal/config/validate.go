package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// localePattern matches JustWatch locales such as "en_US" or "de_DE".
var localePattern = regexp.MustCompile(`^[a-z]{2}_[A-Z]{2}$`)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("api.base_url: must be an absolute URL, got %q", c.API.BaseURL))
	}
	if !localePattern.MatchString(c.API.Locale) {
		errs = append(errs, fmt.Sprintf("api.locale: must look like en_US, got %q", c.API.Locale))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("api.timeout: must not be negative, got %s", c.API.Timeout))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Lookup.Concurrency < 1 {
		errs = append(errs, fmt.Sprintf("lookup.concurrency: must be at least 1, got %d", c.Lookup.Concurrency))
	}
	if c.Lookup.MinScore < 0 || c.Lookup.MinScore > 1 {
		errs = append(errs, fmt.Sprintf("lookup.min_score: must be between 0 and 1, got %g", c.Lookup.MinScore))
	}

	return errs
}
