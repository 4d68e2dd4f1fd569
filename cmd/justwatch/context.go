package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/vmunix/justwatch/internal/config"
	"github.com/vmunix/justwatch/pkg/justwatch"
)

type globalFlags struct {
	configPath string
	jsonOutput bool
	logLevel   string
	locale     string
	baseURL    string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the explicit or discovered config file once. With no
// file anywhere the defaults apply. Flags override file values.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := c.loadConfig()
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags.locale != "" {
			cfg.API.Locale = c.flags.locale
		}
		if c.flags.baseURL != "" {
			cfg.API.BaseURL = c.flags.baseURL
		}
		if c.flags.logLevel != "" {
			cfg.Log.Level = c.flags.logLevel
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loadConfig() (*config.Config, error) {
	path := strings.TrimSpace(c.flags.configPath)
	if path == "" {
		discovered, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	return config.Load(path)
}

// logger writes to stderr so stdout stays clean for --json.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
}

func (c *commandContext) client(cmd *cobra.Command) (*justwatch.Client, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	client := justwatch.New(
		justwatch.WithBaseURL(cfg.API.BaseURL),
		justwatch.WithLocale(cfg.API.Locale),
		justwatch.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		justwatch.WithLogger(c.logger(cmd, cfg)),
	)
	return client, cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
