package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/justwatch/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	configCmd.AddCommand(newConfigTestCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())
	return configCmd
}

func newConfigTestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates TOML syntax, field values and environment variable substitution.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.flags.configPath
			if len(args) > 0 {
				path = args[0]
			}
			return runConfigTest(cmd.OutOrStdout(), path)
		},
	}
}

func runConfigTest(out io.Writer, path string) error {
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, cfg.Summary())
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(out io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(out, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		fmt.Fprintln(out)
	}
	if len(e.Errors) > 0 {
		fmt.Fprintln(out, "Validation errors:")
		for _, msg := range e.Errors {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			err := config.WriteExample(path, force)
			if errors.Is(err, config.ErrExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
