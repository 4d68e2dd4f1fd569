package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "justwatch",
		Short: "Search JustWatch for movies, shows and streaming offers",
		Long: `justwatch - command line client for the JustWatch content API

Search titles, list streaming providers, and find where a batch
of titles can be watched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (default: discovered)")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Output as JSON")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.locale, "locale", "", "Locale such as en_US (overrides config)")
	pf.StringVar(&flags.baseURL, "base-url", "", "API base URL (overrides config)")
	_ = pf.MarkHidden("base-url")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("justwatch {{.Version}}\n")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newProvidersCommand(ctx))
	rootCmd.AddCommand(newLookupCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("justwatch %s\n", version)
		},
	}
}
