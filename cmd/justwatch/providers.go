package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmunix/justwatch/pkg/justwatch"
)

func newProvidersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List streaming providers for the locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProviders(cmd, ctx)
		},
	}
}

// sortedProviders orders providers by id for stable output.
func sortedProviders(m map[uint64]justwatch.Provider) []justwatch.Provider {
	list := make([]justwatch.Provider, 0, len(m))
	for _, p := range m {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b justwatch.Provider) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}

func runProviders(cmd *cobra.Command, ctx *commandContext) error {
	client, cfg, err := ctx.client(cmd)
	if err != nil {
		return err
	}

	providers, err := client.Providers(cmd.Context())
	if err != nil {
		return fmt.Errorf("list providers: %w", err)
	}
	list := sortedProviders(providers)

	out := cmd.OutOrStdout()
	if ctx.flags.jsonOutput {
		return writeJSON(out, list)
	}

	if len(list) == 0 {
		fmt.Fprintf(out, "No providers for %s\n", cfg.API.Locale)
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{strconv.FormatUint(p.ID, 10), p.ClearName, p.ShortName, p.TechnicalName})
	}
	fmt.Fprintf(out, "%d providers for %s:\n\n", len(list), cfg.API.Locale)
	fmt.Fprintln(out, renderTable(out,
		[]string{"ID", "Name", "Short", "Technical"},
		rows,
		[]columnAlignment{alignRight},
	))
	return nil
}
