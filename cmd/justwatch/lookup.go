package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/justwatch/internal/lookup"
	"github.com/vmunix/justwatch/pkg/justwatch"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var minScore float64

	cmd := &cobra.Command{
		Use:   "lookup [flags] <title>...",
		Short: "Find where each title can be watched",
		Long: `Find the best matching title for each argument and list its offers.
Each argument is searched separately and in parallel.

Examples:
  justwatch lookup Interstellar "The Matrix" Heat
  justwatch lookup --min-score 0.95 "Toy Story 2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, ctx, args, minScore)
		},
	}

	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Similarity floor for a match, 0-1 (default from config)")

	return cmd
}

type lookupOutput struct {
	Query      string           `json:"query"`
	Match      *justwatch.Title `json:"match,omitempty"`
	Score      float64          `json:"score"`
	Confidence string           `json:"confidence"`
	Offers     []lookup.Offer   `json:"offers,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func runLookup(cmd *cobra.Command, ctx *commandContext, queries []string, minScore float64) error {
	client, cfg, err := ctx.client(cmd)
	if err != nil {
		return err
	}
	if minScore <= 0 {
		minScore = cfg.Lookup.MinScore
	}

	svc := lookup.New(client, lookup.Config{
		Concurrency: cfg.Lookup.Concurrency,
		MinScore:    minScore,
	}, ctx.logger(cmd, cfg))

	results, err := svc.Lookup(cmd.Context(), queries)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if ctx.flags.jsonOutput {
		outputs := make([]lookupOutput, 0, len(results))
		for _, r := range results {
			o := lookupOutput{
				Query:      r.Query,
				Match:      r.Title,
				Score:      r.Score,
				Confidence: r.Confidence.String(),
				Offers:     r.Offers,
			}
			if r.Err != nil {
				o.Error = r.Err.Error()
			}
			outputs = append(outputs, o)
		}
		return writeJSON(out, outputs)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.Query, "(no match)", "-", fmt.Sprintf("%.2f", r.Score), "-"})
			continue
		}
		rows = append(rows, []string{
			r.Query,
			truncate(r.Title.Title, 36),
			formatYear(r.Title.Year()),
			fmt.Sprintf("%.2f", r.Score),
			formatOffers(r.Offers),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Query", "Match", "Year", "Score", "Where to watch"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
	return nil
}

// formatOffers lists each provider once with its monetization types,
// e.g. "Netflix (flatrate), Apple iTunes (rent 3.99 USD, buy 9.99 USD)".
func formatOffers(offers []lookup.Offer) string {
	if len(offers) == 0 {
		return "-"
	}

	var order []string
	kinds := make(map[string][]string)
	for _, o := range offers {
		kind := o.MonetizationType
		if price := o.Price(); price != "" {
			kind += " " + price
		}
		if _, ok := kinds[o.ProviderName]; !ok {
			order = append(order, o.ProviderName)
		}
		if !slices.Contains(kinds[o.ProviderName], kind) {
			kinds[o.ProviderName] = append(kinds[o.ProviderName], kind)
		}
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, name+" ("+strings.Join(kinds[name], ", ")+")")
	}
	return strings.Join(parts, ", ")
}
