package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/justwatch/pkg/justwatch"
)

type searchOptions struct {
	contentTypes string
	providers    string
	monetization string
	page         int
	pageSize     int
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [flags] <query>...",
		Short: "Search popular titles",
		Long: `Search popular titles matching a query.

Examples:
  justwatch search Interstellar
  justwatch search "The Matrix" --type movie
  justwatch search dark --type show --providers nfx --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, ctx, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.contentTypes, "type", "", "Content types, comma separated (movie, show)")
	cmd.Flags().StringVar(&opts.providers, "providers", "", "Provider short names, comma separated (e.g. nfx,prv)")
	cmd.Flags().StringVar(&opts.monetization, "monetization", "", "Monetization types, comma separated (flatrate, rent, buy, free, ads)")
	cmd.Flags().IntVar(&opts.page, "page", 0, "Result page")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Results per page")

	return cmd
}

// params builds the request filters; only flags the user set are sent.
func (o *searchOptions) params(query string) justwatch.Params {
	p := justwatch.Params{}.WithQuery(query)
	if o.contentTypes != "" {
		p.ContentTypes = justwatch.String(o.contentTypes)
	}
	if o.providers != "" {
		p.Providers = justwatch.String(o.providers)
	}
	if o.monetization != "" {
		p.MonetizationTypes = justwatch.String(o.monetization)
	}
	if o.page > 0 {
		p.Page = justwatch.String(strconv.Itoa(o.page))
	}
	if o.pageSize > 0 {
		p.PageSize = justwatch.String(strconv.Itoa(o.pageSize))
	}
	return p
}

func runSearch(cmd *cobra.Command, ctx *commandContext, opts *searchOptions, query string) error {
	client, _, err := ctx.client(cmd)
	if err != nil {
		return err
	}

	titles, err := client.Popular(cmd.Context(), opts.params(query))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if ctx.flags.jsonOutput {
		return writeJSON(out, titles)
	}

	if len(titles) == 0 {
		fmt.Fprintf(out, "No titles found for %q\n", query)
		return nil
	}

	fmt.Fprintf(out, "Found %d titles for %q:\n\n", len(titles), query)
	rows := make([][]string, 0, len(titles))
	for i, t := range titles {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(t.Title, 42),
			formatYear(t.Year()),
			string(t.ObjectType),
			formatScore(&t, justwatch.ImdbScore),
			strconv.Itoa(len(t.Offers)),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"#", "Title", "Year", "Type", "IMDb", "Offers"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight},
	))
	return nil
}

func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func formatScore(t *justwatch.Title, st justwatch.ScoreType) string {
	v, ok := t.Score(st)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
