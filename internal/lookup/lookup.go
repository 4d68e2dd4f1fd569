// Package lookup answers "where can I watch X" for a batch of queries.
package lookup

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks github.com/vmunix/justwatch/internal/lookup Catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/vmunix/justwatch/internal/match"
	"github.com/vmunix/justwatch/pkg/justwatch"
	"golang.org/x/sync/errgroup"
)

// ErrNoMatch indicates no search result was close enough to the query.
// This is informational, not a failure.
var ErrNoMatch = errors.New("no matching title found")

const (
	defaultConcurrency = 4
	defaultMinScore    = 0.85
)

// Catalog is the subset of the JustWatch client used by lookups.
type Catalog interface {
	Search(ctx context.Context, query string) ([]justwatch.Title, error)
	Providers(ctx context.Context) (map[uint64]justwatch.Provider, error)
}

var _ Catalog = (*justwatch.Client)(nil)

// Config tunes a Service.
type Config struct {
	Concurrency int     // Parallel searches, default 4
	MinScore    float64 // Similarity floor for a match, default 0.85
}

// Service resolves queries to titles and their offers.
type Service struct {
	catalog Catalog
	config  Config
	log     *slog.Logger
}

// New creates a lookup service.
func New(catalog Catalog, cfg Config, log *slog.Logger) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = defaultMinScore
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		catalog: catalog,
		config:  cfg,
		log:     log.With("component", "lookup"),
	}
}

// Offer is a title offer with its provider resolved.
type Offer struct {
	justwatch.Offer
	ProviderName string `json:"provider_name"`
}

// Result is the answer for one query.
type Result struct {
	Query      string
	Title      *justwatch.Title // nil when Err is set
	Score      float64
	Confidence match.Confidence
	Offers     []Offer
	Candidates int   // Titles returned by the search
	Err        error // ErrNoMatch when nothing scored above the floor
}

// Lookup searches every query and returns one Result per query, in order.
// Providers are fetched once and shared. The first request error cancels the
// remaining searches and is returned.
func (s *Service) Lookup(ctx context.Context, queries []string) ([]Result, error) {
	start := time.Now()

	providers, err := s.catalog.Providers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch providers: %w", err)
	}

	results := make([]Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i, query := range queries {
		g.Go(func() error {
			titles, err := s.catalog.Search(ctx, query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			results[i] = s.resolve(query, titles, providers)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("lookup completed",
		"queries", len(queries),
		"providers", len(providers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return results, nil
}

func (s *Service) resolve(query string, titles []justwatch.Title, providers map[uint64]justwatch.Provider) Result {
	res := Result{Query: query, Candidates: len(titles)}

	candidates := make([]match.Candidate, len(titles))
	for i, t := range titles {
		candidates[i] = match.Candidate{Names: []string{t.Title, t.OriginalTitle}}
	}

	best := match.Best(query, candidates)
	res.Score = best.Score
	res.Confidence = best.Confidence

	if best.Index < 0 || best.Score < s.config.MinScore {
		s.log.Debug("no match", "query", query, "candidates", len(titles), "best_score", best.Score)
		res.Err = ErrNoMatch
		return res
	}

	title := titles[best.Index]
	res.Title = &title
	res.Offers = ResolveOffers(title.Offers, providers)
	return res
}

// ResolveOffers attaches provider names to offers. Offers from unknown
// providers are kept and named by their numeric id.
func ResolveOffers(offers []justwatch.Offer, providers map[uint64]justwatch.Provider) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		name := strconv.FormatUint(o.ProviderID, 10)
		if p, ok := providers[o.ProviderID]; ok {
			name = p.ClearName
		}
		out = append(out, Offer{Offer: o, ProviderName: name})
	}
	return out
}
