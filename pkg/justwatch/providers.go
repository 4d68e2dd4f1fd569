package justwatch

import (
	"context"
	"net/http"
	"time"
)

// Providers fetches every streaming provider for the client's locale, keyed by id.
// When ids repeat the later entry wins.
func (c *Client) Providers(ctx context.Context) (map[uint64]Provider, error) {
	start := time.Now()

	raw, err := c.do(ctx, http.MethodGet, "/providers/locale/"+c.locale, Params{})
	if err != nil {
		return nil, err
	}

	elems, ok := arrayOf(raw)
	if !ok {
		c.log.Warn("providers response is not an array", "locale", c.locale)
	}

	providers := make(map[uint64]Provider, len(elems))
	for _, p := range decodeEach[Provider](c.log, "provider", elems) {
		providers[p.ID] = p
	}

	c.log.Debug("fetched providers",
		"locale", c.locale,
		"count", len(providers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return providers, nil
}
