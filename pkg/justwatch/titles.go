package justwatch

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Search returns the popular titles matching query, in the order the API ranks them.
func (c *Client) Search(ctx context.Context, query string) ([]Title, error) {
	return c.Popular(ctx, Params{}.WithQuery(query))
}

// Popular queries the popular titles endpoint with arbitrary filters.
// A response without an items array yields no titles. Titles that fail to
// decode are logged and skipped.
func (c *Client) Popular(ctx context.Context, params Params) ([]Title, error) {
	start := time.Now()

	raw, err := c.do(ctx, http.MethodPost, "/titles/"+c.locale+"/popular", params)
	if err != nil {
		return nil, err
	}

	var page struct {
		Items json.RawMessage `json:"items"`
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &page); err == nil {
		items, _ = arrayOf(page.Items)
	}

	titles := decodeEach[Title](c.log, "title", items)

	c.log.Debug("search completed",
		"query", deref(params.Query),
		"items", len(items),
		"results", len(titles),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return titles, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
