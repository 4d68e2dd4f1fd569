package justwatch

import (
	"strconv"
	"strings"
)

// Params holds the optional filters for a titles or providers request.
// Values are sent as given: lists are expected comma joined and already URL safe.
type Params struct {
	ContentTypes       *string `json:"content_types,omitempty"`
	PresentationTypes  *string `json:"presentation_types,omitempty"`
	Providers          *string `json:"providers,omitempty"`
	Genres             *string `json:"genres,omitempty"`
	Languages          *string `json:"languages,omitempty"`
	ReleaseYearFrom    *string `json:"release_year_from,omitempty"`
	ReleaseYearUntil   *string `json:"release_year_until,omitempty"`
	MonetizationTypes  *string `json:"monetization_types,omitempty"`
	MinPrice           *string `json:"min_price,omitempty"`
	MaxPrice           *string `json:"max_price,omitempty"`
	ScoringFilterTypes *string `json:"scoring_filter_types,omitempty"`
	CinemaRelease      *string `json:"cinema_release,omitempty"`
	Query              *string `json:"query,omitempty"`
	Page               *string `json:"page,omitempty"`
	PageSize           *string `json:"page_size,omitempty"`
}

// String returns a pointer to s, for filling Params fields inline.
func String(s string) *string {
	return &s
}

// WithQuery returns a copy of p with the free text query set.
func (p Params) WithQuery(query string) Params {
	p.Query = &query
	return p
}

// WithPage returns a copy of p requesting the given page.
func (p Params) WithPage(page, pageSize int) Params {
	p.Page = String(strconv.Itoa(page))
	p.PageSize = String(strconv.Itoa(pageSize))
	return p
}

type param struct {
	key   string
	value *string
}

// fields lists the parameters in declaration order.
func (p Params) fields() []param {
	return []param{
		{"content_types", p.ContentTypes},
		{"presentation_types", p.PresentationTypes},
		{"providers", p.Providers},
		{"genres", p.Genres},
		{"languages", p.Languages},
		{"release_year_from", p.ReleaseYearFrom},
		{"release_year_until", p.ReleaseYearUntil},
		{"monetization_types", p.MonetizationTypes},
		{"min_price", p.MinPrice},
		{"max_price", p.MaxPrice},
		{"scoring_filter_types", p.ScoringFilterTypes},
		{"cinema_release", p.CinemaRelease},
		{"query", p.Query},
		{"page", p.Page},
		{"page_size", p.PageSize},
	}
}

// Encode builds the query string: key=value for each set field joined by '&'.
// Values are not escaped.
func (p Params) Encode() string {
	var b strings.Builder
	for _, f := range p.fields() {
		if f.value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(*f.value)
	}
	return b.String()
}
