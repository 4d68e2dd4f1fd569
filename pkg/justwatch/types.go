// Package justwatch provides a client for the JustWatch content API.
package justwatch

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// TitleType distinguishes movies from shows.
type TitleType string

const (
	Movie TitleType = "movie"
	Show  TitleType = "show"
)

// UnmarshalText accepts only the known title types.
func (t *TitleType) UnmarshalText(text []byte) error {
	switch v := TitleType(text); v {
	case Movie, Show:
		*t = v
		return nil
	default:
		return fmt.Errorf("unknown title type %q", string(text))
	}
}

// Title is a movie or show returned by the titles endpoints.
type Title struct {
	ID                   uint64    `json:"id"`
	Title                string    `json:"title"`
	FullPath             string    `json:"full_path"`
	Poster               *string   `json:"poster,omitempty"`
	ShortDescription     *string   `json:"short_description,omitempty"`
	OriginalReleaseYear  *uint64   `json:"original_release_year,omitempty"`
	TMDBPopularity       float64   `json:"tmdb_popularity"`
	ObjectType           TitleType `json:"object_type"`
	OriginalTitle        string    `json:"original_title"`
	LocalizedReleaseDate *string   `json:"localized_release_date,omitempty"`
	Offers               []Offer   `json:"offers,omitempty"`
	Scoring              []Score   `json:"scoring"`
	OriginalLanguage     *string   `json:"original_language,omitempty"`
	AgeCertification     *string   `json:"age_certification,omitempty"` // e.g., "PG-13"
	Runtime              *uint64   `json:"runtime,omitempty"`           // minutes
	CinemaReleaseDate    *string   `json:"cinema_release_date,omitempty"`
	CinemaReleaseWeek    *string   `json:"cinema_release_week,omitempty"`
}

// UnmarshalJSON decodes a title, rejecting objects that lack a required field.
func (t *Title) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "title",
		"id", "title", "full_path", "tmdb_popularity", "object_type", "original_title", "scoring"); err != nil {
		return err
	}
	type plain Title
	return json.Unmarshal(data, (*plain)(t))
}

// Score returns the value of the first score of the given type.
func (t *Title) Score(st ScoreType) (float64, bool) {
	for _, s := range t.Scoring {
		if s.ProviderType == st {
			v, err := s.Float64()
			return v, err == nil
		}
	}
	return 0, false
}

// Year returns the original release year, or 0 when unknown.
func (t *Title) Year() int {
	if t.OriginalReleaseYear == nil {
		return 0
	}
	return int(*t.OriginalReleaseYear)
}

// OfferURLs holds platform specific links for an offer.
type OfferURLs struct {
	StandardWeb       string  `json:"standard_web"`
	DeeplinkIOS       *string `json:"deeplink_ios,omitempty"`
	DeeplinkAndroid   *string `json:"deeplink_android,omitempty"`
	DeeplinkAndroidTV *string `json:"deeplink_android_tv,omitempty"`
}

// UnmarshalJSON decodes offer URLs, requiring the web link.
func (u *OfferURLs) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "offer urls", "standard_web"); err != nil {
		return err
	}
	type plain OfferURLs
	return json.Unmarshal(data, (*plain)(u))
}

// Offer is one way to watch a title on a provider.
type Offer struct {
	MonetizationType      string    `json:"monetization_type"` // "flatrate", "rent", "buy", ...
	ProviderID            uint64    `json:"provider_id"`
	RetailPrice           *float64  `json:"retail_price,omitempty"`
	Currency              *string   `json:"currency,omitempty"`
	URLs                  OfferURLs `json:"urls"`
	PresentationType      string    `json:"presentation_type"` // "sd", "hd", "4k"
	DateCreatedProviderID string    `json:"date_created_provider_id"`
	DateCreated           string    `json:"date_created"`
	Country               string    `json:"country"`
}

// UnmarshalJSON decodes an offer, rejecting objects that lack a required field.
func (o *Offer) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "offer",
		"monetization_type", "provider_id", "urls", "presentation_type",
		"date_created_provider_id", "date_created", "country"); err != nil {
		return err
	}
	type plain Offer
	return json.Unmarshal(data, (*plain)(o))
}

// Price formats the retail price with its currency, or "" when the offer has none.
func (o *Offer) Price() string {
	if o.RetailPrice == nil {
		return ""
	}
	price := strconv.FormatFloat(*o.RetailPrice, 'f', 2, 64)
	if o.Currency != nil && *o.Currency != "" {
		return price + " " + *o.Currency
	}
	return price
}

// Provider is a streaming service.
type Provider struct {
	ID            uint64  `json:"id"`
	TechnicalName string  `json:"technical_name"`
	ShortName     string  `json:"short_name"`
	ClearName     string  `json:"clear_name"`
	IconURL       *string `json:"icon_url,omitempty"`
}

// UnmarshalJSON decodes a provider, rejecting objects that lack a required field.
func (p *Provider) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "provider", "id", "technical_name", "short_name", "clear_name"); err != nil {
		return err
	}
	type plain Provider
	return json.Unmarshal(data, (*plain)(p))
}

// requireFields checks that data is an object holding every named field with a non-null value.
func requireFields(data []byte, kind string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	for _, f := range fields {
		v, ok := raw[f]
		if !ok || string(v) == "null" {
			return &FieldError{Kind: kind, Field: f}
		}
	}
	return nil
}
