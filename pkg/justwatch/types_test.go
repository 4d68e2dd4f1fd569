package justwatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interstellarJSON = `{
	"id": 1234,
	"title": "Interstellar",
	"full_path": "/us/movie/interstellar",
	"poster": "/poster/8074146/{profile}",
	"short_description": "The adventures of a group of explorers.",
	"original_release_year": 2014,
	"tmdb_popularity": 33.721,
	"object_type": "movie",
	"original_title": "Interstellar",
	"localized_release_date": "2014-11-05",
	"offers": [{
		"monetization_type": "rent",
		"provider_id": 2,
		"retail_price": 3.99,
		"currency": "USD",
		"urls": {
			"standard_web": "https://itunes.apple.com/us/movie/interstellar/id919051418",
			"deeplink_ios": "itms://itunes.apple.com/us/movie/interstellar/id919051418"
		},
		"presentation_type": "hd",
		"date_created_provider_id": "2016-04-01_2",
		"date_created": "2016-04-01",
		"country": "US"
	}],
	"scoring": [
		{"provider_type": "imdb:score", "value": 8.6},
		{"provider_type": "imdb:votes", "value": 1700000},
		{"provider_type": "tomato_userrating:meter", "value": 86}
	],
	"original_language": "en",
	"age_certification": "PG-13",
	"runtime": 169
}`

func TestParseScoreType(t *testing.T) {
	tests := []struct {
		alias string
		want  ScoreType
	}{
		{"imdb:score", ImdbScore},
		{"imdb:popularity", ImdbPopularity},
		{"imdb:votes", ImdbVotes},
		{"imdb:multiplied", ImdbMultiplied},
		{"tomato:id", TomatoID},
		{"tomato:score", TomatoScore},
		{"tomato:rating", TomatoRating},
		{"tomato:meter", TomatoMeter},
		{"tomato_userrating:score", TomatoUserScore},
		{"tomato_userrating:rating", TomatoUserRating},
		{"tomato_userrating:meter", TomatoUserMeter},
		{"tmdb:id", TmdbID},
		{"tmdb:score", TmdbScore},
		{"tmdb:popularity", TmdbPopularity},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := ParseScoreType(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.alias, got.Alias())
		})
	}
}

func TestParseScoreType_Unknown(t *testing.T) {
	for _, alias := range []string{"rotten:x", "ImdbScore", "", "IMDB:SCORE"} {
		_, err := ParseScoreType(alias)
		assert.Error(t, err, alias)
	}
}

func TestScoreType_String(t *testing.T) {
	assert.Equal(t, "ImdbScore", ImdbScore.String())
	assert.Equal(t, "TomatoUserMeter", TomatoUserMeter.String())
	assert.Equal(t, "ScoreType(0)", ScoreType(0).String())
	assert.Equal(t, "", ScoreType(99).Alias())
}

func TestScore_Unmarshal(t *testing.T) {
	var s Score
	require.NoError(t, json.Unmarshal([]byte(`{"provider_type":"imdb:score","value":7.9}`), &s))
	assert.Equal(t, ImdbScore, s.ProviderType)
	v, err := s.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 7.9, v, 1e-9)

	assert.Error(t, json.Unmarshal([]byte(`{"provider_type":"rotten:x","value":1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"provider_type":3,"value":1}`), &s))

	var fe *FieldError
	require.ErrorAs(t, json.Unmarshal([]byte(`{"provider_type":"imdb:score"}`), &s), &fe)
	assert.Equal(t, "value", fe.Field)
}

func TestScoreType_MarshalInvalid(t *testing.T) {
	_, err := json.Marshal(Score{Value: "1"})
	assert.Error(t, err)
}

func TestTitleType_Unmarshal(t *testing.T) {
	var tt TitleType
	require.NoError(t, json.Unmarshal([]byte(`"movie"`), &tt))
	assert.Equal(t, Movie, tt)
	require.NoError(t, json.Unmarshal([]byte(`"show"`), &tt))
	assert.Equal(t, Show, tt)

	assert.Error(t, json.Unmarshal([]byte(`"Movie"`), &tt))
	assert.Error(t, json.Unmarshal([]byte(`"show_season"`), &tt))
	assert.Error(t, json.Unmarshal([]byte(`1`), &tt))
}

func TestTitle_Unmarshal(t *testing.T) {
	var title Title
	require.NoError(t, json.Unmarshal([]byte(interstellarJSON), &title))

	assert.Equal(t, uint64(1234), title.ID)
	assert.Equal(t, "Interstellar", title.Title)
	assert.Equal(t, Movie, title.ObjectType)
	assert.Equal(t, 2014, title.Year())
	require.NotNil(t, title.Runtime)
	assert.Equal(t, uint64(169), *title.Runtime)
	assert.Nil(t, title.CinemaReleaseDate)

	require.Len(t, title.Offers, 1)
	offer := title.Offers[0]
	assert.Equal(t, "rent", offer.MonetizationType)
	assert.Equal(t, uint64(2), offer.ProviderID)
	assert.Equal(t, "3.99 USD", offer.Price())
	assert.Nil(t, offer.URLs.DeeplinkAndroid)

	score, ok := title.Score(ImdbScore)
	assert.True(t, ok)
	assert.InDelta(t, 8.6, score, 1e-9)
	_, ok = title.Score(TmdbScore)
	assert.False(t, ok)
}

func TestTitle_RoundTrip(t *testing.T) {
	var title Title
	require.NoError(t, json.Unmarshal([]byte(interstellarJSON), &title))

	out, err := json.Marshal(title)
	require.NoError(t, err)
	assert.JSONEq(t, interstellarJSON, string(out))
}

func TestTitle_RoundTrip_Minimal(t *testing.T) {
	const minimal = `{"id":1,"title":"X","full_path":"/x","tmdb_popularity":0.5,
		"object_type":"show","original_title":"X","scoring":[]}`

	var title Title
	require.NoError(t, json.Unmarshal([]byte(minimal), &title))

	out, err := json.Marshal(title)
	require.NoError(t, err)
	assert.JSONEq(t, minimal, string(out))
}

func TestTitle_Unmarshal_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{"no id", `{"title":"X","full_path":"/x","tmdb_popularity":1,"object_type":"movie","original_title":"X","scoring":[]}`, "id"},
		{"null scoring", `{"id":1,"title":"X","full_path":"/x","tmdb_popularity":1,"object_type":"movie","original_title":"X","scoring":null}`, "scoring"},
		{"null object", `null`, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var title Title
			var fe *FieldError
			require.ErrorAs(t, json.Unmarshal([]byte(tt.json), &title), &fe)
			assert.Equal(t, "title", fe.Kind)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestTitle_Unmarshal_BadNested(t *testing.T) {
	base := `{"id":1,"title":"X","full_path":"/x","tmdb_popularity":1,"object_type":"movie","original_title":"X",`

	var title Title
	// Unknown score alias fails the whole title.
	assert.Error(t, json.Unmarshal([]byte(base+`"scoring":[{"provider_type":"rotten:x","value":1}]}`), &title))
	// Offer without the mandatory web URL.
	assert.Error(t, json.Unmarshal([]byte(base+`"scoring":[],"offers":[{"monetization_type":"buy","provider_id":2,
		"urls":{},"presentation_type":"hd","date_created_provider_id":"a","date_created":"b","country":"US"}]}`), &title))
	// Negative id does not fit.
	assert.Error(t, json.Unmarshal([]byte(`{"id":-1,"title":"X","full_path":"/x","tmdb_popularity":1,
		"object_type":"movie","original_title":"X","scoring":[]}`), &title))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &title))
}

func TestProvider_Unmarshal(t *testing.T) {
	var p Provider
	require.NoError(t, json.Unmarshal([]byte(`{"id":8,"technical_name":"netflix","short_name":"nfx",
		"clear_name":"Netflix","icon_url":"/icon/430997/{profile}"}`), &p))
	assert.Equal(t, uint64(8), p.ID)
	assert.Equal(t, "Netflix", p.ClearName)
	require.NotNil(t, p.IconURL)

	var fe *FieldError
	require.ErrorAs(t, json.Unmarshal([]byte(`{"id":8,"technical_name":"netflix","short_name":"nfx"}`), &p), &fe)
	assert.Equal(t, "clear_name", fe.Field)
}

func TestOffer_Price(t *testing.T) {
	price := 9.5
	assert.Equal(t, "", (&Offer{}).Price())
	assert.Equal(t, "9.50", (&Offer{RetailPrice: &price}).Price())
	assert.Equal(t, "9.50 EUR", (&Offer{RetailPrice: &price, Currency: String("EUR")}).Price())
}
