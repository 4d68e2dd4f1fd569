package justwatch

import (
	"encoding/json"
	"fmt"
)

// ScoreType identifies the source and metric of a Score.
type ScoreType int

const (
	ImdbScore ScoreType = iota + 1
	ImdbPopularity
	ImdbVotes
	ImdbMultiplied
	TomatoID
	TomatoScore
	TomatoRating
	TomatoMeter
	TomatoUserScore
	TomatoUserRating
	TomatoUserMeter
	TmdbID
	TmdbScore
	TmdbPopularity
)

// scoreTypes maps each ScoreType to its name and its token on the wire.
var scoreTypes = [...]struct {
	name  string
	alias string
}{
	ImdbScore:        {"ImdbScore", "imdb:score"},
	ImdbPopularity:   {"ImdbPopularity", "imdb:popularity"},
	ImdbVotes:        {"ImdbVotes", "imdb:votes"},
	ImdbMultiplied:   {"ImdbMultiplied", "imdb:multiplied"},
	TomatoID:         {"TomatoID", "tomato:id"},
	TomatoScore:      {"TomatoScore", "tomato:score"},
	TomatoRating:     {"TomatoRating", "tomato:rating"},
	TomatoMeter:      {"TomatoMeter", "tomato:meter"},
	TomatoUserScore:  {"TomatoUserScore", "tomato_userrating:score"},
	TomatoUserRating: {"TomatoUserRating", "tomato_userrating:rating"},
	TomatoUserMeter:  {"TomatoUserMeter", "tomato_userrating:meter"},
	TmdbID:           {"TmdbID", "tmdb:id"},
	TmdbScore:        {"TmdbScore", "tmdb:score"},
	TmdbPopularity:   {"TmdbPopularity", "tmdb:popularity"},
}

var scoreTypeByAlias = func() map[string]ScoreType {
	m := make(map[string]ScoreType, len(scoreTypes))
	for st, info := range scoreTypes {
		if info.alias != "" {
			m[info.alias] = ScoreType(st)
		}
	}
	return m
}()

// ParseScoreType resolves a wire token such as "imdb:score".
func ParseScoreType(alias string) (ScoreType, error) {
	st, ok := scoreTypeByAlias[alias]
	if !ok {
		return 0, fmt.Errorf("unknown score type %q", alias)
	}
	return st, nil
}

func (st ScoreType) valid() bool {
	return st > 0 && int(st) < len(scoreTypes)
}

func (st ScoreType) String() string {
	if !st.valid() {
		return fmt.Sprintf("ScoreType(%d)", int(st))
	}
	return scoreTypes[st].name
}

// Alias returns the wire token, or "" for an invalid ScoreType.
func (st ScoreType) Alias() string {
	if !st.valid() {
		return ""
	}
	return scoreTypes[st].alias
}

// MarshalText encodes the wire token.
func (st ScoreType) MarshalText() ([]byte, error) {
	if !st.valid() {
		return nil, fmt.Errorf("invalid score type %d", int(st))
	}
	return []byte(scoreTypes[st].alias), nil
}

// UnmarshalText decodes a wire token, failing on unknown ones.
func (st *ScoreType) UnmarshalText(text []byte) error {
	v, err := ParseScoreType(string(text))
	if err != nil {
		return err
	}
	*st = v
	return nil
}

// Score is a rating or popularity metric attached to a title.
type Score struct {
	ProviderType ScoreType   `json:"provider_type"`
	Value        json.Number `json:"value"`
}

// UnmarshalJSON decodes a score, requiring both fields.
func (s *Score) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "score", "provider_type", "value"); err != nil {
		return err
	}
	type plain Score
	return json.Unmarshal(data, (*plain)(s))
}

// Float64 returns the score value as a float.
func (s Score) Float64() (float64, error) {
	return s.Value.Float64()
}
