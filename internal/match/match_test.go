package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"Fast & Furious", "fast and furious"},
		{"Léon: The Professional", "leon professional"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"Rocky IV", "rocky 4"},
		{"I, Robot", "i robot"},
		{"Amélie", "amelie"},
		{"  Extra   Spaces  ", "extra spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "none", ConfidenceNone.String())
}

func TestConfidenceFor(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ConfidenceFor(1.0))
	assert.Equal(t, ConfidenceHigh, ConfidenceFor(0.95))
	assert.Equal(t, ConfidenceMedium, ConfidenceFor(0.9))
	assert.Equal(t, ConfidenceLow, ConfidenceFor(0.7))
	assert.Equal(t, ConfidenceNone, ConfidenceFor(0.2))
}

func TestBest_Exact(t *testing.T) {
	candidates := []Candidate{
		{Names: []string{"The Science of Interstellar"}},
		{Names: []string{"Interstellar"}},
	}

	got := Best("interstellar", candidates)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "Interstellar", got.Name)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestBest_OriginalTitle(t *testing.T) {
	candidates := []Candidate{
		{Names: []string{"Spirited Away"}},
		{Names: []string{"The Fabulous Destiny", "Le Fabuleux Destin d'Amélie Poulain"}},
	}

	got := Best("le fabuleux destin damelie poulain", candidates)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "Le Fabuleux Destin d'Amélie Poulain", got.Name)
}

func TestBest_SequelNumber(t *testing.T) {
	candidates := []Candidate{
		{Names: []string{"Toy Story"}},
		{Names: []string{"Toy Story 3"}},
		{Names: []string{"Toy Story 2"}},
	}

	got := Best("Toy Story II", candidates)
	assert.Equal(t, 2, got.Index)
}

func TestBest_TieKeepsFirst(t *testing.T) {
	candidates := []Candidate{
		{Names: []string{"Heat"}},
		{Names: []string{"Heat"}},
	}

	assert.Equal(t, 0, Best("Heat", candidates).Index)
}

func TestBest_Empty(t *testing.T) {
	got := Best("anything", nil)
	assert.Equal(t, -1, got.Index)
	assert.Equal(t, ConfidenceNone, got.Confidence)

	got = Best("anything", []Candidate{{Names: []string{""}}})
	assert.Equal(t, -1, got.Index)
}
