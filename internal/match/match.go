package match

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceFor maps a score to its bucket.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Candidate is one search result, known under one or more names
// (display title, original title).
type Candidate struct {
	Names []string
}

// Result is the outcome of Best.
type Result struct {
	Index      int     // Position of the winning candidate, -1 if none
	Name       string  // The name that produced the score
	Score      float64 // Jaro-Winkler similarity 0.0-1.0, adjusted for sequel numbers
	Confidence Confidence
}

// Best returns the candidate most similar to query. Ties keep the earlier
// candidate, so the API's popularity order breaks them.
func Best(query string, candidates []Candidate) Result {
	best := Result{Index: -1}

	q := CleanTitle(query)
	queryNumbers := numberRegex.FindAllString(q, -1)

	for i, c := range candidates {
		for _, name := range c.Names {
			if name == "" {
				continue
			}
			cleaned := CleanTitle(name)
			score := float64(edlib.JaroWinklerSimilarity(q, cleaned))
			score = adjustScoreForNumbers(score, queryNumbers, numberRegex.FindAllString(cleaned, -1))

			if best.Index == -1 || score > best.Score {
				best = Result{Index: i, Name: name, Score: score}
			}
		}
	}

	best.Confidence = ConfidenceFor(best.Score)
	return best
}

// adjustScoreForNumbers rewards candidates that share the query's sequel
// number and penalizes ones that lack or contradict it.
func adjustScoreForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range queryNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
