// Package sentiment estimates how an utterance should move the NPC's
// relationship score. The engine only depends on the Estimator contract, a
// bounded signed delta, so hosts can swap the built-in lexicon for anything
// from their own tuning to a learned model.
package sentiment

import (
	"math"
	"strings"
)

// Estimator maps free-form player input to a signed relationship delta,
// roughly within [-1, 1].
type Estimator interface {
	Estimate(text string) float64
}

// Lexicon is a keyword-count estimator: every case-insensitive substring hit
// adds its weight to the score, and the total is clamped to [-bound, bound].
// Matches overlap deliberately ("taking over" also hits "over"), which makes
// loaded phrases score hotter than their parts.
type Lexicon struct {
	weights map[string]float64
	bound   float64
}

// NewLexicon builds an estimator from phrase weights. Empty phrases are
// dropped; phrases are matched lowercase.
func NewLexicon(weights map[string]float64) *Lexicon {
	clean := make(map[string]float64, len(weights))
	for phrase, w := range weights {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" || w == 0 {
			continue
		}
		clean[phrase] = w
	}
	return &Lexicon{weights: clean, bound: 1.0}
}

// DefaultLexicon returns the stock tuning: trust-building language warms the
// NPC a little, threats and contempt cool it faster.
func DefaultLexicon() *Lexicon {
	return NewLexicon(map[string]float64{
		"trust me":    0.25,
		"trust":       0.05,
		"thank":       0.20,
		"help":        0.15,
		"friend":      0.20,
		"together":    0.10,
		"saved":       0.20,
		"betray":      -0.30,
		"weak":        -0.20,
		"taking over": -0.25,
		"take over":   -0.25,
		"over":        -0.05,
		"kill":        -0.30,
		"threat":      -0.20,
		"liar":        -0.25,
		"useless":     -0.20,
	})
}

// Estimate scores text against the lexicon. The result is always within
// [-1, 1] no matter how many phrases match.
func (l *Lexicon) Estimate(text string) float64 {
	lower := strings.ToLower(text)
	var score float64
	for phrase, weight := range l.weights {
		if n := strings.Count(lower, phrase); n > 0 {
			score += weight * float64(n)
		}
	}
	return math.Max(-l.bound, math.Min(l.bound, score))
}
