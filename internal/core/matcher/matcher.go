// Package matcher binds free-text display names to roster names by
// word-level edit distance.
package matcher

import (
	"math"
	"strconv"

	"github.com/penwyp/go-attendance-monitor/internal/core/normalize"
)

// Score is an aggregated word distance. Infinite compares greater than any
// real distance and is never added to.
type Score int

// Infinite marks a distance that could not be computed, such as a query
// with no words or a candidate with no words.
const Infinite Score = math.MaxInt

// IsInfinite reports whether s is the Infinite sentinel.
func (s Score) IsInfinite() bool {
	return s == Infinite
}

func (s Score) add(o Score) Score {
	if s.IsInfinite() || o.IsInfinite() {
		return Infinite
	}
	return s + o
}

func (s Score) String() string {
	if s.IsInfinite() {
		return "inf"
	}
	return strconv.Itoa(int(s))
}

// Result is the outcome of Match.
type Result struct {
	// Index of the matched candidate, -1 when Matched is false.
	Index   int
	Matched bool

	// Closest is the candidate with the smallest total word distance (first
	// wins ties) or -1. It never decides the match and is kept for
	// diagnostics only.
	Closest         int
	ClosestDistance Score
}

// NoMatch is the Result for a query that matched nothing.
var NoMatch = Result{Index: -1, Closest: -1, ClosestDistance: Infinite}

// Match finds the candidate that query refers to.
//
// Every query word is compared with every candidate word; a candidate is an
// exact match when at least one query word equals one of its words after
// normalization. A match is reported only if some candidate is exact, and
// when several are, the last one in candidate order wins.
func Match(candidates []string, query string) Result {
	queryWords := normalize.Words(query)

	result := NoMatch
	for idx, candidate := range candidates {
		candidateWords := normalize.Words(candidate)

		exact := false
		total := Infinite
		if len(queryWords) > 0 {
			total = 0
		}
		for _, qw := range queryWords {
			best := wordDistance(qw, candidateWords)
			if best == 0 {
				exact = true
			}
			total = total.add(best)
		}

		if exact {
			result.Index = idx
			result.Matched = true
		}
		if total < result.ClosestDistance {
			result.Closest = idx
			result.ClosestDistance = total
		}
	}
	return result
}

// wordDistance is the minimum distance from word to any of words.
func wordDistance(word string, words []string) Score {
	best := Infinite
	for _, w := range words {
		if d := Score(Distance(w, word)); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}
