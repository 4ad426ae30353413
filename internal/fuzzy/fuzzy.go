// Package fuzzy suggests registered option names for mistyped tokens.
// Used by argparse when a token matches no registered argument.
package fuzzy

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher ranks candidate names by edit distance to an input token.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // "-" alone is never worth a suggestion
	}
}

// Match is a single ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate for input, or "" when nothing is close.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the distance budget, best first.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	in := strings.ToLower(input)
	var matches []Match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == in {
			continue
		}

		d := lfuzzy.LevenshteinDistance(in, lc)
		if d > m.maxDistance {
			// Truncated long names ("--verb" for "--verbose") still deserve a hint.
			if !strings.HasPrefix(lc, in) || len(in) < 4 {
				continue
			}
			d = m.maxDistance
		}
		matches = append(matches, Match{Value: c, Distance: d, Score: m.score(in, lc, d)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score weighs edit distance first, then subsequence containment.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	s := 1.0 - float64(distance)/float64(longest)
	if lfuzzy.MatchFold(input, candidate) {
		s += 0.2
	}
	if strings.HasPrefix(candidate, input) {
		s += 0.1
	}
	return min(s, 1.0)
}

// FindBestOption is a convenience wrapper for a one-off suggestion.
func FindBestOption(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}

// FindSuggestions returns up to limit candidates, best first. A limit below
// one yields no suggestions.
func FindSuggestions(input string, candidates []string, maxDistance, limit int) []string {
	limit = max(limit, 0)
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	out := make([]string, 0, min(len(matches), limit))
	for _, match := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, match.Value)
	}
	return out
}
