// Package fuzzy implements the name matching used by cliargs: camel-case
// "similar" matching of abbreviated parameter names and edit-distance
// suggestions for diagnostics.
package fuzzy

import (
	"sort"
	"strings"
)

// Suggester ranks candidate names by edit distance to a mistyped input.
type Suggester struct {
	maxDistance int
	minLength   int
}

// NewSuggester creates a suggester accepting candidates up to maxDistance edits away.
func NewSuggester(maxDistance int) *Suggester {
	return &Suggester{
		maxDistance: maxDistance,
		minLength:   2, // single characters produce noise
	}
}

// Candidate is a ranked suggestion.
type Candidate struct {
	Value    string
	Distance int
}

// Best returns the closest candidate or "" when nothing is close enough.
func (s *Suggester) Best(input string, candidates []string) string {
	ranked := s.Rank(input, candidates)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Value
}

// Rank returns every candidate within the distance limit, closest first.
// Exact (case-insensitive) matches are skipped: they are not typos.
func (s *Suggester) Rank(input string, candidates []string) []Candidate {
	if len([]rune(input)) < s.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var out []Candidate
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == input {
			continue
		}
		if d := s.distance([]rune(input), []rune(lc)); d <= s.maxDistance {
			out = append(out, Candidate{Value: c, Distance: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return commonPrefix(input, strings.ToLower(out[i].Value)) >
			commonPrefix(input, strings.ToLower(out[j].Value))
	})
	return out
}

// distance is a two-row Levenshtein with early exit once every cell in a
// row exceeds the limit.
func (s *Suggester) distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > s.maxDistance {
		return s.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > s.maxDistance {
			return s.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Suggest returns the best candidate for input within maxDistance edits.
func Suggest(input string, candidates []string, maxDistance int) string {
	return NewSuggester(maxDistance).Best(input, candidates)
}
