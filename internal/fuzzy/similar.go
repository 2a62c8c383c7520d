package fuzzy

import (
	"unicode"
)

// Part is one segment of a parameter name: a word or a single delimiter.
type Part struct {
	Text      string
	Delimiter bool
}

// IsDelimiter reports whether r separates words inside a parameter name.
func IsDelimiter(r rune) bool {
	return r == '-' || r == '_' || r == ' '
}

// Split segments name at delimiter characters and at capital-letter
// boundaries. Runs of capitals stay together ("HTTPPort" -> "HTTP", "Port").
//
//	"block-size" -> ["block" "-" "size"]
//	"blockSize"  -> ["block" "Size"]
func Split(name string) []Part {
	runes := []rune(name)
	parts := make([]Part, 0, 4)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			parts = append(parts, Part{Text: string(runes[start:end])})
		}
		start = -1
	}

	for i, r := range runes {
		if IsDelimiter(r) {
			flush(i)
			parts = append(parts, Part{Text: string(r), Delimiter: true})
			continue
		}
		if start >= 0 && unicode.IsUpper(r) {
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(runes[i-1]) || nextLower {
				flush(i)
			}
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(runes))
	return parts
}

// Similar reports whether token is an abbreviation of the name segmented
// into parts. The token must split into one non-empty piece per word part,
// in order; each piece starts with the first letter of its word and the
// rest of its letters appear in the word in the same order (so "bl",
// "blk" and "block" all abbreviate "block"). Delimiter parts must be
// present in the token unless ignoreDelimiters is set.
//
// fold normalizes letter case before comparing; nil compares verbatim.
func Similar(token string, parts []Part, fold func(string) string, ignoreDelimiters bool) bool {
	if token == "" || len(parts) == 0 {
		return false
	}
	if fold != nil {
		token = fold(token)
	}

	words := make([][]rune, len(parts))
	for i, p := range parts {
		if fold != nil && !p.Delimiter {
			words[i] = []rune(fold(p.Text))
		} else {
			words[i] = []rune(p.Text)
		}
	}

	m := similarMatcher{
		token:            []rune(token),
		parts:            parts,
		words:            words,
		ignoreDelimiters: ignoreDelimiters,
	}
	return m.match(0, 0)
}

type similarMatcher struct {
	token            []rune
	parts            []Part
	words            [][]rune
	ignoreDelimiters bool
}

// match is a backtracking search over how many token runes belong to the
// part at index pi.
func (m *similarMatcher) match(ti, pi int) bool {
	if pi == len(m.parts) {
		return ti == len(m.token)
	}

	if m.parts[pi].Delimiter {
		if ti < len(m.token) && IsDelimiter(m.token[ti]) && m.match(ti+1, pi+1) {
			return true
		}
		return m.ignoreDelimiters && m.match(ti, pi+1)
	}

	// "block-size" typed for "blockSize"
	if m.ignoreDelimiters && pi > 0 && !m.parts[pi-1].Delimiter &&
		ti < len(m.token) && IsDelimiter(m.token[ti]) && m.match(ti+1, pi) {
		return true
	}

	word := m.words[pi]
	for n := 1; ti+n <= len(m.token); n++ {
		// a piece that is not an abbreviation cannot become one by growing
		if !abbreviates(m.token[ti:ti+n], word) {
			break
		}
		if m.match(ti+n, pi+1) {
			return true
		}
	}
	return false
}

func abbreviates(piece, word []rune) bool {
	if len(piece) == 0 || len(word) == 0 || piece[0] != word[0] {
		return false
	}
	w := 1
	for _, r := range piece[1:] {
		for w < len(word) && word[w] != r {
			w++
		}
		if w == len(word) {
			return false
		}
		w++
	}
	return true
}
