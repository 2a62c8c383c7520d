package cliargs

import (
	"slices"
	"strings"

	"github.com/dzonerzy/go-cliargs/internal/pool"
)

// tokenKind classifies a raw command-line token.
type tokenKind uint8

const (
	tokenValue      tokenKind = iota // anything that is not an option
	tokenShort                       // -name
	tokenLong                        // --name
	tokenSlash                       // /name
	tokenTerminator                  // --
)

func (k tokenKind) prefixLen() int {
	switch k {
	case tokenLong, tokenTerminator:
		return 2
	case tokenShort, tokenSlash:
		return 1
	}
	return 0
}

// classify decides how tok is read while options are active.
func (d Dialect) classify(tok string) tokenKind {
	switch {
	case tok == "--":
		return tokenTerminator
	case strings.HasPrefix(tok, "--"):
		return tokenLong
	case strings.HasPrefix(tok, "-"):
		return tokenShort
	case d.AllowSlash && strings.HasPrefix(tok, "/"):
		return tokenSlash
	}
	return tokenValue
}

// split separates "name<sep>value" at the earliest enabled separator.
func (d Dialect) split(body string) (name, value string, hasValue bool) {
	idx := -1
	if d.EqualSeparator {
		idx = strings.IndexByte(body, '=')
	}
	if d.ColonSeparator {
		if i := strings.IndexByte(body, ':'); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return body, "", false
	}
	return body[:idx], body[idx+1:], true
}

// appendItems splits v on commas, trimming blanks and dropping empty items.
func appendItems(dst []string, v string) []string {
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			dst = append(dst, item)
		}
	}
	return dst
}

// expand turns a value into list items. A value ending in a comma opens a
// list that also takes the following non-option tokens, each split on
// commas in turn, so "-a 1, 2 3" reads like "-a 1,2,3".
//
// The list does not close at the first token without a trailing comma:
// closing there would leave "3" above unclaimed. The price is that
// "-a 1, 2 in.txt" also takes in.txt from a declared positional; give
// positionals first or close the list with "--".
func (p *parser) expand(first string) []string {
	buf := pool.GetStrings()
	defer pool.PutStrings(buf)

	*buf = appendItems(*buf, first)
	if strings.HasSuffix(strings.TrimSpace(first), ",") {
		for p.pos+1 < len(p.args) && !p.isOption(p.args[p.pos+1]) {
			p.pos++
			*buf = appendItems(*buf, p.args[p.pos])
		}
	}
	return slices.Clone(*buf)
}

// isOption reports whether tok would be read as an option right now.
func (p *parser) isOption(tok string) bool {
	return p.optionsActive && p.dialect.classify(tok) != tokenValue
}

// nextValue consumes the following token as a blank-separated value.
func (p *parser) nextValue() (string, bool) {
	if !p.dialect.BlankSeparator || p.pos+1 >= len(p.args) || p.isOption(p.args[p.pos+1]) {
		return "", false
	}
	p.pos++
	return p.args[p.pos], true
}
