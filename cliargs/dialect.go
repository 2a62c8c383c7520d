package cliargs

import (
	"golang.org/x/text/cases"
)

// Dialect holds the rules that decide how tokens are recognized and split.
// Each flag has exactly one effect on the parser.
type Dialect struct {
	// IgnoreCase compares names case-insensitively (Unicode case folding).
	IgnoreCase bool
	// AllowSlash accepts "/name" as an option in addition to "-name".
	AllowSlash bool
	// StrictDoubleDash restricts single-dash tokens to declared
	// abbreviations (and flag clusters); full names need "--".
	StrictDoubleDash bool
	// CombineOptions reads "-abc" as "-a -b -c".
	CombineOptions bool
	// ColonSeparator splits "name:value".
	ColonSeparator bool
	// EqualSeparator splits "name=value".
	EqualSeparator bool
	// BlankSeparator takes the next token as the value ("-name value").
	BlankSeparator bool
	// AllowUnknown keeps undeclared options and arguments instead of
	// reporting them.
	AllowUnknown bool
	// DoubleDashSeparator makes a bare "--" end option processing.
	DoubleDashSeparator bool
	// IgnoreNameSeparators lets abbreviations omit the '-' and '_' inside
	// multi-word names ("--bs" for "block-size").
	IgnoreNameSeparators bool
	// SplitPositional keeps each run of positional values in its own
	// parameter instead of combining them.
	SplitPositional bool
}

// DefaultDialect accepts "-name", "--name", both ':' and '=' separators,
// blank-separated values and the "--" terminator. Names are case-sensitive.
func DefaultDialect() Dialect {
	return Dialect{
		ColonSeparator:      true,
		EqualSeparator:      true,
		BlankSeparator:      true,
		DoubleDashSeparator: true,
	}
}

// UnixDialect is the getopt-like dialect: short flags combine, long names
// need "--", values follow '=' or a blank.
func UnixDialect() Dialect {
	return Dialect{
		StrictDoubleDash:    true,
		CombineOptions:      true,
		EqualSeparator:      true,
		BlankSeparator:      true,
		DoubleDashSeparator: true,
	}
}

// WindowsDialect accepts "/name", ':' and '=' separators and compares names
// case-insensitively.
func WindowsDialect() Dialect {
	return Dialect{
		IgnoreCase:           true,
		AllowSlash:           true,
		ColonSeparator:       true,
		EqualSeparator:       true,
		BlankSeparator:       true,
		DoubleDashSeparator:  true,
		IgnoreNameSeparators: true,
	}
}

// comparer applies the name comparison policy.
type comparer struct {
	ignoreCase bool
}

func (c comparer) fold(s string) string {
	if !c.ignoreCase {
		return s
	}
	// a Caser keeps state, so one per call
	return cases.Fold().String(s)
}

func (c comparer) equal(a, b string) bool {
	if !c.ignoreCase {
		return a == b
	}
	return a == b || c.fold(a) == c.fold(b)
}

// folder returns the function handed to the similar-name matcher.
func (c comparer) folder() func(string) string {
	if !c.ignoreCase {
		return nil
	}
	return c.fold
}
