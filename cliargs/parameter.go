package cliargs

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/dzonerzy/go-cliargs/internal/fuzzy"
	"github.com/dzonerzy/go-cliargs/internal/intern"
)

// HiddenMarker prefixes an abbreviation that still matches but is left
// out of usage text ("~x").
const HiddenMarker = '~'

// ParameterOptions describes a parameter for NewParameterDefinition.
type ParameterOptions struct {
	Abbreviations []string
	ValueName     string
	Description   string
	Positional    bool
	Required      bool
	Collection    bool
	Switch        bool
	Help          bool
}

// ParameterDefinition describes one named or positional parameter. It is
// read-only once its grammar is handed to the parser.
type ParameterDefinition struct {
	name          string
	parts         []fuzzy.Part
	abbreviations []string
	hidden        []bool
	valueName     string
	description   string
	positional    bool
	required      bool
	collection    bool
	isSwitch      bool
	unknown       bool
	help          bool
	command       *CommandDefinition
}

// NewParameterDefinition validates o and creates a definition. The name is
// trimmed and inner whitespace is replaced by dashes.
func NewParameterDefinition(name string, o ParameterOptions) (*ParameterDefinition, error) {
	n := normalizeName(name)
	if n == "" {
		return nil, ErrEmptyName
	}
	if o.Help {
		o.Switch = true
	}
	if o.Switch && (o.Positional || o.Collection) {
		return nil, fmt.Errorf("%w: switch %q cannot be positional or a collection", ErrInvalidDefinition, n)
	}

	p := &ParameterDefinition{
		name:        n,
		parts:       fuzzy.Split(n),
		valueName:   o.ValueName,
		description: o.Description,
		positional:  o.Positional,
		required:    o.Required,
		collection:  o.Collection,
		isSwitch:    o.Switch,
		help:        o.Help,
	}
	for _, a := range o.Abbreviations {
		if err := p.addAbbreviation(a); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// newUnknownParameter synthesizes a definition for a token the grammar does
// not declare.
func newUnknownParameter(name string, cmd *CommandDefinition, positional, collection, isSwitch bool) *ParameterDefinition {
	return &ParameterDefinition{
		name:       name,
		parts:      fuzzy.Split(name),
		positional: positional,
		collection: collection,
		isSwitch:   isSwitch,
		unknown:    true,
		command:    cmd,
	}
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return intern.Intern(strings.Join(strings.FieldsFunc(name, unicode.IsSpace), "-"))
}

func (p *ParameterDefinition) addAbbreviation(a string) error {
	hidden := strings.HasPrefix(a, string(HiddenMarker))
	a = normalizeName(strings.TrimPrefix(a, string(HiddenMarker)))
	if a == "" {
		return fmt.Errorf("%w: abbreviation of %q", ErrEmptyName, p.name)
	}
	p.abbreviations = append(p.abbreviations, a)
	p.hidden = append(p.hidden, hidden)
	return nil
}

// Name returns the normalized name.
func (p *ParameterDefinition) Name() string { return p.name }

// Abbreviations returns every abbreviation, hidden ones included, without
// the hidden marker.
func (p *ParameterDefinition) Abbreviations() []string { return slices.Clone(p.abbreviations) }

// VisibleAbbreviations returns the abbreviations shown in usage text.
func (p *ParameterDefinition) VisibleAbbreviations() []string {
	var out []string
	for i, a := range p.abbreviations {
		if !p.hidden[i] {
			out = append(out, a)
		}
	}
	return out
}

func (p *ParameterDefinition) ValueName() string           { return p.valueName }
func (p *ParameterDefinition) Description() string         { return p.description }
func (p *ParameterDefinition) IsPositional() bool          { return p.positional }
func (p *ParameterDefinition) IsRequired() bool            { return p.required }
func (p *ParameterDefinition) IsCollection() bool          { return p.collection }
func (p *ParameterDefinition) IsSwitch() bool              { return p.isSwitch }
func (p *ParameterDefinition) IsUnknown() bool             { return p.unknown }
func (p *ParameterDefinition) IsHelp() bool                { return p.help }
func (p *ParameterDefinition) Command() *CommandDefinition { return p.command }

func (p *ParameterDefinition) String() string {
	if p.positional {
		return "<" + p.name + ">"
	}
	return "--" + p.name
}

// matchesExact reports a verbatim match on the name or an abbreviation.
func (p *ParameterDefinition) matchesExact(name string, abbreviationOnly bool, c comparer) bool {
	if !abbreviationOnly && c.equal(p.name, name) {
		return true
	}
	for _, a := range p.abbreviations {
		if c.equal(a, name) {
			return true
		}
	}
	return false
}

// MatchStatus is the outcome of a definition lookup.
type MatchStatus int

const (
	NotFound MatchStatus = iota
	Found
	Ambiguous
)

func (s MatchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Match is the result of ParameterDefinitionCollection.Find.
type Match struct {
	Status     MatchStatus
	Definition *ParameterDefinition   // set when Status == Found
	Candidates []*ParameterDefinition // set when Status == Ambiguous
}

// FindOptions tunes ParameterDefinitionCollection.Find.
type FindOptions struct {
	// Similar falls back to abbreviated multi-word matching.
	Similar bool
	// IgnoreDelimiters lets similar matches skip '-' and '_' in names.
	IgnoreDelimiters bool
	// AbbreviationOnly restricts exact matching to declared abbreviations.
	AbbreviationOnly bool
}

// ParameterDefinitionCollection is the ordered parameter list of one command.
type ParameterDefinitionCollection struct {
	owner *CommandDefinition
	items []*ParameterDefinition
}

func newParameterDefinitionCollection(owner *CommandDefinition) *ParameterDefinitionCollection {
	return &ParameterDefinitionCollection{owner: owner}
}

func (c *ParameterDefinitionCollection) comparer() comparer {
	if c.owner == nil {
		return comparer{}
	}
	return c.owner.comparer()
}

// Len returns the number of definitions.
func (c *ParameterDefinitionCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All returns the definitions in declaration order.
func (c *ParameterDefinitionCollection) All() []*ParameterDefinition {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Positionals returns the positional definitions in declaration order.
func (c *ParameterDefinitionCollection) Positionals() []*ParameterDefinition {
	if c == nil {
		return nil
	}
	var out []*ParameterDefinition
	for _, p := range c.items {
		if p.positional {
			out = append(out, p)
		}
	}
	return out
}

// Add appends p and binds it to the owning command. Names and
// abbreviations must not collide with existing ones.
func (c *ParameterDefinitionCollection) Add(p *ParameterDefinition) error {
	if p == nil {
		return fmt.Errorf("%w: nil parameter", ErrInvalidDefinition)
	}
	cmp := c.comparer()
	for _, n := range append([]string{p.name}, p.abbreviations...) {
		if other := c.exact(n, false, cmp); other != nil {
			return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateParameter, n, other.name)
		}
	}
	if p.command == nil {
		p.command = c.owner
	}
	c.items = append(c.items, p)
	return nil
}

// checkAbbreviation reports whether a can be added to p without clashing.
func (c *ParameterDefinitionCollection) checkAbbreviation(p *ParameterDefinition, a string) error {
	a = strings.TrimPrefix(a, string(HiddenMarker))
	cmp := c.comparer()
	for _, other := range c.items {
		if other != p && other.matchesExact(normalizeName(a), false, cmp) {
			return fmt.Errorf("%w: abbreviation %q of %q conflicts with %q",
				ErrDuplicateParameter, a, p.name, other.name)
		}
	}
	return nil
}

func (c *ParameterDefinitionCollection) exact(name string, abbreviationOnly bool, cmp comparer) *ParameterDefinition {
	for _, p := range c.items {
		if p.matchesExact(name, abbreviationOnly, cmp) {
			return p
		}
	}
	return nil
}

// Exact returns the definition whose name or abbreviation equals name
// under the case policy. With abbreviationOnly the name itself is ignored.
func (c *ParameterDefinitionCollection) Exact(name string, abbreviationOnly bool) *ParameterDefinition {
	if c == nil {
		return nil
	}
	return c.exact(name, abbreviationOnly, c.comparer())
}

// Similar returns every definition whose name token abbreviates word by
// word.
func (c *ParameterDefinitionCollection) Similar(name string, ignoreDelimiters bool) []*ParameterDefinition {
	if c == nil {
		return nil
	}
	fold := c.comparer().folder()
	var out []*ParameterDefinition
	for _, p := range c.items {
		if fuzzy.Similar(name, p.parts, fold, ignoreDelimiters) {
			out = append(out, p)
		}
	}
	return out
}

// Find tries an exact match first and, when opts.Similar is set, falls
// back to similar matching. More than one similar hit is Ambiguous.
func (c *ParameterDefinitionCollection) Find(name string, opts FindOptions) Match {
	if p := c.Exact(name, opts.AbbreviationOnly); p != nil {
		return Match{Status: Found, Definition: p}
	}
	if !opts.Similar {
		return Match{}
	}
	hits := c.Similar(name, opts.IgnoreDelimiters)
	switch len(hits) {
	case 0:
		return Match{}
	case 1:
		return Match{Status: Found, Definition: hits[0]}
	default:
		return Match{Status: Ambiguous, Candidates: hits}
	}
}

// names lists the option names, for suggestions.
func (c *ParameterDefinitionCollection) names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.items))
	for _, p := range c.items {
		if p.positional {
			continue
		}
		out = append(out, p.name)
	}
	return out
}
