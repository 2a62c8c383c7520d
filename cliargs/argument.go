package cliargs

import (
	"fmt"
	"slices"
	"strconv"
)

// ArgumentParameter is a parameter found on the command line together with
// its accumulated value.
type ArgumentParameter struct {
	definition *ParameterDefinition
	value      Value
}

func (p *ArgumentParameter) Definition() *ParameterDefinition { return p.definition }
func (p *ArgumentParameter) Name() string                     { return p.definition.name }
func (p *ArgumentParameter) Value() Value                     { return p.value }

// ArgumentParameterCollection holds the parameters of one parsed command,
// keyed by definition and kept in the order they were first seen.
type ArgumentParameterCollection struct {
	byDef map[*ParameterDefinition]*ArgumentParameter
	order []*ArgumentParameter
}

func newArgumentParameterCollection(capacity int) *ArgumentParameterCollection {
	return &ArgumentParameterCollection{
		byDef: make(map[*ParameterDefinition]*ArgumentParameter, capacity),
		order: make([]*ArgumentParameter, 0, capacity),
	}
}

// Len returns the number of stored parameters.
func (c *ArgumentParameterCollection) Len() int { return len(c.order) }

// All returns the stored parameters in first-seen order.
func (c *ArgumentParameterCollection) All() []*ArgumentParameter { return slices.Clone(c.order) }

// Get returns the parameter stored for def, or nil.
func (c *ArgumentParameterCollection) Get(def *ParameterDefinition) *ArgumentParameter {
	return c.byDef[def]
}

// Has reports whether def has a stored value.
func (c *ArgumentParameterCollection) Has(def *ParameterDefinition) bool {
	_, ok := c.byDef[def]
	return ok
}

// Add stores v for def. A collection definition appends to the existing
// value; any other definition accepts a single occurrence and a second one
// returns ErrDuplicateParameter, leaving the first value in place.
func (c *ArgumentParameterCollection) Add(def *ParameterDefinition, v Value) error {
	if p, ok := c.byDef[def]; ok {
		if !def.collection {
			return fmt.Errorf("%w: %s", ErrDuplicateParameter, def.name)
		}
		p.value = p.value.Merge(v)
		return nil
	}
	p := &ArgumentParameter{definition: def, value: v}
	c.byDef[def] = p
	c.order = append(c.order, p)
	return nil
}

// ArgumentCommand is one link of the parsed command chain: the command the
// user invoked at this level, its parameters and the sub-command invoked
// next, if any.
type ArgumentCommand struct {
	definition *CommandDefinition
	parameters *ArgumentParameterCollection
	next       *ArgumentCommand
	unknown    *ParameterDefinitionCollection // synthesized for undeclared tokens
}

func newArgumentCommand(def *CommandDefinition) *ArgumentCommand {
	return &ArgumentCommand{
		definition: def,
		parameters: newArgumentParameterCollection(def.parameters.Len()),
		unknown:    newParameterDefinitionCollection(def),
	}
}

func (c *ArgumentCommand) Definition() *CommandDefinition           { return c.definition }
func (c *ArgumentCommand) Parameters() *ArgumentParameterCollection { return c.parameters }
func (c *ArgumentCommand) Name() string                             { return c.definition.name }

// Command returns the sub-command invoked after this one, or nil.
func (c *ArgumentCommand) Command() *ArgumentCommand { return c.next }

// Unknown returns the definitions synthesized for undeclared tokens.
func (c *ArgumentCommand) Unknown() []*ParameterDefinition { return c.unknown.All() }

// lookup resolves a result name to a declared or synthesized definition.
func (c *ArgumentCommand) lookup(name string) *ParameterDefinition {
	if d := c.definition.parameters.Exact(name, false); d != nil {
		return d
	}
	return c.unknown.Exact(name, false)
}

// unknownParameter returns the synthesized definition called name,
// creating it with the given shape on first use. Options and positionals
// never share a definition, even under the same name.
func (c *ArgumentCommand) unknownParameter(name string, positional, collection, isSwitch bool) *ParameterDefinition {
	if d := c.findUnknown(name, positional); d != nil {
		return d
	}
	d := newUnknownParameter(name, c.definition, positional, collection, isSwitch)
	c.unknown.items = append(c.unknown.items, d)
	return d
}

func (c *ArgumentCommand) findUnknown(name string, positional bool) *ParameterDefinition {
	cmp := c.unknown.comparer()
	for _, d := range c.unknown.items {
		if d.positional == positional && d.matchesExact(name, false, cmp) {
			return d
		}
	}
	return nil
}

// nextPositionalName returns "positional", "positional.1", ... skipping
// names already taken on this command.
func (c *ArgumentCommand) nextPositionalName() string {
	for i := 0; ; i++ {
		if name := positionalName(i); c.lookup(name) == nil {
			return name
		}
	}
}

// positionalSlot returns the single collection that gathers unsplit
// positionals. Names already taken by options are skipped.
func (c *ArgumentCommand) positionalSlot() *ParameterDefinition {
	for i := 0; ; i++ {
		name := positionalName(i)
		if d := c.findUnknown(name, true); d != nil {
			return d
		}
		if c.lookup(name) == nil {
			return c.unknownParameter(name, true, true, false)
		}
	}
}

func positionalName(i int) string {
	if i == 0 {
		return "positional"
	}
	return "positional." + strconv.Itoa(i)
}
