package cliargs

import (
	"fmt"
	"slices"
	"strings"
)

// CommandDefinition is a node of the command tree: the root program or one
// of its (nested) sub-commands. The root carries the Dialect; every other
// node uses its root's.
type CommandDefinition struct {
	name          string
	abbreviations []string
	description   string
	parent        *CommandDefinition
	parameters    *ParameterDefinitionCollection
	commands      *CommandDefinitionCollection
	dialect       Dialect
}

// NewCommandDefinition creates a detached command. It becomes a root when
// used directly, or a sub-command once added with AddCommand. The root
// command may have an empty name.
func NewCommandDefinition(name, description string, abbreviations ...string) *CommandDefinition {
	c := &CommandDefinition{
		name:        normalizeName(name),
		description: description,
		dialect:     DefaultDialect(),
	}
	for _, a := range abbreviations {
		if a = normalizeName(a); a != "" {
			c.abbreviations = append(c.abbreviations, a)
		}
	}
	c.parameters = newParameterDefinitionCollection(c)
	return c
}

func (c *CommandDefinition) Name() string                               { return c.name }
func (c *CommandDefinition) Abbreviations() []string                    { return slices.Clone(c.abbreviations) }
func (c *CommandDefinition) Description() string                        { return c.description }
func (c *CommandDefinition) Parent() *CommandDefinition                 { return c.parent }
func (c *CommandDefinition) Parameters() *ParameterDefinitionCollection { return c.parameters }

// Commands returns the sub-commands, or nil when there are none.
func (c *CommandDefinition) Commands() *CommandDefinitionCollection { return c.commands }

// Root walks up to the top of the tree.
func (c *CommandDefinition) Root() *CommandDefinition {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Path returns the command names from the root down to c, root excluded.
func (c *CommandDefinition) Path() []string {
	var path []string
	for n := c; n.parent != nil; n = n.parent {
		path = append(path, n.name)
	}
	slices.Reverse(path)
	return path
}

// Dialect returns the dialect of the tree c belongs to.
func (c *CommandDefinition) Dialect() Dialect { return c.Root().dialect }

// SetDialect replaces the dialect of a root command. The case policy can
// only change while the tree is still empty.
func (c *CommandDefinition) SetDialect(d Dialect) error {
	if c.parent != nil {
		return c.Root().SetDialect(d)
	}
	if d.IgnoreCase != c.dialect.IgnoreCase && !c.isEmpty() {
		return ErrPolicyLocked
	}
	c.dialect = d
	return nil
}

func (c *CommandDefinition) isEmpty() bool {
	return c.parameters.Len() == 0 && c.commands.Len() == 0
}

func (c *CommandDefinition) comparer() comparer {
	return comparer{ignoreCase: c.Root().dialect.IgnoreCase}
}

// AddCommand attaches child under c. Sibling names and abbreviations must
// be unique.
func (c *CommandDefinition) AddCommand(child *CommandDefinition) error {
	if c.commands == nil {
		c.commands = &CommandDefinitionCollection{owner: c}
	}
	return c.commands.Add(child)
}

// AddParameter attaches p to c.
func (c *CommandDefinition) AddParameter(p *ParameterDefinition) error {
	return c.parameters.Add(p)
}

func (c *CommandDefinition) matches(name string, cmp comparer) bool {
	if cmp.equal(c.name, name) {
		return true
	}
	for _, a := range c.abbreviations {
		if cmp.equal(a, name) {
			return true
		}
	}
	return false
}

// Usage renders a compact listing of the command's parameters and
// sub-commands. Hidden abbreviations are omitted.
func (c *CommandDefinition) Usage() string {
	var b strings.Builder

	head := strings.TrimSpace(strings.Join(append([]string{c.Root().name}, c.Path()...), " "))
	if head != "" {
		b.WriteString(head)
	}
	for _, p := range c.parameters.Positionals() {
		b.WriteString(" " + usageSlot(p))
	}
	if c.commands.Len() > 0 {
		b.WriteString(" <command>")
	}
	b.WriteString("\n")
	if c.description != "" {
		b.WriteString("  " + c.description + "\n")
	}

	opts := make([]*ParameterDefinition, 0, c.parameters.Len())
	for _, p := range c.parameters.All() {
		if !p.positional {
			opts = append(opts, p)
		}
	}
	if len(opts) > 0 {
		b.WriteString("\nOptions:\n")
		for _, p := range opts {
			fmt.Fprintf(&b, "  %-28s %s\n", usageOption(p), p.description)
		}
	}

	if c.commands.Len() > 0 {
		b.WriteString("\nCommands:\n")
		for _, sub := range c.commands.All() {
			fmt.Fprintf(&b, "  %-28s %s\n", sub.name, sub.description)
		}
	}
	return b.String()
}

func usageSlot(p *ParameterDefinition) string {
	s := "<" + p.name + ">"
	if p.collection {
		s += "..."
	}
	if !p.required {
		s = "[" + s + "]"
	}
	return s
}

func usageOption(p *ParameterDefinition) string {
	forms := make([]string, 0, 1+len(p.abbreviations))
	for _, a := range p.VisibleAbbreviations() {
		forms = append(forms, "-"+a)
	}
	forms = append(forms, "--"+p.name)
	s := strings.Join(forms, ", ")
	if !p.isSwitch {
		vn := p.valueName
		if vn == "" {
			vn = "value"
		}
		s += " <" + vn + ">"
		if p.collection {
			s += "..."
		}
	}
	if p.required {
		s += " (required)"
	}
	return s
}

// CommandDefinitionCollection holds the sub-commands of one command.
type CommandDefinitionCollection struct {
	owner *CommandDefinition
	items []*CommandDefinition
}

// Len returns the number of sub-commands.
func (c *CommandDefinitionCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All returns the sub-commands in declaration order.
func (c *CommandDefinitionCollection) All() []*CommandDefinition {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Add appends child. A name or abbreviation already used by a sibling is
// rejected with ErrDuplicateCommand.
func (c *CommandDefinitionCollection) Add(child *CommandDefinition) error {
	if child == nil || child.name == "" {
		return fmt.Errorf("%w: sub-command", ErrEmptyName)
	}
	cmp := c.owner.comparer()
	for _, n := range append([]string{child.name}, child.abbreviations...) {
		if other := c.lookup(n, cmp); other != nil {
			return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateCommand, n, other.name)
		}
	}
	child.parent = c.owner
	c.items = append(c.items, child)
	return nil
}

// Lookup returns the sub-command whose name or abbreviation equals name.
// Matching is exact; sub-commands are never abbreviated.
func (c *CommandDefinitionCollection) Lookup(name string) *CommandDefinition {
	if c == nil {
		return nil
	}
	return c.lookup(name, c.owner.comparer())
}

func (c *CommandDefinitionCollection) lookup(name string, cmp comparer) *CommandDefinition {
	for _, sub := range c.items {
		if sub.matches(name, cmp) {
			return sub
		}
	}
	return nil
}
