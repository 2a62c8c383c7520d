package cliargs

import (
	"errors"
	"fmt"
)

// Builder constructs a grammar with a cursor that starts at the root
// command. BeginCommand descends into a sub-command, EndCommand climbs back.
// A Builder is not safe for concurrent use.
//
// Construction mistakes do not panic; they are collected and returned by
// Build, Parse and Err.
type Builder struct {
	root    *CommandDefinition
	current *CommandDefinition
	errs    []error
}

// NewBuilder starts a grammar whose root command is name, using
// DefaultDialect.
func NewBuilder(name, description string) *Builder {
	root := NewCommandDefinition(name, description)
	return &Builder{root: root, current: root}
}

func (b *Builder) fail(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Err returns every construction error so far, or nil.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// Build returns the root of the grammar.
func (b *Builder) Build() (*CommandDefinition, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.root, nil
}

// MustBuild is like Build but panics on construction errors.
func (b *Builder) MustBuild() *CommandDefinition {
	root, err := b.Build()
	if err != nil {
		panic(err)
	}
	return root
}

// Parse builds the grammar and parses args against it. The error is only
// ever a construction error; problems in args are diagnostics on the
// returned Arguments.
func (b *Builder) Parse(args []string) (*Arguments, error) {
	root, err := b.Build()
	if err != nil {
		return nil, err
	}
	return Parse(root, args), nil
}

// Current returns the command under the cursor.
func (b *Builder) Current() *CommandDefinition { return b.current }

// BeginCommand moves the cursor to the sub-command name of the current
// command, creating it if needed.
func (b *Builder) BeginCommand(name, description string, abbreviations ...string) *Builder {
	if existing := b.current.commands.Lookup(normalizeName(name)); existing != nil {
		b.current = existing
		return b
	}
	child := NewCommandDefinition(name, description, abbreviations...)
	if err := b.current.AddCommand(child); err != nil {
		b.fail(err)
		return b
	}
	b.current = child
	return b
}

// EndCommand moves the cursor back to the parent command.
func (b *Builder) EndCommand() *Builder {
	if b.current.parent == nil {
		b.fail(ErrUnbalancedCommand)
		return b
	}
	b.current = b.current.parent
	return b
}

// Parameter declares a named parameter that takes a value.
func (b *Builder) Parameter(name, description string) *ParameterBuilder {
	return b.add(name, ParameterOptions{Description: description})
}

// Positional declares a parameter filled by position.
func (b *Builder) Positional(name, description string) *ParameterBuilder {
	return b.add(name, ParameterOptions{Description: description, Positional: true})
}

// Switch declares a parameter that takes no value.
func (b *Builder) Switch(name, description string) *ParameterBuilder {
	return b.add(name, ParameterOptions{Description: description, Switch: true})
}

// Help declares the "help" switch. Without arguments its abbreviations are
// "?" and "h"; a match sets Arguments.HelpRequested instead of storing a
// value.
func (b *Builder) Help(abbreviations ...string) *Builder {
	if len(abbreviations) == 0 {
		abbreviations = []string{"?", "h"}
	}
	b.add("help", ParameterOptions{
		Description:   "Show help",
		Abbreviations: abbreviations,
		Help:          true,
	})
	return b
}

func (b *Builder) add(name string, o ParameterOptions) *ParameterBuilder {
	pb := &ParameterBuilder{builder: b}
	def, err := NewParameterDefinition(name, o)
	if err != nil {
		b.fail(err)
		return pb
	}
	if err := b.current.AddParameter(def); err != nil {
		b.fail(err)
		return pb
	}
	pb.def = def
	return pb
}

func (b *Builder) setDialect(update func(*Dialect)) *Builder {
	d := b.root.dialect
	update(&d)
	if err := b.root.SetDialect(d); err != nil {
		b.fail(fmt.Errorf("%w (at %q)", err, b.current.name))
	}
	return b
}

// Dialect replaces the whole dialect.
func (b *Builder) Dialect(d Dialect) *Builder {
	return b.setDialect(func(cur *Dialect) { *cur = d })
}

// WindowsStyle switches to WindowsDialect.
func (b *Builder) WindowsStyle() *Builder { return b.Dialect(WindowsDialect()) }

// UnixStyle switches to UnixDialect.
func (b *Builder) UnixStyle() *Builder { return b.Dialect(UnixDialect()) }

// IgnoreCase sets the case policy. It must be called before any parameter
// or command is declared.
func (b *Builder) IgnoreCase(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.IgnoreCase = enabled })
}

func (b *Builder) AllowSlash(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.AllowSlash = enabled })
}

// StrictLongName requires "--" for full names; single-dash tokens only
// match abbreviations.
func (b *Builder) StrictLongName(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.StrictDoubleDash = enabled })
}

func (b *Builder) CombineOptions(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.CombineOptions = enabled })
}

func (b *Builder) ColonSeparator(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.ColonSeparator = enabled })
}

func (b *Builder) EqualSeparator(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.EqualSeparator = enabled })
}

func (b *Builder) BlankSeparator(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.BlankSeparator = enabled })
}

func (b *Builder) AllowUnknown(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.AllowUnknown = enabled })
}

func (b *Builder) DoubleDashSeparator(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.DoubleDashSeparator = enabled })
}

func (b *Builder) IgnoreNameSeparators(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.IgnoreNameSeparators = enabled })
}

func (b *Builder) SplitPositional(enabled bool) *Builder {
	return b.setDialect(func(d *Dialect) { d.SplitPositional = enabled })
}

// ParameterBuilder refines the parameter just declared. Back returns to
// the Builder.
type ParameterBuilder struct {
	builder *Builder
	def     *ParameterDefinition // nil when the declaration failed
}

// Abbrev adds abbreviations. Prefix one with HiddenMarker to keep it out of
// usage text.
func (p *ParameterBuilder) Abbrev(abbreviations ...string) *ParameterBuilder {
	if p.def == nil {
		return p
	}
	for _, a := range abbreviations {
		if err := p.def.command.parameters.checkAbbreviation(p.def, a); err != nil {
			p.builder.fail(err)
			continue
		}
		p.builder.fail(p.def.addAbbreviation(a))
	}
	return p
}

// ValueName names the value in usage text ("--output <file>").
func (p *ParameterBuilder) ValueName(name string) *ParameterBuilder {
	if p.def != nil {
		p.def.valueName = name
	}
	return p
}

// Required makes parsing report the parameter when it is left unset.
func (p *ParameterBuilder) Required() *ParameterBuilder {
	if p.def != nil {
		p.def.required = true
	}
	return p
}

// Collection lets the parameter accumulate values across occurrences and
// comma-separated lists.
func (p *ParameterBuilder) Collection() *ParameterBuilder {
	if p.def == nil {
		return p
	}
	if p.def.isSwitch {
		p.builder.fail(fmt.Errorf("%w: switch %q cannot be a collection", ErrInvalidDefinition, p.def.name))
		return p
	}
	p.def.collection = true
	return p
}

// Definition returns the declared definition, or nil if it was rejected.
func (p *ParameterBuilder) Definition() *ParameterDefinition { return p.def }

// Back returns the Builder.
func (p *ParameterBuilder) Back() *Builder { return p.builder }
