package cliargs

import "slices"

// Arguments is the result of one parse: the invoked command chain with the
// values found for each command, the diagnostics and the help flag.
type Arguments struct {
	args          []string
	root          *CommandDefinition
	chain         []*ArgumentCommand
	diagnostics   []Diagnostic
	helpRequested bool
}

// Args returns the tokens that were parsed.
func (a *Arguments) Args() []string { return slices.Clone(a.args) }

// Root returns the grammar the tokens were parsed against. For ParseAuto
// it is the grammar-less root.
func (a *Arguments) Root() *CommandDefinition { return a.root }

// Commands returns the invoked command chain, root first.
func (a *Arguments) Commands() []*ArgumentCommand { return slices.Clone(a.chain) }

// Command returns the innermost invoked command.
func (a *Arguments) Command() *ArgumentCommand { return a.chain[len(a.chain)-1] }

// SelectedCommands returns the names of the invoked sub-commands, outermost
// first. The root is not included.
func (a *Arguments) SelectedCommands() []string {
	names := make([]string, 0, len(a.chain)-1)
	for _, c := range a.chain[1:] {
		names = append(names, c.definition.name)
	}
	return names
}

// HelpRequested reports whether a help switch or alias was seen. It is
// independent of HasErrors.
func (a *Arguments) HelpRequested() bool { return a.helpRequested }

// HasErrors reports whether any diagnostic was recorded.
func (a *Arguments) HasErrors() bool { return len(a.diagnostics) > 0 }

// Diagnostics returns the problems found, in the order they were found.
func (a *Arguments) Diagnostics() []Diagnostic { return slices.Clone(a.diagnostics) }

// Errors returns the diagnostic messages.
func (a *Arguments) Errors() []string {
	msgs := make([]string, len(a.diagnostics))
	for i, d := range a.diagnostics {
		msgs[i] = d.String()
	}
	return msgs
}

// Err returns a *ParseError holding the diagnostics, or nil.
func (a *Arguments) Err() error {
	if len(a.diagnostics) == 0 {
		return nil
	}
	return &ParseError{Diagnostics: a.Diagnostics()}
}

// Parameters returns every stored parameter of the chain, root command
// first. Help requests are never stored.
func (a *Arguments) Parameters() []*ArgumentParameter {
	var out []*ArgumentParameter
	for _, c := range a.chain {
		out = append(out, c.parameters.order...)
	}
	return out
}

// Parameter finds a stored parameter by name or declared abbreviation,
// searching the innermost command first.
func (a *Arguments) Parameter(name string) *ArgumentParameter {
	for i := len(a.chain) - 1; i >= 0; i-- {
		c := a.chain[i]
		if def := c.lookup(name); def != nil {
			if p := c.parameters.Get(def); p != nil {
				return p
			}
		}
	}
	return nil
}

// Has reports whether name was given.
func (a *Arguments) Has(name string) bool { return a.Parameter(name) != nil }

// Get returns the value of name, or an empty Value.
func (a *Arguments) Get(name string) Value {
	if p := a.Parameter(name); p != nil {
		return p.value
	}
	return Value{}
}

// Value returns the value of name as a string; lists are comma-joined.
func (a *Arguments) Value(name string) string { return a.Get(name).String() }

// Collection returns the items of name.
func (a *Arguments) Collection(name string) []string { return a.Get(name).Strings() }

// Switch reports whether the switch name was given. A parameter given a
// value counts as set when the value reads as true.
func (a *Arguments) Switch(name string) bool {
	p := a.Parameter(name)
	if p == nil {
		return false
	}
	if p.value.IsEmpty() {
		return true
	}
	v, ok := parseBool(p.value.At(p.value.Len() - 1))
	return ok && v
}

// Positional returns the values of the positional parameters, in the
// order they were filled.
func (a *Arguments) Positional() []Value {
	var out []Value
	for _, c := range a.chain {
		for _, p := range c.parameters.order {
			if p.definition.positional {
				out = append(out, p.value)
			}
		}
	}
	return out
}

// Usage renders the usage of the innermost invoked command.
func (a *Arguments) Usage() string { return a.Command().definition.Usage() }

// Lookup converts the value of name to T. It reports false when name was
// not given or does not convert.
func Lookup[T any](a *Arguments, name string) (T, bool) {
	p := a.Parameter(name)
	if p == nil {
		var zero T
		return zero, false
	}
	return Convert[T](p.value.String())
}

// ValueOf is Lookup with a fallback.
func ValueOf[T any](a *Arguments, name string, fallback T) T {
	if v, ok := Lookup[T](a, name); ok {
		return v
	}
	return fallback
}

// CollectionOf converts every item of name to T. It reports false when
// name was not given or any item does not convert.
func CollectionOf[T any](a *Arguments, name string) ([]T, bool) {
	p := a.Parameter(name)
	if p == nil {
		return nil, false
	}
	items := p.value.Strings()
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, ok := Convert[T](item)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
