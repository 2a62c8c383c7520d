package cliargs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-cliargs/internal/fuzzy"
)

// helpAliases are recognized even when the grammar declares no help switch.
var helpAliases = [...]string{"?", "h", "help"}

// parser holds the state of one Parse call. Nothing in it is shared with
// other calls, so one grammar can serve concurrent parses.
type parser struct {
	dialect       Dialect
	cmp           comparer
	args          []string
	pos           int
	optionsActive bool
	chain         []*ArgumentCommand
	result        *Arguments
}

func newParser(root *CommandDefinition, args []string) *parser {
	d := root.Dialect()
	rootCmd := newArgumentCommand(root)
	return &parser{
		dialect:       d,
		cmp:           comparer{ignoreCase: d.IgnoreCase},
		args:          args,
		optionsActive: true,
		chain:         []*ArgumentCommand{rootCmd},
		result:        &Arguments{args: args, root: root},
	}
}

// Parse reads args against the grammar rooted at root. It always returns a
// result; problems are reported through Arguments.Diagnostics.
func Parse(root *CommandDefinition, args []string) *Arguments {
	p := newParser(root, args)
	p.run()
	return p.finish()
}

func (p *parser) finish() *Arguments {
	p.result.chain = p.chain
	return p.result
}

func (p *parser) leaf() *ArgumentCommand {
	return p.chain[len(p.chain)-1]
}

func (p *parser) run() {
	for p.pos = 0; p.pos < len(p.args); p.pos++ {
		tok := p.args[p.pos]
		if tok == "" {
			continue
		}

		if p.optionsActive {
			switch kind := p.dialect.classify(tok); kind {
			case tokenTerminator:
				if p.dialect.DoubleDashSeparator {
					p.optionsActive = false
				} else {
					p.invalid(tok)
				}
				continue
			case tokenShort, tokenLong, tokenSlash:
				p.parseOption(tok, kind)
				continue
			case tokenValue:
			}

			if sub := p.leaf().definition.commands.Lookup(tok); sub != nil {
				p.enter(sub)
				continue
			}
		}

		p.parsePositional(tok)
	}

	p.checkRequired()
}

// enter appends the invoked sub-command to the chain.
func (p *parser) enter(def *CommandDefinition) {
	cmd := newArgumentCommand(def)
	p.leaf().next = cmd
	p.chain = append(p.chain, cmd)
}

func (p *parser) report(d Diagnostic) {
	p.result.diagnostics = append(p.result.diagnostics, d)
}

func (p *parser) invalid(tok string) {
	p.report(Diagnostic{
		Type:    ErrorTypeInvalidParameter,
		Token:   tok,
		Message: "Invalid parameter: " + tok,
	})
}

func (p *parser) isHelpAlias(name string) bool {
	for _, a := range helpAliases {
		if p.cmp.equal(a, name) {
			return true
		}
	}
	return false
}

func (p *parser) parseOption(tok string, kind tokenKind) {
	name, value, hasValue := p.dialect.split(tok[kind.prefixLen():])
	if name == "" {
		p.invalid(tok)
		return
	}

	var def *ParameterDefinition
	resolveFully := kind != tokenShort
	if kind == tokenShort {
		def = p.findShort(name, p.dialect.StrictDoubleDash)
		if def == nil && p.dialect.CombineOptions && !hasValue && utf8.RuneCountInString(name) > 1 {
			p.parseCluster(tok, name)
			return
		}
		resolveFully = def == nil && !p.dialect.StrictDoubleDash
	}
	if resolveFully {
		var ok bool
		if def, ok = p.resolve(tok, name); !ok {
			return
		}
	}

	if def == nil {
		p.unresolved(tok, name, value, hasValue)
		return
	}
	if def.help {
		p.result.helpRequested = true
		return
	}
	p.assign(tok, def, value, hasValue)
}

// findShort matches a single-dash name against declared abbreviations,
// innermost command first. With letter set, a one-letter name also matches
// a parameter called by that letter.
func (p *parser) findShort(name string, letter bool) *ParameterDefinition {
	abbreviationOnly := !letter || utf8.RuneCountInString(name) > 1
	for i := len(p.chain) - 1; i >= 0; i-- {
		if d := p.chain[i].definition.parameters.Exact(name, abbreviationOnly); d != nil {
			return d
		}
	}
	return nil
}

// resolve matches name exactly or by similarity, innermost command first.
// An ambiguous match stops the search; ok is false once it is reported.
func (p *parser) resolve(tok, name string) (def *ParameterDefinition, ok bool) {
	opts := FindOptions{Similar: true, IgnoreDelimiters: p.dialect.IgnoreNameSeparators}
	for i := len(p.chain) - 1; i >= 0; i-- {
		m := p.chain[i].definition.parameters.Find(name, opts)
		switch m.Status {
		case Found:
			return m.Definition, true
		case Ambiguous:
			names := make([]string, len(m.Candidates))
			for j, c := range m.Candidates {
				names[j] = c.name
			}
			p.report(Diagnostic{
				Type:      ErrorTypeAmbiguousParameter,
				Token:     tok,
				Parameter: name,
				Message:   fmt.Sprintf("Ambiguous parameter: %s (%s)", tok, strings.Join(names, ", ")),
			})
			return nil, false
		case NotFound:
		}
	}
	return nil, true
}

// unresolved handles an option that matches no declared parameter.
func (p *parser) unresolved(tok, name, value string, hasValue bool) {
	if p.isHelpAlias(name) {
		p.result.helpRequested = true
		return
	}
	if !p.dialect.AllowUnknown {
		p.report(Diagnostic{
			Type:       ErrorTypeUnknownParameter,
			Token:      tok,
			Parameter:  name,
			Message:    "Unknown parameter: " + tok,
			Suggestion: p.suggest(name),
		})
		return
	}

	leaf := p.leaf()
	if !hasValue {
		p.store(tok, leaf.unknownParameter(name, false, false, true), "true")
		return
	}
	p.store(tok, leaf.unknownParameter(name, false, strings.Contains(value, ","), false), value)
}

func (p *parser) suggest(name string) string {
	var names []string
	for _, cmd := range p.chain {
		names = append(names, cmd.definition.parameters.names()...)
	}
	if best := fuzzy.Suggest(name, names, 2); best != "" {
		return "--" + best
	}
	return ""
}

// assign finds the value of a resolved option and stores it.
func (p *parser) assign(tok string, def *ParameterDefinition, value string, hasValue bool) {
	if !hasValue {
		if def.isSwitch {
			value = "true"
		} else if value, hasValue = p.nextValue(); !hasValue {
			p.report(Diagnostic{
				Type:      ErrorTypeMissingValue,
				Token:     tok,
				Parameter: def.name,
				Message:   "Missing value for parameter: " + tok,
			})
			return
		}
	}
	p.store(tok, def, value)
}

// store records raw for def on the command that declares it. Collection
// values are split into items first.
func (p *parser) store(tok string, def *ParameterDefinition, raw string) {
	v := NewValue(raw)
	if def.collection {
		v = NewValue(p.expand(raw)...)
	}
	if err := p.owner(def).parameters.Add(def, v); err != nil {
		p.report(Diagnostic{
			Type:      ErrorTypeDuplicateParameter,
			Token:     tok,
			Parameter: def.name,
			Message:   "Duplicate parameter: " + tok,
		})
	}
}

// owner returns the chain link of the command that declares def.
func (p *parser) owner(def *ParameterDefinition) *ArgumentCommand {
	for i := len(p.chain) - 1; i >= 0; i-- {
		if p.chain[i].definition == def.command {
			return p.chain[i]
		}
	}
	return p.leaf()
}

// parseCluster reads "-abc" as "-a -b -c". Each letter must be a declared
// abbreviation or one-letter name (or is synthesized when unknown options
// are allowed). Only
// the last letter may take a value, from the next token.
func (p *parser) parseCluster(tok, name string) {
	flags := []rune(name)
	for i, r := range flags {
		flag := string(r)

		def := p.findShort(flag, true)
		if def == nil {
			if p.isHelpAlias(flag) {
				p.result.helpRequested = true
				continue
			}
			if !p.dialect.AllowUnknown {
				p.report(Diagnostic{
					Type:      ErrorTypeUnknownParameter,
					Token:     tok,
					Parameter: flag,
					Message:   fmt.Sprintf("Unknown flag '%s' in parameter: %s", flag, tok),
				})
				continue
			}
			def = p.leaf().unknownParameter(flag, false, false, true)
		}
		if def.help {
			p.result.helpRequested = true
			continue
		}

		v := NewValue("true")
		if !def.isSwitch {
			value, ok := "", false
			if i == len(flags)-1 {
				value, ok = p.nextValue()
			}
			if !ok {
				p.report(Diagnostic{
					Type:      ErrorTypeMissingValue,
					Token:     tok,
					Parameter: def.name,
					Message:   fmt.Sprintf("Missing value for flag '%s' in parameter: %s", flag, tok),
				})
				continue
			}
			v = NewValue(value)
			if def.collection {
				v = NewValue(p.expand(value)...)
			}
		}

		if err := p.owner(def).parameters.Add(def, v); err != nil {
			p.report(Diagnostic{
				Type:      ErrorTypeDuplicateParameter,
				Token:     tok,
				Parameter: def.name,
				Message:   fmt.Sprintf("Duplicate flag '%s' in parameter: %s", flag, tok),
			})
		}
	}
}

func (p *parser) parsePositional(tok string) {
	if cmd, def := p.nextPositional(); def != nil {
		v := NewValue(tok)
		if def.collection {
			v = NewValue(p.expand(tok)...)
		}
		// the slot is unset, or a collection that appends
		_ = cmd.parameters.Add(def, v)
		return
	}

	if !p.dialect.AllowUnknown {
		p.report(Diagnostic{
			Type:    ErrorTypeUnknownArgument,
			Token:   tok,
			Message: "Unknown argument: " + tok,
		})
		return
	}

	leaf := p.leaf()
	items := p.expand(tok)
	def := leaf.unknownParameter(leaf.nextPositionalName(), true, p.dialect.SplitPositional || len(items) > 1, false)
	_ = leaf.parameters.Add(def, NewValue(items...))
}

// nextPositional walks the chain from the root and returns the first
// declared positional without a value. Once all are set, the last
// positional of the innermost command that has a collection one keeps
// accepting values, unless positional runs are split.
func (p *parser) nextPositional() (*ArgumentCommand, *ParameterDefinition) {
	for _, cmd := range p.chain {
		for _, def := range cmd.definition.parameters.Positionals() {
			if !cmd.parameters.Has(def) {
				return cmd, def
			}
		}
	}
	if p.dialect.SplitPositional {
		return nil, nil
	}
	for i := len(p.chain) - 1; i >= 0; i-- {
		pos := p.chain[i].definition.parameters.Positionals()
		if n := len(pos); n > 0 && pos[n-1].collection {
			return p.chain[i], pos[n-1]
		}
	}
	return nil, nil
}

// checkRequired reports every unset required parameter of the chain in a
// single diagnostic.
func (p *parser) checkRequired() {
	var missing []string
	for _, cmd := range p.chain {
		for _, def := range cmd.definition.parameters.items {
			if def.required && !cmd.parameters.Has(def) {
				missing = append(missing, def.name)
			}
		}
	}
	if len(missing) == 0 {
		return
	}
	p.report(Diagnostic{
		Type:      ErrorTypeMissingRequired,
		Parameter: strings.Join(missing, ", "),
		Message:   "Missing required parameter(s): " + strings.Join(missing, ", "),
	})
}
