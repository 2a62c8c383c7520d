package cliargs

import (
	"strings"
	"unicode/utf8"

	"github.com/google/shlex"
)

// ParseAuto parses args without a grammar. Every option becomes a
// collection parameter named after its token, so repeats accumulate
// instead of failing. Non-option tokens go to "positional", or to
// "positional", "positional.1", ... per token when d.SplitPositional is
// set.
func ParseAuto(d Dialect, args []string) *Arguments {
	root := NewCommandDefinition("", "")
	root.dialect = d

	p := newParser(root, args)
	p.runAuto()
	return p.finish()
}

func (p *parser) runAuto() {
	for p.pos = 0; p.pos < len(p.args); p.pos++ {
		tok := p.args[p.pos]
		if tok == "" {
			continue
		}
		if !p.optionsActive {
			p.autoPositional(tok)
			continue
		}

		switch kind := p.dialect.classify(tok); kind {
		case tokenTerminator:
			if p.dialect.DoubleDashSeparator {
				p.optionsActive = false
			} else {
				p.invalid(tok)
			}
		case tokenShort, tokenLong, tokenSlash:
			p.autoOption(tok, kind)
		default:
			p.autoPositional(tok)
		}
	}
}

func (p *parser) autoOption(tok string, kind tokenKind) {
	name, value, hasValue := p.dialect.split(tok[kind.prefixLen():])
	if name == "" {
		p.invalid(tok)
		return
	}

	if kind == tokenShort && p.dialect.CombineOptions && !hasValue && utf8.RuneCountInString(name) > 1 {
		for _, r := range name {
			if flag := string(r); p.isHelpAlias(flag) {
				p.result.helpRequested = true
			} else {
				p.autoStore(flag, NewValue("true"))
			}
		}
		return
	}

	if p.isHelpAlias(name) {
		p.result.helpRequested = true
		return
	}
	if !hasValue {
		if value, hasValue = p.nextValue(); !hasValue {
			p.autoStore(name, NewValue("true"))
			return
		}
	}
	p.autoStore(name, NewValue(p.expand(value)...))
}

func (p *parser) autoStore(name string, v Value) {
	root := p.leaf()
	def := root.unknownParameter(name, false, true, false)
	// discovered parameters are collections, Add never rejects them
	_ = root.parameters.Add(def, v)
}

func (p *parser) autoPositional(tok string) {
	root := p.leaf()
	var def *ParameterDefinition
	if p.dialect.SplitPositional {
		def = root.unknownParameter(root.nextPositionalName(), true, true, false)
	} else {
		def = root.positionalSlot()
	}
	_ = root.parameters.Add(def, NewValue(p.expand(tok)...))
}

// ParseString splits line the way a POSIX shell would (quotes and
// backslash escapes) and parses the words against root.
func ParseString(root *CommandDefinition, line string) (*Arguments, error) {
	words, err := splitLine(line)
	if err != nil {
		return nil, err
	}
	return Parse(root, words), nil
}

// ParseAutoString is ParseString for ParseAuto.
func ParseAutoString(d Dialect, line string) (*Arguments, error) {
	words, err := splitLine(line)
	if err != nil {
		return nil, err
	}
	return ParseAuto(d, words), nil
}

func splitLine(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	return shlex.Split(line)
}
