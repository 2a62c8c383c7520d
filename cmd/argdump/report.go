package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-cliargs/cliargs"
)

type report struct {
	Help       bool        `json:"help" yaml:"help" toml:"help"`
	Parameters []parameter `json:"parameters" yaml:"parameters" toml:"parameters"`
	Errors     []string    `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
}

type parameter struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Positional bool     `json:"positional,omitempty" yaml:"positional,omitempty" toml:"positional,omitempty"`
	Values     []string `json:"values" yaml:"values" toml:"values"`
}

func newReport(a *cliargs.Arguments) report {
	r := report{
		Help:       a.HelpRequested(),
		Parameters: make([]parameter, 0, len(a.Parameters())),
		Errors:     a.Errors(),
	}
	for _, p := range a.Parameters() {
		r.Parameters = append(r.Parameters, parameter{
			Name:       p.Name(),
			Positional: p.Definition().IsPositional(),
			Values:     p.Value().Strings(),
		})
	}
	return r
}

func write(w io.Writer, format string, r report) error {
	switch strings.ToLower(format) {
	case "text":
		return writeText(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, r report) error {
	width := 0
	for _, p := range r.Parameters {
		width = max(width, len(p.Name))
	}
	for _, p := range r.Parameters {
		name := p.Name
		if p.Positional {
			name = "<" + name + ">"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+2, name, strings.Join(p.Values, " | ")); err != nil {
			return err
		}
	}
	return nil
}
