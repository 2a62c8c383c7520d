// Command argdump parses its arguments without a grammar and prints what
// the parser saw. It is handy for checking how a dialect reads a command
// line.
//
//	argdump --dialect windows -- /out:x.txt /v file1
//	argdump -f yaml -l 'build --tags "a b" ./...'
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dzonerzy/go-cliargs/cliargs"
	"github.com/dzonerzy/go-cliargs/internal/console"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, console.New()))
}

func grammar() *cliargs.Builder {
	b := cliargs.NewBuilder("argdump", "Show how a command line is parsed").UnixStyle()
	b.Parameter("format", "Output format: text, json, yaml or toml").Abbrev("f").ValueName("fmt")
	b.Parameter("dialect", "Dialect: default, unix or windows").Abbrev("d").ValueName("name")
	b.Parameter("line", "Parse this shell-quoted line instead of the arguments").Abbrev("l").ValueName("text")
	b.Switch("split", "Keep each positional value separate").Abbrev("s")
	b.Switch("no-color", "Disable colored output")
	b.Help()
	return b
}

// splitArgs separates argdump's own options from the arguments to dump,
// which follow the first "--" verbatim.
func splitArgs(argv []string) (own, rest []string) {
	if i := slices.Index(argv, "--"); i >= 0 {
		return argv[:i], argv[i+1:]
	}
	return argv, nil
}

func run(argv []string, stdout io.Writer, log *console.Logger) int {
	codes := cliargs.NewExitCodes()
	own, rest := splitArgs(argv)

	opts, err := grammar().Parse(own)
	if err != nil {
		log.Error("%v", err)
		return codes.Resolve(err)
	}
	if opts.Switch("no-color") {
		log.WithColor(false)
	}
	if opts.HelpRequested() {
		fmt.Fprint(stdout, opts.Usage())
		return 0
	}
	if opts.HasErrors() {
		for _, msg := range opts.Errors() {
			log.Error("%s", msg)
		}
		return codes.For(opts)
	}

	d, ok := dialects[cliargs.ValueOf(opts, "dialect", "default")]
	if !ok {
		log.Error("unknown dialect %q", opts.Value("dialect"))
		return 2
	}
	d.SplitPositional = opts.Switch("split")

	var result *cliargs.Arguments
	if opts.Has("line") {
		if result, err = cliargs.ParseAutoString(d, opts.Value("line")); err != nil {
			log.Error("cannot split line: %v", err)
			return 2
		}
	} else {
		result = cliargs.ParseAuto(d, rest)
	}

	format := cliargs.ValueOf(opts, "format", "text")
	if err := write(stdout, format, newReport(result)); err != nil {
		log.Error("%v", err)
		return 1
	}

	for _, diag := range result.Diagnostics() {
		log.Warning("%s", diag)
	}
	if result.HelpRequested() {
		log.Info("help requested")
	}
	return codes.For(result)
}

var dialects = map[string]cliargs.Dialect{
	"default": cliargs.DefaultDialect(),
	"unix":    cliargs.UnixDialect(),
	"windows": cliargs.WindowsDialect(),
}
