// Package cliargs turns a flat argv slice into a tree of commands and
// parameter values.
//
// A grammar is built with Builder:
//
//	b := cliargs.NewBuilder("tool", "Copies blocks").UnixStyle()
//	b.Parameter("block-size", "Block size").Abbrev("b").Back()
//	b.Switch("verbose", "Chatty output").Abbrev("v").Back()
//	b.BeginCommand("push", "Upload files").
//		Positional("files", "Files to upload").Collection().Required().Back().
//		EndCommand()
//	b.Help()
//
//	args, err := b.Parse(os.Args[1:])
//
// Parsing never fails: every problem found in the tokens is recorded as a
// Diagnostic and the best-effort result is still returned. Only grammar
// construction mistakes (empty or duplicate names, unbalanced EndCommand)
// are reported as errors.
//
// Parameter names may be abbreviated on the command line. Besides exact
// names and declared abbreviations, a token matches a parameter when it
// abbreviates every word of the name in order: "--blk-sz" or "--b-s" both
// select "block-size". A token that abbreviates more than one parameter is
// reported as ambiguous instead of being bound to either.
//
// ParseAuto parses without a grammar; every option it sees becomes a
// collection parameter named after the token.
package cliargs
