//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-cliargs/cliargs"
)

// Category: parser

func buildSimpleGrammar() *cliargs.CommandDefinition {
	b := cliargs.NewBuilder("bench", "bench")
	b.Parameter("port", "").Abbrev("p")
	b.Switch("verbose", "").Abbrev("v")
	return b.MustBuild()
}

func BenchmarkParserSimple(b *testing.B) {
	root := buildSimpleGrammar()
	args := []string{"--port", "8080", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := cliargs.Parse(root, args)
		if result.HasErrors() {
			b.Fatal(result.Errors())
		}
		if !result.Switch("verbose") {
			b.Fatalf("verbose not parsed")
		}
	}
}

func BenchmarkParserComplex(b *testing.B) {
	bld := cliargs.NewBuilder("bench", "bench")
	bld.Switch("global", "")
	bld.BeginCommand("serve", "").
		Parameter("port", "").Back().
		Parameter("host", "").Back().
		EndCommand()
	root := bld.MustBuild()
	args := []string{"--global", "serve", "--port", "8080", "--host", "localhost"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := cliargs.Parse(root, args)
		if result.Command().Name() != "serve" {
			b.Fatalf("serve not selected")
		}
	}
}

func BenchmarkParserSimilarNames(b *testing.B) {
	bld := cliargs.NewBuilder("bench", "bench").IgnoreNameSeparators(true)
	for _, name := range []string{"block-size", "block-count", "input-file", "output-file", "skip-bytes", "seek-bytes"} {
		bld.Parameter(name, "")
	}
	root := bld.MustBuild()
	args := []string{"--bs=4096", "--bc=10", "--if=in.img", "--of=out.img", "--ski-b=0", "--se-b=0"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if result := cliargs.Parse(root, args); result.HasErrors() {
			b.Fatal(result.Errors())
		}
	}
}

func BenchmarkParserCollections(b *testing.B) {
	bld := cliargs.NewBuilder("bench", "bench")
	bld.Parameter("include", "").Abbrev("I").Collection()
	bld.Positional("files", "").Collection()
	root := bld.MustBuild()
	args := []string{"x.go", "y.go", "z.go", "-I", "a,b,c", "-I=d", "--include", "e,", "f", "g"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := cliargs.Parse(root, args)
		if result.Get("include").Len() != 7 {
			b.Fatalf("include not accumulated: %v", result.Collection("include"))
		}
	}
}

func BenchmarkParserCluster(b *testing.B) {
	bld := cliargs.NewBuilder("tar", "").UnixStyle()
	bld.Switch("extract", "").Abbrev("x")
	bld.Switch("verbose", "").Abbrev("v")
	bld.Switch("gzip", "").Abbrev("z")
	bld.Parameter("file", "").Abbrev("f")
	root := bld.MustBuild()
	args := []string{"-xvzf", "archive.tar.gz"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if result := cliargs.Parse(root, args); result.HasErrors() {
			b.Fatal(result.Errors())
		}
	}
}

func BenchmarkParseAuto(b *testing.B) {
	args := []string{"--env=dev", "--env=prod", "-v", "--out", "x", "build.yml", "deploy.yml"}
	d := cliargs.DefaultDialect()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cliargs.ParseAuto(d, args)
	}
}

func BenchmarkParserParallel(b *testing.B) {
	root := buildSimpleGrammar()
	args := []string{"-p", "8080", "-v"}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = cliargs.Parse(root, args)
		}
	})
}
