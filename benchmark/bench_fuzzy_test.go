//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/dzonerzy/go-cliargs/internal/fuzzy"
)

// Category: fuzzy

var flagNames = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkSuggester_Best(b *testing.B) {
	s := fuzzy.NewSuggester(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Best("vebrose", flagNames)
	}
}

func BenchmarkSuggester_Rank(b *testing.B) {
	s := fuzzy.NewSuggester(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Rank("hots", flagNames)
	}
}

func BenchmarkSimilar(b *testing.B) {
	parts := fuzzy.Split("max-connection-count")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fuzzy.Similar("mx-conn-cnt", parts, nil, false)
	}
}

func BenchmarkSimilar_IgnoreDelimiters(b *testing.B) {
	parts := fuzzy.Split("maxConnectionCount")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fuzzy.Similar("mcc", parts, nil, true)
	}
}

func BenchmarkSplit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fuzzy.Split("HTTPServerReadTimeout")
	}
}
