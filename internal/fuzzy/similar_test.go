package fuzzy

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		want []Part
	}{
		{"block-size", []Part{{Text: "block"}, {Text: "-", Delimiter: true}, {Text: "size"}}},
		{"blockSize", []Part{{Text: "block"}, {Text: "Size"}}},
		{"BlockSize", []Part{{Text: "Block"}, {Text: "Size"}}},
		{"HTTPPort", []Part{{Text: "HTTP"}, {Text: "Port"}}},
		{"max_retry", []Part{{Text: "max"}, {Text: "_", Delimiter: true}, {Text: "retry"}}},
		{"v", []Part{{Text: "v"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.name)); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	tests := []struct {
		token            string
		name             string
		ignoreCase       bool
		ignoreDelimiters bool
		want             bool
	}{
		{"b-s", "block-size", false, false, true},
		{"blk-sz", "block-size", false, false, true},
		{"bs", "block-size", false, false, false},
		{"bs", "block-size", false, true, true},
		{"blk-sz", "block-size", false, true, true},
		{"block", "block-size", false, true, false},
		{"block-size", "block-size", false, false, true},
		{"bS", "blockSize", false, false, true},
		{"bs", "blockSize", false, false, false},
		{"bs", "blockSize", true, false, true},
		{"b-S", "blockSize", false, true, true},
		{"verb", "verbose", false, false, true},
		{"vrb", "verbose", false, false, true},
		{"erb", "verbose", false, false, false},
		{"verbosex", "verbose", false, false, false},
		{"", "verbose", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.token+"/"+tt.name, func(t *testing.T) {
			var fold func(string) string
			if tt.ignoreCase {
				fold = strings.ToLower
			}
			got := Similar(tt.token, Split(tt.name), fold, tt.ignoreDelimiters)
			if got != tt.want {
				t.Errorf("Similar(%q, %q, ignoreCase=%v, ignoreDelimiters=%v) = %v, want %v",
					tt.token, tt.name, tt.ignoreCase, tt.ignoreDelimiters, got, tt.want)
			}
		})
	}
}
