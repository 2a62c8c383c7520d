package cliargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewValueCollapses tests that zero and one items collapse to the empty and single forms
func TestNewValueCollapses(t *testing.T) {
	tests := []struct {
		name       string
		items      []string
		empty      bool
		collection bool
		str        string
	}{
		{"none", nil, true, false, ""},
		{"one", []string{"a"}, false, false, "a"},
		{"many", []string{"a", "b", "c"}, false, true, "a,b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValue(tt.items...)
			if v.IsEmpty() != tt.empty {
				t.Errorf("Expected IsEmpty=%v, got %v", tt.empty, v.IsEmpty())
			}
			if v.IsCollection() != tt.collection {
				t.Errorf("Expected IsCollection=%v, got %v", tt.collection, v.IsCollection())
			}
			if v.Len() != len(tt.items) {
				t.Errorf("Expected Len=%d, got %d", len(tt.items), v.Len())
			}
			if v.String() != tt.str {
				t.Errorf("Expected String=%q, got %q", tt.str, v.String())
			}
		})
	}
}

// TestValueAppendIsPure tests that Append leaves the receiver untouched
func TestValueAppendIsPure(t *testing.T) {
	empty := Value{}
	one := empty.Append("1")
	two := one.Append("2")
	three := two.Append("3")

	if !empty.IsEmpty() {
		t.Error("Expected original empty value to stay empty")
	}
	if one.IsCollection() || one.String() != "1" {
		t.Errorf("Expected single value '1', got %q", one.String())
	}
	if diff := cmp.Diff([]string{"1", "2"}, two.Strings()); diff != "" {
		t.Errorf("two mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, three.Strings()); diff != "" {
		t.Errorf("three mismatch (-want +got):\n%s", diff)
	}

	// appending to a list must not leak into earlier values
	a := two.Append("x")
	b := two.Append("y")
	if a.At(2) != "x" || b.At(2) != "y" {
		t.Errorf("Expected independent appends, got %v and %v", a.Strings(), b.Strings())
	}
}

// TestValueMergeAndEqual tests merging values and comparing their payloads
func TestValueMergeAndEqual(t *testing.T) {
	v := NewValue("a").Merge(NewValue("b", "c")).Merge(Value{})
	if !v.Equal(NewValue("a", "b", "c")) {
		t.Errorf("Expected a,b,c, got %v", v.Strings())
	}
	if NewValue("a").Equal(NewValue("a", "a")) {
		t.Error("Expected single and list values to differ")
	}
	if !(Value{}).Equal(NewValue()) {
		t.Error("Expected empty values to be equal")
	}
}

// TestValueStringsIsCopy tests that Strings returns a copy of the items
func TestValueStringsIsCopy(t *testing.T) {
	v := NewValue("a", "b")
	items := v.Strings()
	items[0] = "changed"
	if v.At(0) != "a" {
		t.Errorf("Expected value to be unaffected, got %q", v.At(0))
	}
	if v.At(5) != "" || v.At(-1) != "" {
		t.Error("Expected out of range At to return empty string")
	}
}
