package cliargs

import (
	"slices"
	"strings"
)

type valueKind uint8

const (
	valueEmpty valueKind = iota
	valueOne
	valueMany
)

// Value is the value of one parsed parameter: empty, a single string or a
// list of strings. A list always holds at least two items; shorter inputs
// collapse to the empty or single form. Value is immutable.
type Value struct {
	kind valueKind
	one  string
	many []string
}

// NewValue builds a Value from items.
func NewValue(items ...string) Value {
	switch len(items) {
	case 0:
		return Value{}
	case 1:
		return Value{kind: valueOne, one: items[0]}
	default:
		return Value{kind: valueMany, many: slices.Clone(items)}
	}
}

// Append returns a new Value with items added after the current ones.
func (v Value) Append(items ...string) Value {
	if len(items) == 0 {
		return v
	}
	switch v.kind {
	case valueEmpty:
		return NewValue(items...)
	case valueOne:
		all := make([]string, 0, 1+len(items))
		all = append(all, v.one)
		return Value{kind: valueMany, many: append(all, items...)}
	default:
		all := make([]string, 0, len(v.many)+len(items))
		all = append(all, v.many...)
		return Value{kind: valueMany, many: append(all, items...)}
	}
}

// Merge appends every item of other.
func (v Value) Merge(other Value) Value {
	switch other.kind {
	case valueOne:
		return v.Append(other.one)
	case valueMany:
		return v.Append(other.many...)
	}
	return v
}

// IsEmpty reports whether the value holds nothing.
func (v Value) IsEmpty() bool { return v.kind == valueEmpty }

// IsCollection reports whether the value holds two or more items.
func (v Value) IsCollection() bool { return v.kind == valueMany }

// Len returns the number of items.
func (v Value) Len() int {
	switch v.kind {
	case valueOne:
		return 1
	case valueMany:
		return len(v.many)
	}
	return 0
}

// String returns the single item, or all items joined by commas.
func (v Value) String() string {
	switch v.kind {
	case valueOne:
		return v.one
	case valueMany:
		return strings.Join(v.many, ",")
	}
	return ""
}

// Strings returns a copy of the items.
func (v Value) Strings() []string {
	switch v.kind {
	case valueOne:
		return []string{v.one}
	case valueMany:
		return slices.Clone(v.many)
	}
	return nil
}

// At returns item i, or "" when out of range.
func (v Value) At(i int) string {
	switch {
	case v.kind == valueOne && i == 0:
		return v.one
	case v.kind == valueMany && i >= 0 && i < len(v.many):
		return v.many[i]
	}
	return ""
}

// Equal compares payloads.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valueOne:
		return v.one == other.one
	case valueMany:
		return slices.Equal(v.many, other.many)
	}
	return true
}
