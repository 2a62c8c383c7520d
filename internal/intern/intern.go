// Package intern deduplicates the parameter and command names produced by
// grammar construction, so repeated builders share one copy of each name.
package intern

import (
	"sync"
)

// Table is a thread-safe string interning table.
type Table struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewTable creates a table with room for capacity names.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = 64
	}
	return &Table{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s.
func (t *Table) Intern(s string) string {
	t.mu.RLock()
	if v, ok := t.strings[s]; ok {
		t.mu.RUnlock()
		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.strings[s]; ok {
		return v
	}
	t.strings[s] = s
	return s
}

// Preload interns names up front.
func (t *Table) Preload(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range names {
		t.strings[s] = s
	}
}

// Len returns the number of interned strings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// Reset drops every interned string.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.strings)
}

// CommonNames are interned at startup.
var CommonNames = []string{
	"help", "h", "?", "version", "verbose", "v", "quiet", "q",
	"positional", "output", "o", "input", "i", "force", "f", "true",
}

var global = func() *Table {
	t := NewTable(128)
	t.Preload(CommonNames...)
	return t
}()

// Intern interns s in the process-wide table.
func Intern(s string) string {
	return global.Intern(s)
}
