package pool

import (
	"testing"
)

type scratch struct {
	items []int
	used  bool
}

func TestPool_ResetOnGet(t *testing.T) {
	created := 0
	p := NewWithReset(
		func() *scratch {
			created++
			return &scratch{items: make([]int, 0, 4)}
		},
		func(s *scratch) {
			s.items = s.items[:0]
			s.used = false
		},
	)

	s := p.Get()
	s.items = append(s.items, 1, 2, 3)
	s.used = true
	p.Put(s)

	s2 := p.Get()
	if len(s2.items) != 0 || s2.used {
		t.Errorf("expected reset object, got %+v", s2)
	}
	if created == 0 {
		t.Error("expected factory to be called")
	}
}

func TestPool_PutNil(t *testing.T) {
	p := New(func() *scratch { return &scratch{} })
	p.Put(nil)
	if p.Get() == nil {
		t.Error("expected non-nil object")
	}
}

func TestStrings(t *testing.T) {
	s := GetStrings()
	if len(*s) != 0 {
		t.Fatalf("expected empty slice, got %v", *s)
	}
	*s = append(*s, "a", "b")
	PutStrings(s)

	s2 := GetStrings()
	if len(*s2) != 0 {
		t.Errorf("expected empty slice after reuse, got %v", *s2)
	}
	PutStrings(s2)
	PutStrings(nil)
}

func TestPutStrings_DropsOversized(t *testing.T) {
	big := make([]string, 0, maxRetainedCap+1)
	PutStrings(&big) // must not panic or retain
}
