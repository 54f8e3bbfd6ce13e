package wizard

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection(nil)

	s.Toggle("web")
	if !s.Has("web") || s.Len() != 1 {
		t.Fatalf("after one toggle: ids = %v", s.IDs())
	}

	s.Toggle("web")
	if s.Has("web") || s.Len() != 0 {
		t.Fatalf("toggling twice must restore the prior state: ids = %v", s.IDs())
	}
}

func TestSelectionKeepsPickOrder(t *testing.T) {
	s := NewSelection(nil)
	s.Toggle("data-jpa")
	s.Toggle("web")
	s.Toggle("security")
	s.Toggle("data-jpa")

	if got := s.IDs(); !reflect.DeepEqual(got, []string{"web", "security"}) {
		t.Errorf("IDs() = %v, want [web security]", got)
	}
}

func TestNewSelectionDeduplicatesSeed(t *testing.T) {
	s := NewSelection([]string{"web", "web", "data-jpa"})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSelectionIDsReturnsCopy(t *testing.T) {
	s := NewSelection([]string{"web"})
	ids := s.IDs()
	ids[0] = "mutated"
	if !s.Has("web") {
		t.Error("mutating the returned slice must not affect the selection")
	}
}
