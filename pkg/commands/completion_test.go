package commands

import "testing"

func TestFilterByPrefix(t *testing.T) {
	names := []string{"errands", "work", "weekend"}

	got := filterByPrefix(names, "w")
	if len(got) != 2 || got[0] != "work" || got[1] != "weekend" {
		t.Fatalf("unexpected matches: %v", got)
	}

	got = filterByPrefix(names, "")
	if len(got) != len(names) {
		t.Fatalf("empty prefix must match everything, got %v", got)
	}

	if got := filterByPrefix(names, "x"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
