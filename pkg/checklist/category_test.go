package checklist

import "testing"

func TestColorAtCyclesPalette(t *testing.T) {
	size := PaletteSize()
	if size == 0 {
		t.Fatalf("palette must not be empty")
	}
	if ColorAt(0) != ColorAt(size) {
		t.Fatalf("expected palette to cycle at index %d", size)
	}
	if ColorAt(1) == ColorAt(0) && size > 1 {
		t.Fatalf("expected adjacent palette colors to differ")
	}
}

func TestColorAtDeterministic(t *testing.T) {
	for i := 0; i < PaletteSize()*2; i++ {
		if ColorAt(i) != ColorAt(i) {
			t.Fatalf("color assignment must be pure")
		}
	}
}

func TestCategoryByNameCaseInsensitive(t *testing.T) {
	s := NewState()
	s.Categories = append(s.Categories, NewCategory(1, "Errands", ColorAt(0)))

	if _, ok := s.CategoryByName("errands"); !ok {
		t.Fatalf("expected case-insensitive match")
	}
	if _, ok := s.CategoryByName("ERRANDS"); !ok {
		t.Fatalf("expected case-insensitive match")
	}
	if _, ok := s.CategoryByName("chores"); ok {
		t.Fatalf("expected no match")
	}
}
