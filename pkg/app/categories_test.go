package app

import (
	"errors"
	"testing"

	"checkli/pkg/checklist"
)

func TestAddCategoryAssignsPaletteColor(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.AddCategory("errands")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Color != checklist.ColorAt(0) {
		t.Fatalf("expected first palette color, got %s", first.Color)
	}

	second, _ := svc.AddCategory("work")
	if second.Color != checklist.ColorAt(1) {
		t.Fatalf("expected second palette color, got %s", second.Color)
	}
	if second.ID <= first.ID {
		t.Fatalf("category ids must strictly increase")
	}
}

func TestAddCategoryDuplicateRejected(t *testing.T) {
	svc, mp := newTestService(t)
	if _, err := svc.AddCategory("Errands"); err != nil {
		t.Fatalf("add: %v", err)
	}
	saves := mp.catSaves

	_, err := svc.AddCategory("errands")
	if !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
	if len(svc.Categories()) != 1 {
		t.Fatalf("duplicate must leave the collection unchanged")
	}
	if mp.catSaves != saves {
		t.Fatalf("duplicate must not persist")
	}
}

func TestAddCategoryEmptyIsSilentNoop(t *testing.T) {
	svc, mp := newTestService(t)
	c, err := svc.AddCategory("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatalf("expected no category for blank name")
	}
	if mp.catSaves != 0 {
		t.Fatalf("blank add must not persist")
	}
}

func TestDeleteCategoryCascadesUnassign(t *testing.T) {
	svc, mp := newTestService(t)
	cat, _ := svc.AddCategory("errands")
	other, _ := svc.AddCategory("work")

	svc.AddItem("a", &cat.ID)
	svc.AddItem("b", &cat.ID)
	svc.AddItem("c", &other.ID)

	confirmed := 0
	deleted, err := svc.DeleteCategory(cat.ID, func(c *checklist.Category, refs int) bool {
		confirmed++
		if c.ID != cat.ID {
			t.Fatalf("confirm got category %d", c.ID)
		}
		if refs != 2 {
			t.Fatalf("expected 2 referencing items, got %d", refs)
		}
		return true
	})
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	if confirmed != 1 {
		t.Fatalf("expected exactly one confirmation, got %d", confirmed)
	}

	for _, item := range svc.Items() {
		if item.InCategory(cat.ID) {
			t.Fatalf("item %d still references the deleted category", item.ID)
		}
	}
	if _, ok := svc.FindCategory(cat.ID); ok {
		t.Fatalf("category must be gone")
	}
	if !svc.Items()[2].InCategory(other.ID) {
		t.Fatalf("other assignments must survive")
	}
	if mp.itemSaves == 0 || mp.catSaves == 0 {
		t.Fatalf("both records must be persisted")
	}
}

func TestDeleteCategoryDeclined(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")
	svc.AddItem("a", &cat.ID)

	deleted, err := svc.DeleteCategory(cat.ID, func(*checklist.Category, int) bool { return false })
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatalf("declined confirmation must abort")
	}
	if _, ok := svc.FindCategory(cat.ID); !ok {
		t.Fatalf("category must survive a declined delete")
	}
	if !svc.Items()[0].InCategory(cat.ID) {
		t.Fatalf("assignment must survive a declined delete")
	}
}

func TestDeleteCategoryUnreferencedSkipsConfirm(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")

	deleted, err := svc.DeleteCategory(cat.ID, nil)
	if err != nil || !deleted {
		t.Fatalf("expected unreferenced category to delete without confirmation")
	}
}

func TestDeleteCategoryResetsScopedFilter(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")
	svc.AddItem("a", &cat.ID)

	if err := svc.SetCategoryFilter(checklist.FilterForCategory(cat.ID)); err != nil {
		t.Fatalf("set filter: %v", err)
	}

	if _, err := svc.DeleteCategory(cat.ID, func(*checklist.Category, int) bool { return true }); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if svc.CategoryFilter() != checklist.CategoryAll {
		t.Fatalf("filter scoped to a deleted category must reset to all, got %s", svc.CategoryFilter())
	}
}

func TestDeleteCategoryMissingIsSilent(t *testing.T) {
	svc, _ := newTestService(t)
	deleted, err := svc.DeleteCategory(42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatalf("expected no-op for missing id")
	}
}

func TestResolveCategory(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("Errands")

	id, err := svc.ResolveCategory("errands")
	if err != nil || id == nil || *id != cat.ID {
		t.Fatalf("resolve by name: id=%v err=%v", id, err)
	}

	id, err = svc.ResolveCategory("1")
	if err != nil || id == nil || *id != cat.ID {
		t.Fatalf("resolve by id: id=%v err=%v", id, err)
	}

	id, err = svc.ResolveCategory("")
	if err != nil || id != nil {
		t.Fatalf("empty token must mean unassigned")
	}

	if _, err := svc.ResolveCategory("chores"); err == nil {
		t.Fatalf("unknown name must be rejected")
	}
	if _, err := svc.ResolveCategory("99"); err == nil {
		t.Fatalf("unknown id must be rejected")
	}
}
