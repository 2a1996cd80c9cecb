package app

import (
	"context"
	"testing"

	"checkli/pkg/checklist"
	"checkli/pkg/store"
)

// memoryPersistence records every save so tests can assert the
// write-through behavior without touching disk.
type memoryPersistence struct {
	items store.ItemsRecord
	cats  store.CategoriesRecord

	itemSaves int
	catSaves  int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{
		items: store.EmptyItems(),
		cats:  store.EmptyCategories(),
	}
}

func (m *memoryPersistence) LoadItems(_ context.Context) store.ItemsRecord {
	return m.items
}

func (m *memoryPersistence) SaveItems(rec store.ItemsRecord) error {
	m.items = rec
	m.itemSaves++
	return nil
}

func (m *memoryPersistence) LoadCategories(_ context.Context) store.CategoriesRecord {
	return m.cats
}

func (m *memoryPersistence) SaveCategories(rec store.CategoriesRecord) error {
	m.cats = rec
	m.catSaves++
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	mp := newMemoryPersistence()
	svc, err := Load(context.Background(), mp)
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	return svc, mp
}

func TestAddItemAssignsIncreasingIDs(t *testing.T) {
	svc, _ := newTestService(t)

	texts := []string{"one", "two", "three"}
	prev := 0
	for _, text := range texts {
		item, err := svc.AddItem(text, nil)
		if err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
		if item.ID <= prev {
			t.Fatalf("ids must strictly increase: got %d after %d", item.ID, prev)
		}
		prev = item.ID
	}
	if len(svc.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(svc.Items()))
	}
}

func TestAddItemEmptyIsSilentNoop(t *testing.T) {
	svc, mp := newTestService(t)

	item, err := svc.AddItem("   ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatalf("expected no item for blank text")
	}
	if mp.itemSaves != 0 {
		t.Fatalf("blank add must not persist, saw %d saves", mp.itemSaves)
	}

	// The counter must not advance for a rejected add.
	next, err := svc.AddItem("real", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if next.ID != 1 {
		t.Fatalf("expected first real item to take id 1, got %d", next.ID)
	}
}

func TestAddItemTrimsText(t *testing.T) {
	svc, _ := newTestService(t)
	item, err := svc.AddItem("  buy milk  ", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Text != "buy milk" {
		t.Fatalf("expected trimmed text, got %q", item.Text)
	}
}

func TestToggleItemIdempotentWithWriteThrough(t *testing.T) {
	svc, mp := newTestService(t)
	item, _ := svc.AddItem("task", nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.ToggleItem(item.ID); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		// Persisted state must reflect the latest in-memory state
		// after every paired mutate+save.
		if mp.items.Items[0].Checked != item.Checked {
			t.Fatalf("persisted checked=%v, in-memory=%v", mp.items.Items[0].Checked, item.Checked)
		}
	}
	if item.Checked {
		t.Fatalf("double toggle must restore the original state")
	}
}

func TestToggleMissingIDIsSilent(t *testing.T) {
	svc, mp := newTestService(t)
	saves := mp.itemSaves

	changed, err := svc.ToggleItem(99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatalf("expected no-op for missing id")
	}
	if mp.itemSaves != saves {
		t.Fatalf("missing id must not persist")
	}
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newTestService(t)
	first, _ := svc.AddItem("keep", nil)
	second, _ := svc.AddItem("drop", nil)

	if changed, err := svc.DeleteItem(second.ID); err != nil || !changed {
		t.Fatalf("delete: changed=%v err=%v", changed, err)
	}
	if len(svc.Items()) != 1 || svc.Items()[0].ID != first.ID {
		t.Fatalf("unexpected items after delete: %+v", svc.Items())
	}

	if changed, err := svc.DeleteItem(second.ID); err != nil || changed {
		t.Fatalf("second delete must be a silent no-op")
	}
}

func TestSetNotesVerbatim(t *testing.T) {
	svc, _ := newTestService(t)
	item, _ := svc.AddItem("task", nil)

	if _, err := svc.SetNotes(item.ID, "  keep my spacing  "); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if item.Notes != "  keep my spacing  " {
		t.Fatalf("notes must not be trimmed, got %q", item.Notes)
	}

	if _, err := svc.SetNotes(item.ID, ""); err != nil {
		t.Fatalf("clear notes: %v", err)
	}
	if item.Notes != "" {
		t.Fatalf("expected cleared notes, got %q", item.Notes)
	}
}

func TestSetCategoryForItem(t *testing.T) {
	svc, _ := newTestService(t)
	item, _ := svc.AddItem("task", nil)
	cat, _ := svc.AddCategory("errands")

	if _, err := svc.SetCategoryForItem(item.ID, &cat.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if !item.InCategory(cat.ID) {
		t.Fatalf("expected item assigned to %d", cat.ID)
	}

	if _, err := svc.SetCategoryForItem(item.ID, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if item.CategoryID != nil {
		t.Fatalf("expected assignment cleared")
	}
}

func TestBulkAdd(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")

	created, err := svc.BulkAdd("Buy milk\n\nCall Bob\n   \nFinish report", &cat.ID)
	if err != nil {
		t.Fatalf("bulk add: %v", err)
	}
	if created != 3 {
		t.Fatalf("expected 3 items created, got %d", created)
	}

	want := []string{"Buy milk", "Call Bob", "Finish report"}
	items := svc.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, text := range want {
		if items[i].Text != text {
			t.Fatalf("position %d: expected %q, got %q", i, text, items[i].Text)
		}
		if !items[i].InCategory(cat.ID) {
			t.Fatalf("expected %q assigned to the chosen category", text)
		}
	}
}

func TestBulkAddAllBlankCreatesNothing(t *testing.T) {
	svc, mp := newTestService(t)
	saves := mp.itemSaves

	created, err := svc.BulkAdd("\n  \n\t\n", nil)
	if err != nil {
		t.Fatalf("bulk add: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected nothing created, got %d", created)
	}
	if mp.itemSaves != saves {
		t.Fatalf("blank bulk must not persist")
	}
}

func TestSetFilter(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")

	if err := svc.SetFilter("checked"); err != nil {
		t.Fatalf("status token: %v", err)
	}
	if svc.StatusFilter() != checklist.StatusChecked {
		t.Fatalf("expected checked filter, got %s", svc.StatusFilter())
	}

	if err := svc.SetFilter(string(checklist.FilterForCategory(cat.ID))); err != nil {
		t.Fatalf("category token: %v", err)
	}
	if id, ok := svc.CategoryFilter().CategoryID(); !ok || id != cat.ID {
		t.Fatalf("expected filter scoped to %d", cat.ID)
	}

	if err := svc.SetFilter("category-99"); err == nil {
		t.Fatalf("expected stale category filter to be rejected")
	}
	if err := svc.SetFilter("bogus"); err == nil {
		t.Fatalf("expected unknown token to be rejected")
	}
}

func TestVisibleThroughService(t *testing.T) {
	svc, _ := newTestService(t)
	cat, _ := svc.AddCategory("errands")

	a, _ := svc.AddItem("a", &cat.ID)
	svc.AddItem("b", &cat.ID)
	svc.AddItem("c", nil)
	svc.ToggleItem(a.ID)

	svc.SetStatusFilter(checklist.StatusChecked)
	if err := svc.SetCategoryFilter(checklist.FilterForCategory(cat.ID)); err != nil {
		t.Fatalf("set category filter: %v", err)
	}

	visible := svc.Visible()
	if len(visible) != 1 || visible[0].ID != a.ID {
		t.Fatalf("expected only the checked errand, got %+v", visible)
	}
}
