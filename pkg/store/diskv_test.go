package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"checkli/pkg/checklist"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string { return c.path }

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p, dir
}

func TestMissingRecordsComeBackEmpty(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	items := p.LoadItems(ctx)
	if len(items.Items) != 0 || items.NextID != 1 {
		t.Fatalf("expected empty items record, got %+v", items)
	}
	cats := p.LoadCategories(ctx)
	if len(cats.Categories) != 0 || cats.NextCategoryID != 1 {
		t.Fatalf("expected empty categories record, got %+v", cats)
	}
}

func TestItemsRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	catID := 2
	created := checklist.Timestamp{Time: time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)}
	rec := ItemsRecord{
		Items: []*checklist.Item{
			{ID: 1, Text: "buy milk", Checked: true, CreatedAt: created},
			{ID: 2, Text: "call bob", CategoryID: &catID, Notes: "after lunch", CreatedAt: created},
		},
		NextID: 3,
	}
	if err := p.SaveItems(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadItems(ctx)
	if got.NextID != 3 || len(got.Items) != 2 {
		t.Fatalf("unexpected record: %+v", got)
	}
	first, second := got.Items[0], got.Items[1]
	if first.ID != 1 || first.Text != "buy milk" || !first.Checked {
		t.Fatalf("first item mismatch: %+v", first)
	}
	if !first.CreatedAt.Equal(created.Time) {
		t.Fatalf("timestamp mismatch: %v", first.CreatedAt)
	}
	if second.CategoryID == nil || *second.CategoryID != catID {
		t.Fatalf("second item lost its category: %+v", second)
	}
	if second.Notes != "after lunch" {
		t.Fatalf("second item lost its notes: %+v", second)
	}
}

func TestCategoriesRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	created := checklist.Timestamp{Time: time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)}
	rec := CategoriesRecord{
		Categories: []*checklist.Category{
			{ID: 1, Name: "errands", Color: checklist.ColorAt(0), CreatedAt: created},
		},
		NextCategoryID: 2,
	}
	if err := p.SaveCategories(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadCategories(ctx)
	if got.NextCategoryID != 2 || len(got.Categories) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
	c := got.Categories[0]
	if c.ID != 1 || c.Name != "errands" || c.Color != checklist.ColorAt(0) {
		t.Fatalf("category mismatch: %+v", c)
	}
}

func TestCorruptRecordFallsBackEmpty(t *testing.T) {
	p, dir := newTestStore(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, itemsKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, categoriesKey), []byte("[broken"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	items := p.LoadItems(ctx)
	if len(items.Items) != 0 || items.NextID != 1 {
		t.Fatalf("corrupt items must fall back empty, got %+v", items)
	}
	cats := p.LoadCategories(ctx)
	if len(cats.Categories) != 0 || cats.NextCategoryID != 1 {
		t.Fatalf("corrupt categories must fall back empty, got %+v", cats)
	}
}

func TestCountersNormalizedOnLoad(t *testing.T) {
	p, dir := newTestStore(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, itemsKey), []byte(`{"items":null,"nextId":0}`), 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}

	items := p.LoadItems(ctx)
	if items.Items == nil {
		t.Fatalf("items slice must be non-nil")
	}
	if items.NextID != 1 {
		t.Fatalf("counter must normalize to 1, got %d", items.NextID)
	}
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	if err := p.SaveItems(ItemsRecord{
		Items:  []*checklist.Item{{ID: 1, Text: "old"}, {ID: 2, Text: "older"}},
		NextID: 3,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveItems(ItemsRecord{
		Items:  []*checklist.Item{{ID: 5, Text: "new"}},
		NextID: 6,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadItems(ctx)
	if len(got.Items) != 1 || got.Items[0].ID != 5 || got.NextID != 6 {
		t.Fatalf("save must replace the prior record, got %+v", got)
	}
}
