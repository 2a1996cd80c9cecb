package store

import "checkli/pkg/checklist"

// Storage keys for the two persisted records. These are fixed names;
// each save fully replaces the prior record.
const (
	itemsKey      = "checklistItems"
	categoriesKey = "checklistCategories"
)

// ItemsRecord is the persisted shape of the item collection and its
// id counter.
type ItemsRecord struct {
	Items  []*checklist.Item `json:"items"`
	NextID int               `json:"nextId"`
}

// CategoriesRecord is the persisted shape of the category collection
// and its id counter.
type CategoriesRecord struct {
	Categories     []*checklist.Category `json:"categories"`
	NextCategoryID int                   `json:"nextCategoryId"`
}

// EmptyItems is the fallback when the items record is missing or
// unreadable.
func EmptyItems() ItemsRecord {
	return ItemsRecord{Items: []*checklist.Item{}, NextID: 1}
}

// EmptyCategories is the fallback when the categories record is
// missing or unreadable.
func EmptyCategories() CategoriesRecord {
	return CategoriesRecord{Categories: []*checklist.Category{}, NextCategoryID: 1}
}

func (r ItemsRecord) normalized() ItemsRecord {
	if r.Items == nil {
		r.Items = []*checklist.Item{}
	}
	if r.NextID < 1 {
		r.NextID = 1
	}
	return r
}

func (r CategoriesRecord) normalized() CategoriesRecord {
	if r.Categories == nil {
		r.Categories = []*checklist.Category{}
	}
	if r.NextCategoryID < 1 {
		r.NextCategoryID = 1
	}
	return r
}
