package checklist

import "strings"

// State is the single shared application state: both collections, both
// id counters, and the active filters. One owner constructs it and the
// item/category/bulk logic all operate on it by reference.
type State struct {
	Items          []*Item
	Categories     []*Category
	NextID         int
	NextCategoryID int
	StatusFilter   StatusFilter
	CategoryFilter CategoryFilter
}

// NewState returns an empty state with counters at 1 and both filters
// wide open.
func NewState() *State {
	return &State{
		NextID:         1,
		NextCategoryID: 1,
		StatusFilter:   StatusAll,
		CategoryFilter: CategoryAll,
	}
}

// FindItem returns the item with the given id, or (nil, false).
func (s *State) FindItem(id int) (*Item, bool) {
	for _, i := range s.Items {
		if i.ID == id {
			return i, true
		}
	}
	return nil, false
}

// FindCategory returns the category with the given id, or (nil, false).
func (s *State) FindCategory(id int) (*Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// CategoryByName returns the category matching name case-insensitively.
func (s *State) CategoryByName(name string) (*Category, bool) {
	for _, c := range s.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}
