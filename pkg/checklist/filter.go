package checklist

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusFilter narrows the visible list by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusChecked   StatusFilter = "checked"
	StatusUnchecked StatusFilter = "unchecked"
)

// ParseStatusFilter validates a status filter token.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case StatusAll, StatusChecked, StatusUnchecked:
		return StatusFilter(s), nil
	}
	return "", fmt.Errorf("checklist: unknown status filter %q", s)
}

// Matches reports whether the item passes the status filter.
func (f StatusFilter) Matches(i *Item) bool {
	switch f {
	case StatusChecked:
		return i.Checked
	case StatusUnchecked:
		return !i.Checked
	}
	return true
}

// CategoryFilter is either "all" or "category-{id}".
type CategoryFilter string

const CategoryAll CategoryFilter = "all"

const categoryFilterPrefix = "category-"

// FilterForCategory builds the filter token scoped to one category.
func FilterForCategory(id int) CategoryFilter {
	return CategoryFilter(categoryFilterPrefix + strconv.Itoa(id))
}

// ParseCategoryFilter validates a category filter token.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if s == string(CategoryAll) {
		return CategoryAll, nil
	}
	if raw, ok := strings.CutPrefix(s, categoryFilterPrefix); ok {
		if _, err := strconv.Atoi(raw); err == nil {
			return CategoryFilter(s), nil
		}
	}
	return "", fmt.Errorf("checklist: unknown category filter %q", s)
}

// CategoryID extracts the scoped category id; ok is false for "all" or
// a malformed token.
func (f CategoryFilter) CategoryID() (int, bool) {
	raw, ok := strings.CutPrefix(string(f), categoryFilterPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Matches reports whether the item passes the category filter.
func (f CategoryFilter) Matches(i *Item) bool {
	id, ok := f.CategoryID()
	if !ok {
		return true
	}
	return i.InCategory(id)
}

// Visible derives the filtered view of items. Filters compose by
// conjunction and insertion order is preserved; the result is always a
// fresh slice so callers cannot mutate the backing collection order.
func Visible(items []*Item, status StatusFilter, category CategoryFilter) []*Item {
	out := make([]*Item, 0, len(items))
	for _, i := range items {
		if status.Matches(i) && category.Matches(i) {
			out = append(out, i)
		}
	}
	return out
}

// Counts summarizes items for display.
type Counts struct {
	Total       int
	Checked     int
	Unchecked   int
	PerCategory map[int]int
}

// CountItems recomputes all display counts from scratch.
func CountItems(items []*Item) Counts {
	c := Counts{PerCategory: make(map[int]int)}
	for _, i := range items {
		c.Total++
		if i.Checked {
			c.Checked++
		} else {
			c.Unchecked++
		}
		if i.CategoryID != nil {
			c.PerCategory[*i.CategoryID]++
		}
	}
	return c
}
