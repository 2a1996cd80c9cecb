package app

import (
	"fmt"
	"strconv"
	"strings"

	"checkli/pkg/checklist"
)

// ConfirmFunc decides whether a category still referenced by items may
// be deleted. It receives the category and the number of referencing
// items; returning false aborts the deletion with no state change.
type ConfirmFunc func(c *checklist.Category, refs int) bool

// Categories returns the category collection in insertion order.
func (s *Service) Categories() []*checklist.Category {
	return s.state.Categories
}

// FindCategory looks a category up by id.
func (s *Service) FindCategory(id int) (*checklist.Category, bool) {
	return s.state.FindCategory(id)
}

// FindCategoryByName looks a category up by case-insensitive name.
func (s *Service) FindCategoryByName(name string) (*checklist.Category, bool) {
	return s.state.CategoryByName(name)
}

// AddCategory creates a category from trimmed name. Empty name is a
// silent no-op returning (nil, nil); a case-insensitive duplicate is
// rejected with ErrDuplicateCategory and no state change. The color is
// the fixed palette cycled by the current category count.
func (s *Service) AddCategory(name string) (*checklist.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	st := s.state
	if _, ok := st.CategoryByName(name); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	c := checklist.NewCategory(st.NextCategoryID, name, checklist.ColorAt(len(st.Categories)))
	st.NextCategoryID++
	st.Categories = append(st.Categories, c)
	if err := s.saveCategories(); err != nil {
		return nil, err
	}
	return c, nil
}

// ResolveCategory maps a user-supplied category token (numeric id or
// name) to a category id. An empty token means unassigned.
func (s *Service) ResolveCategory(token string) (*int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	if id, err := strconv.Atoi(token); err == nil {
		if _, ok := s.state.FindCategory(id); ok {
			return &id, nil
		}
		return nil, fmt.Errorf("app: no category with id %d", id)
	}
	if c, ok := s.state.CategoryByName(token); ok {
		id := c.ID
		return &id, nil
	}
	return nil, fmt.Errorf("app: no category named %q", token)
}

// DeleteCategory removes a category. When items still reference it the
// confirm callback decides; declining (or a nil callback) aborts with
// no change. On proceed every referencing item loses its assignment, a
// filter scoped to this category resets to "all", and both records are
// persisted. A missing id is a benign no-op.
func (s *Service) DeleteCategory(id int, confirm ConfirmFunc) (bool, error) {
	st := s.state
	cat, ok := st.FindCategory(id)
	if !ok {
		return false, nil
	}

	refs := 0
	for _, item := range st.Items {
		if item.InCategory(id) {
			refs++
		}
	}
	if refs > 0 && (confirm == nil || !confirm(cat, refs)) {
		return false, nil
	}

	kept := make([]*checklist.Category, 0, len(st.Categories)-1)
	for _, c := range st.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	st.Categories = kept

	for _, item := range st.Items {
		if item.InCategory(id) {
			item.CategoryID = nil
		}
	}

	if scoped, ok := st.CategoryFilter.CategoryID(); ok && scoped == id {
		st.CategoryFilter = checklist.CategoryAll
	}

	if err := s.saveCategories(); err != nil {
		return false, err
	}
	if err := s.saveItems(); err != nil {
		return false, err
	}
	return true, nil
}
