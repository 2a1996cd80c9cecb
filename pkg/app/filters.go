package app

import (
	"fmt"

	"checkli/pkg/checklist"
)

// StatusFilter returns the active status filter.
func (s *Service) StatusFilter() checklist.StatusFilter {
	return s.state.StatusFilter
}

// CategoryFilter returns the active category filter.
func (s *Service) CategoryFilter() checklist.CategoryFilter {
	return s.state.CategoryFilter
}

// SetStatusFilter selects among all/checked/unchecked.
func (s *Service) SetStatusFilter(f checklist.StatusFilter) {
	s.state.StatusFilter = f
}

// SetCategoryFilter scopes the view to one category, or CategoryAll.
// Filters scoped to a nonexistent category are rejected.
func (s *Service) SetCategoryFilter(f checklist.CategoryFilter) error {
	if id, ok := f.CategoryID(); ok {
		if _, found := s.state.FindCategory(id); !found {
			return fmt.Errorf("app: no category with id %d", id)
		}
	}
	s.state.CategoryFilter = f
	return nil
}

// SetFilter routes a raw filter token: status tokens select the status
// filter, "category-{id}" tokens select the category filter. Unknown
// tokens are rejected with no state change.
func (s *Service) SetFilter(token string) error {
	if sf, err := checklist.ParseStatusFilter(token); err == nil {
		s.SetStatusFilter(sf)
		return nil
	}
	cf, err := checklist.ParseCategoryFilter(token)
	if err != nil {
		return err
	}
	return s.SetCategoryFilter(cf)
}

// Visible derives the filtered view of items under the active filters.
func (s *Service) Visible() []*checklist.Item {
	return checklist.Visible(s.state.Items, s.state.StatusFilter, s.state.CategoryFilter)
}

// Counts recomputes the display counts from scratch.
func (s *Service) Counts() checklist.Counts {
	return checklist.CountItems(s.state.Items)
}
