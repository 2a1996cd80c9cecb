package app

import "checkli/pkg/checklist"

// BulkAdd creates one item per non-empty line of raw pasted text, all
// assigned to the same optional category. Returns how many items were
// created; zero usable lines creates nothing.
func (s *Service) BulkAdd(raw string, categoryID *int) (int, error) {
	lines := checklist.SplitBulkLines(raw)
	if len(lines) == 0 {
		return 0, nil
	}
	created := 0
	for _, line := range lines {
		if _, err := s.AddItem(line, categoryID); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
