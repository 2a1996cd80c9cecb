package app

import (
	"context"
	"errors"
	"strings"

	"checkli/pkg/checklist"
	"checkli/pkg/store"
)

// Service provides high-level operations for items and categories. It
// owns the shared checklist state and wraps persistence so UIs and CLIs
// can share logic. Every mutation writes the affected record through
// before returning.
type Service struct {
	Persistence store.Persistence

	state *checklist.State
}

// ErrDuplicateCategory signals a case-insensitive category name clash.
var ErrDuplicateCategory = errors.New("app: category already exists")

// Load constructs a Service and reads both persisted records. Corrupt
// or missing records come back empty from the store, so Load always
// yields a usable state.
func Load(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Service{Persistence: p, state: checklist.NewState()}
	s.Reload(ctx)
	return s, nil
}

// Reload re-reads both records, keeping the active filters.
func (s *Service) Reload(ctx context.Context) {
	items := s.Persistence.LoadItems(ctx)
	cats := s.Persistence.LoadCategories(ctx)
	s.state.Items = items.Items
	s.state.NextID = items.NextID
	s.state.Categories = cats.Categories
	s.state.NextCategoryID = cats.NextCategoryID
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Persistence.Watch(ctx)
}

// Items returns the full item collection in insertion order.
func (s *Service) Items() []*checklist.Item {
	return s.state.Items
}

// FindItem looks an item up by id.
func (s *Service) FindItem(id int) (*checklist.Item, bool) {
	return s.state.FindItem(id)
}

// AddItem creates an item from trimmed text. Empty text is a silent
// no-op returning (nil, nil). The id counter only advances when an item
// is actually created.
func (s *Service) AddItem(text string, categoryID *int) (*checklist.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	st := s.state
	item := checklist.NewItem(st.NextID, text, categoryID)
	st.NextID++
	st.Items = append(st.Items, item)
	if err := s.saveItems(); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleItem flips the checked state of the item with the given id.
// A missing id is a benign no-op.
func (s *Service) ToggleItem(id int) (bool, error) {
	item, ok := s.state.FindItem(id)
	if !ok {
		return false, nil
	}
	item.Toggle()
	if err := s.saveItems(); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteItem removes the item with the given id. A missing id is a
// benign no-op.
func (s *Service) DeleteItem(id int) (bool, error) {
	st := s.state
	for idx, item := range st.Items {
		if item.ID == id {
			st.Items = append(st.Items[:idx], st.Items[idx+1:]...)
			if err := s.saveItems(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SetNotes stores the notes text verbatim; callers that want "cancel"
// semantics simply never call this. A missing id is a benign no-op.
func (s *Service) SetNotes(id int, notes string) (bool, error) {
	item, ok := s.state.FindItem(id)
	if !ok {
		return false, nil
	}
	item.Notes = notes
	if err := s.saveItems(); err != nil {
		return false, err
	}
	return true, nil
}

// SetCategoryForItem assigns the item to a category, or clears the
// assignment when categoryID is nil. A missing item id is a benign
// no-op.
func (s *Service) SetCategoryForItem(id int, categoryID *int) (bool, error) {
	item, ok := s.state.FindItem(id)
	if !ok {
		return false, nil
	}
	item.CategoryID = categoryID
	if err := s.saveItems(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) saveItems() error {
	return s.Persistence.SaveItems(store.ItemsRecord{
		Items:  s.state.Items,
		NextID: s.state.NextID,
	})
}

func (s *Service) saveCategories() error {
	return s.Persistence.SaveCategories(store.CategoriesRecord{
		Categories:     s.state.Categories,
		NextCategoryID: s.state.NextCategoryID,
	})
}
