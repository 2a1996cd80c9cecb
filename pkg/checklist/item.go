package checklist

import "time"

// Item is a single checklist entry.
type Item struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	Checked    bool      `json:"checked"`
	CategoryID *int      `json:"categoryId,omitempty"`
	Notes      string    `json:"notes"`
	CreatedAt  Timestamp `json:"createdAt"`
}

// NewItem builds an unchecked item stamped with the current time. The
// caller owns id assignment.
func NewItem(id int, text string, categoryID *int) *Item {
	return &Item{
		ID:         id,
		Text:       text,
		CategoryID: categoryID,
		CreatedAt:  Timestamp{Time: time.Now()},
	}
}

// Toggle flips the completion state.
func (i *Item) Toggle() {
	i.Checked = !i.Checked
}

// InCategory reports whether the item is assigned to the given category.
func (i *Item) InCategory(categoryID int) bool {
	return i.CategoryID != nil && *i.CategoryID == categoryID
}
