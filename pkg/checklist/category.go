package checklist

import "time"

// Category is a user-defined named tag with a display color. Categories
// are immutable after creation except for deletion.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt Timestamp `json:"createdAt"`
}

// NewCategory builds a category stamped with the current time. The
// caller owns id and color assignment.
func NewCategory(id int, name, color string) *Category {
	return &Category{
		ID:        id,
		Name:      name,
		Color:     color,
		CreatedAt: Timestamp{Time: time.Now()},
	}
}

// palette holds the fixed category color cycle. Order matters: color
// assignment is palette[count mod len(palette)] so output stays
// reproducible.
var palette = []string{
	"#007bff", "#28a745", "#ffc107", "#dc3545",
	"#6f42c1", "#fd7e14", "#20c997", "#e83e8c",
	"#17a2b8", "#6c757d", "#495057", "#6610f2",
}

// ColorAt returns the palette color for the nth category created.
func ColorAt(index int) string {
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}

// PaletteSize reports how many colors the fixed palette cycles through.
func PaletteSize() int {
	return len(palette)
}
