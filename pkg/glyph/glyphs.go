package glyph

import "fmt"

// Glyph pairs a display symbol with its meaning for the key legend.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs lists the symbols the printers use for checklist rows.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     " ",
			Symbol:  "○",
			Meaning: "unchecked item",
		}, {
			Key:     "x",
			Symbol:  "✔",
			Meaning: "checked item",
		}, {
			Key:     "n",
			Symbol:  "≡",
			Meaning: "item has notes",
		}, {
			Key:     "c",
			Symbol:  "▍",
			Meaning: "category color bar",
		},
	}
}

// Status is the completion state of an item.
type Status int

const (
	Unchecked Status = iota
	Checked
	HasNotes
	CategoryBar
)

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().Symbol
}

// ForChecked maps a completion flag to its status glyph.
func ForChecked(checked bool) Status {
	if checked {
		return Checked
	}
	return Unchecked
}
