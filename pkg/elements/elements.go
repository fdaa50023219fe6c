// Package elements answers text-selection questions about editable text fields.
package elements

//go:generate mockgen -source=elements.go -destination=mock_textarea_test.go -package=elements

// TextArea is an editable text control with a selection. Offsets are in runes.
type TextArea interface {
	Value() string
	SelectionStart() int
	SelectionEnd() int
}

// Selection is where the selected text starts and what it contains.
type Selection struct {
	Start int    `json:"start"`
	Text  string `json:"text"`
}

// End returns the rune offset just past the selected text.
func (s Selection) End() int {
	return s.Start + len([]rune(s.Text))
}

// Field is a plain TextArea backed by a string.
type Field struct {
	Text       string
	Start, End int
}

func (f Field) Value() string       { return f.Text }
func (f Field) SelectionStart() int { return f.Start }
func (f Field) SelectionEnd() int   { return f.End }

// SelectionPosition returns the caret position and the selected text of target.
// Offsets outside the text are clamped, and an end before the start selects nothing.
func SelectionPosition(target TextArea) Selection {
	runes := []rune(target.Value())
	start := clamp(target.SelectionStart(), 0, len(runes))
	end := clamp(target.SelectionEnd(), start, len(runes))
	return Selection{Start: start, Text: string(runes[start:end])}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
