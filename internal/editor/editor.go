package editor

import "context"

// Region is a half-open range of rune offsets in a text. A and B may be in
// either order, as with a selection made backwards.
type Region struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (r Region) Empty() bool {
	return r.A == r.B
}

func (r Region) Begin() int {
	return min(r.A, r.B)
}

func (r Region) End() int {
	return max(r.A, r.B)
}

//go:generate mockgen -source=editor.go -destination=../mocks/editor/mock_editor.go -package=mock_editor

// TextSource is the text being edited and its current selection.
type TextSource interface {
	Selection() Region
	SetSelection(region Region)
	Substr(region Region) string
	// ExpandToWord returns the region of the word under region
	ExpandToWord(region Region) Region
	Replace(region Region, text string) error
}

// UserInteraction shows things to the user.
type UserInteraction interface {
	// ShowChoiceList returns the index of the chosen item, or -1 if the user cancelled.
	ShowChoiceList(ctx context.Context, items []string) (int, error)
	ShowPopup(ctx context.Context, html string) error
	ShowStatus(message string)
}
