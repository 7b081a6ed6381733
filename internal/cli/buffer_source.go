package cli

import (
	"fmt"
	"unicode"

	"github.com/at-ishikawa/fancyword/internal/editor"
)

// BufferSource is an in-memory text with a selection, addressed in runes.
type BufferSource struct {
	text      []rune
	selection editor.Region
}

func NewBufferSource(text string, selection editor.Region) *BufferSource {
	b := &BufferSource{text: []rune(text)}
	b.SetSelection(selection)
	return b
}

func (b *BufferSource) Text() string {
	return string(b.text)
}

func (b *BufferSource) Selection() editor.Region {
	return b.selection
}

func (b *BufferSource) SetSelection(region editor.Region) {
	b.selection = editor.Region{A: b.clamp(region.A), B: b.clamp(region.B)}
}

func (b *BufferSource) Substr(region editor.Region) string {
	return string(b.text[b.clamp(region.Begin()):b.clamp(region.End())])
}

// ExpandToWord returns the word touching the beginning of region, or region
// itself when there is none.
func (b *BufferSource) ExpandToWord(region editor.Region) editor.Region {
	begin := b.clamp(region.Begin())
	end := begin
	for begin > 0 && isWordRune(b.text[begin-1]) {
		begin--
	}
	for end < len(b.text) && isWordRune(b.text[end]) {
		end++
	}
	if begin == end {
		return region
	}
	return editor.Region{A: begin, B: end}
}

// Replace puts text in place of region and moves the cursor after it.
func (b *BufferSource) Replace(region editor.Region, text string) error {
	begin, end := region.Begin(), region.End()
	if begin < 0 || end > len(b.text) {
		return fmt.Errorf("region %d-%d is out of the text of length %d", begin, end, len(b.text))
	}

	replacement := []rune(text)
	updated := make([]rune, 0, len(b.text)-(end-begin)+len(replacement))
	updated = append(updated, b.text[:begin]...)
	updated = append(updated, replacement...)
	updated = append(updated, b.text[end:]...)
	b.text = updated

	cursor := begin + len(replacement)
	b.selection = editor.Region{A: cursor, B: cursor}
	return nil
}

func (b *BufferSource) clamp(offset int) int {
	return min(max(offset, 0), len(b.text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '-'
}
