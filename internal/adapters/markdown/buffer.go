package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

// buffer accumulates the text of one insertion and the style ranges that
// refer to it. Positions are absolute document indices in UTF-16 code units.
type buffer struct {
	text  strings.Builder
	start int
	pos   int

	paragraphStyles []document.Request
	textStyles      []document.Request
	bullets         []document.Request
}

func newBuffer(start int) *buffer {
	return &buffer{start: start, pos: start}
}

func (b *buffer) write(s string) {
	b.text.WriteString(s)
	b.pos += utf16Len(s)
}

// endsParagraph reports whether the buffer is empty or already ends with a
// paragraph break.
func (b *buffer) endsParagraph() bool {
	s := b.text.String()
	return s == "" || strings.HasSuffix(s, "\n")
}

func (b *buffer) newline() {
	b.write("\n")
}

func (b *buffer) paragraphStyle(start, end int, style document.NamedStyle) {
	if end <= start {
		return
	}
	b.paragraphStyles = append(b.paragraphStyles, document.Request{
		UpdateParagraphStyle: &document.UpdateParagraphStyle{
			Range:      document.Range{StartIndex: start, EndIndex: end},
			NamedStyle: style,
		},
	})
}

func (b *buffer) textStyle(start, end int, style document.TextStyle) {
	if end <= start || style.IsZero() {
		return
	}
	b.textStyles = append(b.textStyles, document.Request{
		UpdateTextStyle: &document.UpdateTextStyle{
			Range: document.Range{StartIndex: start, EndIndex: end},
			Style: style,
		},
	})
}

func (b *buffer) bullet(start, end int, preset document.BulletPreset) {
	if end <= start {
		return
	}
	b.bullets = append(b.bullets, document.Request{
		CreateParagraphBullets: &document.CreateParagraphBullets{
			Range:  document.Range{StartIndex: start, EndIndex: end},
			Preset: preset,
		},
	})
}

// requests assembles the batch. The trailing paragraph break is dropped
// because the document body already ends with one, and ranges are clamped
// to the inserted text.
//
// Bullets go last and in reverse document order: creating bullets strips the
// leading tabs that encode nesting, which shifts every later index.
func (b *buffer) requests() []document.Request {
	text := strings.TrimSuffix(b.text.String(), "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	end := b.start + utf16Len(text)

	reqs := make([]document.Request, 0, 1+len(b.paragraphStyles)+len(b.textStyles)+len(b.bullets))
	reqs = append(reqs, document.NewInsertText(b.start, text)...)

	for _, r := range b.paragraphStyles {
		if clampRange(&r.UpdateParagraphStyle.Range, end) {
			reqs = append(reqs, r)
		}
	}
	for _, r := range b.textStyles {
		if clampRange(&r.UpdateTextStyle.Range, end) {
			reqs = append(reqs, r)
		}
	}
	for i := len(b.bullets) - 1; i >= 0; i-- {
		r := b.bullets[i]
		if clampRange(&r.CreateParagraphBullets.Range, end) {
			reqs = append(reqs, r)
		}
	}

	return reqs
}

// clampRange trims r to end and reports whether anything is left.
func clampRange(r *document.Range, end int) bool {
	if r.EndIndex > end {
		r.EndIndex = end
	}
	return r.EndIndex > r.StartIndex
}

// utf16Len returns the length of s in UTF-16 code units, the unit the
// document service indexes by.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 && r <= utf8.MaxRune {
			n += 2
		} else {
			n++
		}
	}
	return n
}
