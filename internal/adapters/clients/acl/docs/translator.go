package docs

import (
	"strings"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

// MonospaceFontFamily is the font applied to inline code and code blocks.
const MonospaceFontFamily = "Courier New"

// ToBatchUpdateRequest converts an ordered domain batch to the wire body.
// Requests with no operation set are dropped.
func ToBatchUpdateRequest(reqs []document.Request) BatchUpdateRequestDTO {
	out := make([]RequestDTO, 0, len(reqs))
	for i := range reqs {
		if dto, ok := toRequestDTO(&reqs[i]); ok {
			out = append(out, dto)
		}
	}
	return BatchUpdateRequestDTO{Requests: out}
}

func toRequestDTO(r *document.Request) (RequestDTO, bool) {
	switch {
	case r.InsertText != nil:
		return RequestDTO{InsertText: &InsertTextDTO{
			Text:     r.InsertText.Text,
			Location: LocationDTO{Index: r.InsertText.Location.Index},
		}}, true

	case r.UpdateParagraphStyle != nil:
		return RequestDTO{UpdateParagraphStyle: &UpdateParagraphStyleDTO{
			Range:          toRangeDTO(r.UpdateParagraphStyle.Range),
			ParagraphStyle: ParagraphStyleDTO{NamedStyleType: string(r.UpdateParagraphStyle.NamedStyle)},
			Fields:         "namedStyleType",
		}}, true

	case r.UpdateTextStyle != nil:
		if r.UpdateTextStyle.Style.IsZero() {
			return RequestDTO{}, false
		}
		style, fields := toTextStyleDTO(r.UpdateTextStyle.Style)
		return RequestDTO{UpdateTextStyle: &UpdateTextStyleDTO{
			Range:     toRangeDTO(r.UpdateTextStyle.Range),
			TextStyle: style,
			Fields:    fields,
		}}, true

	case r.CreateParagraphBullets != nil:
		return RequestDTO{CreateParagraphBullets: &CreateParagraphBulletsDTO{
			Range:        toRangeDTO(r.CreateParagraphBullets.Range),
			BulletPreset: string(r.CreateParagraphBullets.Preset),
		}}, true

	default:
		return RequestDTO{}, false
	}
}

func toRangeDTO(r document.Range) RangeDTO {
	return RangeDTO{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
}

// toTextStyleDTO returns the wire style and the field mask naming exactly the
// properties that were set.
func toTextStyleDTO(s document.TextStyle) (TextStyleDTO, string) {
	var (
		dto    TextStyleDTO
		fields []string
	)
	if s.Bold {
		dto.Bold = true
		fields = append(fields, "bold")
	}
	if s.Italic {
		dto.Italic = true
		fields = append(fields, "italic")
	}
	if s.Strikethrough {
		dto.Strikethrough = true
		fields = append(fields, "strikethrough")
	}
	if s.Monospace {
		dto.WeightedFontFamily = &WeightedFontFamilyDTO{FontFamily: MonospaceFontFamily}
		fields = append(fields, "weightedFontFamily")
	}
	if s.LinkURL != "" {
		dto.Link = &LinkDTO{URL: s.LinkURL}
		fields = append(fields, "link")
	}
	return dto, strings.Join(fields, ",")
}
