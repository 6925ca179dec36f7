package document

// Request is a single content-mutation operation applied to a document.
// Exactly one field is set. An ordered []Request forms one batch update.
type Request struct {
	InsertText             *InsertText
	UpdateParagraphStyle   *UpdateParagraphStyle
	UpdateTextStyle        *UpdateTextStyle
	CreateParagraphBullets *CreateParagraphBullets
}

// Location is a position in the document body, measured in UTF-16 code units.
type Location struct {
	Index int
}

// Range is a half-open [StartIndex, EndIndex) span of the document body.
type Range struct {
	StartIndex int
	EndIndex   int
}

// InsertText inserts Text at Location.
type InsertText struct {
	Location Location
	Text     string
}

// NamedStyle is a paragraph style understood by the document service.
type NamedStyle string

const (
	StyleNormalText NamedStyle = "NORMAL_TEXT"
	StyleTitle      NamedStyle = "TITLE"
	StyleHeading1   NamedStyle = "HEADING_1"
	StyleHeading2   NamedStyle = "HEADING_2"
	StyleHeading3   NamedStyle = "HEADING_3"
	StyleHeading4   NamedStyle = "HEADING_4"
	StyleHeading5   NamedStyle = "HEADING_5"
	StyleHeading6   NamedStyle = "HEADING_6"
)

// HeadingStyle returns the named style for a heading level, clamped to 1..6.
func HeadingStyle(level int) NamedStyle {
	switch {
	case level <= 1:
		return StyleHeading1
	case level == 2:
		return StyleHeading2
	case level == 3:
		return StyleHeading3
	case level == 4:
		return StyleHeading4
	case level == 5:
		return StyleHeading5
	default:
		return StyleHeading6
	}
}

// UpdateParagraphStyle sets the named style of every paragraph overlapping Range.
type UpdateParagraphStyle struct {
	Range      Range
	NamedStyle NamedStyle
}

// TextStyle lists the character styles to apply. Only non-zero fields are
// sent, and the field mask is derived from them.
type TextStyle struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Monospace     bool
	LinkURL       string
}

// IsZero reports whether no style is set.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

// UpdateTextStyle applies Style to the characters in Range.
type UpdateTextStyle struct {
	Range Range
	Style TextStyle
}

// BulletPreset names a list glyph preset understood by the document service.
type BulletPreset string

const (
	BulletDisc     BulletPreset = "BULLET_DISC_CIRCLE_SQUARE"
	BulletNumbered BulletPreset = "NUMBERED_DECIMAL_ALPHA_ROMAN"
	BulletCheckbox BulletPreset = "BULLET_CHECKBOX"
)

// CreateParagraphBullets turns every paragraph overlapping Range into a list item.
type CreateParagraphBullets struct {
	Range  Range
	Preset BulletPreset
}

// NewInsertText returns a batch holding a single verbatim insertion at index.
func NewInsertText(index int, text string) []Request {
	return []Request{{InsertText: &InsertText{Location: Location{Index: index}, Text: text}}}
}
