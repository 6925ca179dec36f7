package document

// Format selects how initial content is written into a new document.
type Format string

const (
	// FormatMarkdown converts the content from Markdown into styled
	// paragraphs, headings and lists.
	FormatMarkdown Format = "markdown"
	// FormatRaw inserts the content verbatim.
	FormatRaw Format = "raw"
)

// IsValid returns true if the format is one of the defined constants.
func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatRaw:
		return true
	default:
		return false
	}
}

// OrDefault returns FormatMarkdown for the zero value and f otherwise.
func (f Format) OrDefault() Format {
	if f == "" {
		return FormatMarkdown
	}
	return f
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
