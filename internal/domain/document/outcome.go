package document

import (
	"fmt"
	"strings"
)

// MarkdownOptions controls how Markdown is translated into mutation requests.
type MarkdownOptions struct {
	// StartIndex is where the translated content is inserted.
	StartIndex int
	// FirstHeadingAsTitle styles the first top-level heading as the
	// document title instead of a body heading.
	FirstHeadingAsTitle bool
}

// InsertionOutcome summarizes what a Markdown translation produced. It is
// used for diagnostics only and never changes the creation result.
type InsertionOutcome struct {
	Paragraphs int
	Headings   int
	ListItems  int
	CodeBlocks int
	Links      int
	TitleSet   bool
	Warnings   []string
}

// Summary renders the outcome as a single human-readable line.
func (o InsertionOutcome) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d paragraphs, %d headings, %d list items, %d code blocks, %d links",
		o.Paragraphs, o.Headings, o.ListItems, o.CodeBlocks, o.Links)
	if o.TitleSet {
		b.WriteString(", title set")
	}
	if len(o.Warnings) > 0 {
		fmt.Fprintf(&b, "; %d warnings: %s", len(o.Warnings), strings.Join(o.Warnings, "; "))
	}
	return b.String()
}

// Translation is the result of translating Markdown: the batch to apply and
// a summary of what it contains.
type Translation struct {
	Requests []Request
	Outcome  InsertionOutcome
}
