// Package markdown converts Markdown into document content-mutation batches.
// It parses CommonMark with the GFM extensions via goldmark and walks the
// syntax tree, building one text insertion followed by the paragraph, text
// and bullet styling that reproduces the Markdown structure.
package markdown

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

var _ ports.MarkdownTranslator = (*Translator)(nil)

// Translator implements [ports.MarkdownTranslator]. It is stateless and safe
// for concurrent use.
type Translator struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// NewTranslator builds a Translator with the GFM extension set
// (tables, strikethrough, linkify, task lists). A nil logger discards output.
func NewTranslator(logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Translator{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		logger: logger,
	}
}

// Translate converts markdown into an ordered batch starting at
// opts.StartIndex. Whitespace-only input yields an empty batch. A panic
// while walking the tree is returned as an error.
func (t *Translator) Translate(markdown string, opts document.MarkdownOptions) (tr *document.Translation, err error) {
	if opts.StartIndex < document.BodyStartIndex {
		return nil, fmt.Errorf("markdown: start index must be >= %d, got %d", document.BodyStartIndex, opts.StartIndex)
	}

	defer func() {
		if r := recover(); r != nil {
			tr = nil
			err = fmt.Errorf("markdown: translation aborted: %v", r)
		}
	}()

	source := []byte(markdown)
	root := t.md.Parser().Parse(text.NewReader(source))

	w := &walker{
		source: source,
		buf:    newBuffer(opts.StartIndex),
		opts:   opts,
	}
	w.blocks(root)

	reqs := w.buf.requests()
	if len(reqs) == 0 {
		w.outcome = document.InsertionOutcome{Warnings: w.outcome.Warnings}
	}

	t.logger.Debug("markdown translated",
		slog.Int("requests", len(reqs)),
		slog.String("outcome", w.outcome.Summary()),
	)

	return &document.Translation{Requests: reqs, Outcome: w.outcome}, nil
}

// walker holds the state of one translation.
type walker struct {
	source  []byte
	buf     *buffer
	opts    document.MarkdownOptions
	outcome document.InsertionOutcome

	listDepth int
	hasTask   bool
	inCode    bool
}

// blocks translates the block children of n.
func (w *walker) blocks(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.block(c)
	}
}

func (w *walker) block(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		w.heading(node)

	case *ast.Paragraph, *ast.TextBlock:
		w.paragraph(n)

	case *ast.List:
		w.list(node)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.codeBlock(n)

	case *ast.Blockquote:
		w.blocks(node)

	case *ast.ThematicBreak:
		w.warn("horizontal rule skipped")

	case *ast.HTMLBlock:
		w.warn("raw HTML block skipped")

	case *extast.Table:
		w.warn(fmt.Sprintf("table with %d rows skipped", countRows(node)))

	default:
		w.blocks(n)
	}
}

func (w *walker) heading(h *ast.Heading) {
	start := w.buf.pos
	w.inlines(h)
	end := w.buf.pos
	w.buf.newline()

	style := document.HeadingStyle(h.Level)
	if h.Level == 1 && w.opts.FirstHeadingAsTitle && !w.outcome.TitleSet {
		style = document.StyleTitle
		w.outcome.TitleSet = true
	}
	w.buf.paragraphStyle(start, end+1, style)
	w.outcome.Headings++
}

// itemIndent is the tab prefix of a list item paragraph at the current
// nesting level. Bullet creation turns the tabs into nesting.
func (w *walker) itemIndent() string {
	if w.listDepth < 2 {
		return ""
	}
	return strings.Repeat("\t", w.listDepth-1)
}

// paragraph emits inline content as one document paragraph. Inside a list
// the paragraph is prefixed with one tab per nesting level.
func (w *walker) paragraph(n ast.Node) {
	w.buf.write(w.itemIndent())
	w.inlines(n)
	w.buf.newline()
	if w.listDepth == 0 {
		w.outcome.Paragraphs++
	}
}

func (w *walker) list(l *ast.List) {
	top := w.listDepth == 0
	if top {
		w.hasTask = false
	}
	start := w.buf.pos

	w.listDepth++
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		before := w.buf.pos
		w.blocks(item)
		if w.buf.pos == before {
			// Empty item still needs its own bullet paragraph.
			w.buf.write(w.itemIndent())
			w.buf.newline()
		}
		w.outcome.ListItems++
	}
	w.listDepth--

	if !top {
		return
	}

	preset := document.BulletDisc
	switch {
	case w.hasTask:
		preset = document.BulletCheckbox
	case l.IsOrdered():
		preset = document.BulletNumbered
	}
	w.buf.bullet(start, w.buf.pos, preset)
}

// codeBlock emits each source line verbatim in a monospace run. Inside a
// list item every line is indented one level below the item so the code
// stays part of it instead of becoming a sibling bullet.
func (w *walker) codeBlock(n ast.Node) {
	var sb strings.Builder
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(w.source))
	}
	code := strings.TrimRight(sb.String(), "\n")
	if code == "" {
		return
	}

	if !w.buf.endsParagraph() {
		w.buf.newline()
	}
	if w.listDepth > 0 {
		indent := strings.Repeat("\t", w.listDepth)
		w.buf.write(indent)
		code = strings.ReplaceAll(code, "\n", "\n"+indent)
	}
	start := w.buf.pos
	w.buf.write(code)
	w.buf.textStyle(start, w.buf.pos, document.TextStyle{Monospace: true})
	w.buf.newline()
	w.outcome.CodeBlocks++
}

// inlines translates the inline children of n.
func (w *walker) inlines(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.inline(c)
	}
}

func (w *walker) inline(n ast.Node) {
	switch node := n.(type) {
	case *ast.Text:
		w.buf.write(w.textValue(node.Segment.Value(w.source)))
		switch {
		case node.HardLineBreak():
			w.buf.write("\v")
		case node.SoftLineBreak():
			w.buf.write(" ")
		}

	case *ast.String:
		w.buf.write(string(node.Value))

	case *ast.CodeSpan:
		w.inCode = true
		w.styled(node, document.TextStyle{Monospace: true})
		w.inCode = false

	case *ast.Emphasis:
		if node.Level >= 2 {
			w.styled(node, document.TextStyle{Bold: true})
		} else {
			w.styled(node, document.TextStyle{Italic: true})
		}

	case *extast.Strikethrough:
		w.styled(node, document.TextStyle{Strikethrough: true})

	case *ast.Link:
		w.styled(node, document.TextStyle{LinkURL: string(node.Destination)})
		w.outcome.Links++

	case *ast.AutoLink:
		start := w.buf.pos
		w.buf.write(string(node.Label(w.source)))
		w.buf.textStyle(start, w.buf.pos, document.TextStyle{LinkURL: string(node.URL(w.source))})
		w.outcome.Links++

	case *ast.Image:
		w.inlines(node)
		w.warn(fmt.Sprintf("image %q skipped, alt text kept", string(node.Destination)))

	case *ast.RawHTML:
		w.warn("inline HTML skipped")

	case *extast.TaskCheckBox:
		w.hasTask = true

	default:
		w.inlines(n)
	}
}

// textValue resolves escapes and entities outside code spans. Code span
// content is literal apart from line endings, which render as spaces.
func (w *walker) textValue(b []byte) string {
	if w.inCode {
		return strings.ReplaceAll(string(b), "\n", " ")
	}
	return string(util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(b))))
}

// styled emits the children of n and applies style to the emitted range.
func (w *walker) styled(n ast.Node, style document.TextStyle) {
	start := w.buf.pos
	w.inlines(n)
	w.buf.textStyle(start, w.buf.pos, style)
}

func (w *walker) warn(msg string) {
	w.outcome.Warnings = append(w.outcome.Warnings, msg)
}

func countRows(t *extast.Table) int {
	n := 0
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		n++
	}
	return n
}
