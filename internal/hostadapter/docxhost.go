package hostadapter

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"

	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/equivalence"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// docxParagraph is one <w:p> parsed out of a document part, carrying
// everything hostcontract needs about it.
type docxParagraph struct {
	text      string
	locale    doclocale.Locale
	footnotes []int
	deleted   []int
	heading   int // outline level, 0 if not a heading
	automatic bool
	footnoteIDs []string // ids referenced inside this paragraph, in order
}

// DocxHost implements hostcontract.Host by parsing a real .docx file. It is
// built for batch/CLI use: there is no live cursor or incremental edit
// stream, so ViewCursorPosition is degenerate and ReplaceParagraphSubstring
// only updates the in-memory copy; DocxHost never writes edits back to the
// .docx package.
type DocxHost struct {
	mu  sync.RWMutex
	pkg *Package

	flat []hostcontract.FlatParagraph
	// flatKind/flatIndex mirror flat, giving the typed coordinate for each
	// flat paragraph so TypedParagraphs can be reconstructed.
	flatKind  []textcoord.Kind
	flatIndex []int

	byKind map[textcoord.Kind][]docxParagraph
}

// Open reads a .docx file from disk and parses it into a DocxHost.
func Open(path string) (*DocxHost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hostadapter: read %s: %w", path, err)
	}
	return OpenBytes(data)
}

// OpenBytes parses a .docx file already read into memory.
func OpenBytes(data []byte) (*DocxHost, error) {
	pkg, err := OpenPackageBytes(data)
	if err != nil {
		return nil, err
	}
	h := &DocxHost{pkg: pkg}
	if err := h.parse(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *DocxHost) parse() error {
	bodyXML, err := h.pkg.DocumentBody()
	if err != nil {
		return fmt.Errorf("hostadapter: read document body: %w", err)
	}
	bodyDoc := etree.NewDocument()
	if err := bodyDoc.ReadFromBytes(bodyXML); err != nil {
		return fmt.Errorf("hostadapter: parse document.xml: %w", err)
	}

	h.byKind = make(map[textcoord.Kind][]docxParagraph)
	h.byKind[textcoord.Text] = parseParagraphs(bodyDoc.Root())
	h.byKind[textcoord.Table] = parseTableParagraphs(bodyDoc.Root())

	if len(h.pkg.Footnotes) > 0 {
		h.byKind[textcoord.Footnote] = parseNotesXML(h.pkg.Footnotes, "w:footnote")
	}
	if len(h.pkg.Endnotes) > 0 {
		h.byKind[textcoord.Endnote] = parseNotesXML(h.pkg.Endnotes, "w:endnote")
	}

	var headerFooter []docxParagraph
	for _, blob := range h.pkg.Headers {
		headerFooter = append(headerFooter, parseContainerXML(blob)...)
	}
	for _, blob := range h.pkg.Footers {
		headerFooter = append(headerFooter, parseContainerXML(blob)...)
	}
	h.byKind[textcoord.HeaderFooter] = headerFooter

	h.buildFlat()
	return nil
}

// buildFlat interleaves footnote/endnote paragraphs right after the body
// paragraph that references them, then appends tables and header/footer
// paragraphs, which the host has no reliable inline reference point for.
func (h *DocxHost) buildFlat() {
	usedFootnote := make(map[string]bool)
	usedEndnote := make(map[string]bool)

	appendKind := func(kind textcoord.Kind, p docxParagraph, posInKind int) {
		flatIdx := len(h.flat)
		h.flat = append(h.flat, hostcontract.FlatParagraph{
			Text:      p.text,
			Locale:    p.locale,
			Footnotes: p.footnotes,
			NodeID:    int64(flatIdx + 1),
			HasNodeID: true,
		})
		h.flatKind = append(h.flatKind, kind)
		h.flatIndex = append(h.flatIndex, posInKind)
	}

	footnotesByID := indexByID(h.byKind[textcoord.Footnote])
	endnotesByID := indexByID(h.byKind[textcoord.Endnote])

	for i, p := range h.byKind[textcoord.Text] {
		appendKind(textcoord.Text, p, i)
		for _, id := range p.footnoteIDs {
			if note, ok := footnotesByID[id]; ok && !usedFootnote[id] {
				usedFootnote[id] = true
				appendKind(textcoord.Footnote, note.paragraph, note.index)
			}
			if note, ok := endnotesByID[id]; ok && !usedEndnote[id] {
				usedEndnote[id] = true
				appendKind(textcoord.Endnote, note.paragraph, note.index)
			}
		}
	}
	for i, p := range h.byKind[textcoord.Table] {
		appendKind(textcoord.Table, p, i)
	}
	for i, p := range h.byKind[textcoord.HeaderFooter] {
		appendKind(textcoord.HeaderFooter, p, i)
	}
}

type indexedParagraph struct {
	paragraph docxParagraph
	index     int
}

func indexByID(paragraphs []docxParagraph) map[string]indexedParagraph {
	out := make(map[string]indexedParagraph)
	for i, p := range paragraphs {
		for _, id := range p.footnoteIDs {
			out[id] = indexedParagraph{paragraph: p, index: i}
		}
	}
	return out
}

// FlatParagraphs implements hostcontract.Host.
func (h *DocxHost) FlatParagraphs(context.Context) (hostcontract.FlatSnapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cp := make([]hostcontract.FlatParagraph, len(h.flat))
	copy(cp, h.flat)
	return hostcontract.FlatSnapshot{Paragraphs: cp, DocumentElementCount: len(cp)}, nil
}

// TypedParagraphs implements hostcontract.Host.
func (h *DocxHost) TypedParagraphs(context.Context) ([]hostcontract.TypedParagraphs, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	nodeIDs := make(map[textcoord.Kind][]int64)
	for flatIdx, kind := range h.flatKind {
		if nodeIDs[kind] == nil {
			nodeIDs[kind] = make([]int64, len(h.byKind[kind]))
		}
		nodeIDs[kind][h.flatIndex[flatIdx]] = h.flat[flatIdx].NodeID
	}

	var out []hostcontract.TypedParagraphs
	for _, kind := range textcoord.AllKinds {
		paragraphs := h.byKind[kind]
		if len(paragraphs) == 0 {
			continue
		}
		tp := hostcontract.TypedParagraphs{Kind: kind, NodeIDs: nodeIDs[kind]}
		for i, p := range paragraphs {
			tp.Paragraphs = append(tp.Paragraphs, p.text)
			tp.DeletedCharacters = append(tp.DeletedCharacters, p.deleted)
			tp.Automatic = append(tp.Automatic, p.automatic)
			if p.heading > 0 {
				tp.Headings = append(tp.Headings, hostcontract.Heading{Index: i, Level: p.heading})
			}
		}
		out = append(out, tp)
	}
	return out, nil
}

// ViewCursorPosition implements hostcontract.Host. A batch host has no live
// cursor; it always reports the first flat paragraph.
func (h *DocxHost) ViewCursorPosition(context.Context) (hostcontract.ViewCursor, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.flat) == 0 {
		return hostcontract.ViewCursor{}, nil
	}
	return hostcontract.ViewCursor{Kind: h.flatKind[0], Paragraph: h.flatIndex[0], Text: h.flat[0].Text}, nil
}

// ReplaceParagraphSubstring implements hostcontract.Host. It only updates
// the in-memory flat copy; the edit is not written back to the .docx
// package, and no run-level re-serialisation exists in this adapter.
func (h *DocxHost) ReplaceParagraphSubstring(_ context.Context, flatIndex, start, length int, replacement string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if flatIndex < 0 || flatIndex >= len(h.flat) {
		return fmt.Errorf("hostadapter: flat index %d out of range", flatIndex)
	}
	text := h.flat[flatIndex].Text
	runes := []rune(text)
	if start < 0 || start+length > len(runes) {
		return fmt.Errorf("hostadapter: replace range out of bounds")
	}
	newText := string(runes[:start]) + replacement + string(runes[start+length:])
	h.flat[flatIndex].Text = newText
	return nil
}

// Title returns the document's core-properties title, if any.
func (h *DocxHost) Title() string {
	if h.pkg.CoreProps == nil {
		return ""
	}
	return h.pkg.CoreProps.Title
}

// HasFootnotes reports whether the package carries a footnotes part.
func (h *DocxHost) HasFootnotes() bool { return len(h.pkg.Footnotes) > 0 }

// HasEndnotes reports whether the package carries an endnotes part.
func (h *DocxHost) HasEndnotes() bool { return len(h.pkg.Endnotes) > 0 }

func parseParagraphs(root *etree.Element) []docxParagraph {
	if root == nil {
		return nil
	}
	var paragraphs []docxParagraph
	for _, p := range root.FindElements(".//w:body/w:p") {
		paragraphs = append(paragraphs, parseOneParagraph(p))
	}
	return paragraphs
}

func parseTableParagraphs(root *etree.Element) []docxParagraph {
	if root == nil {
		return nil
	}
	var paragraphs []docxParagraph
	for _, p := range root.FindElements(".//w:tbl//w:p") {
		paragraphs = append(paragraphs, parseOneParagraph(p))
	}
	return paragraphs
}

func parseNotesXML(blob []byte, elementTag string) []docxParagraph {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil
	}
	var paragraphs []docxParagraph
	for _, note := range doc.FindElements(".//" + elementTag) {
		id := note.SelectAttrValue("w:id", "")
		if id == "-1" || id == "0" {
			continue // separator/continuation placeholders, not real notes
		}
		for _, p := range note.FindElements(".//w:p") {
			para := parseOneParagraph(p)
			para.footnoteIDs = []string{id}
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}

func parseContainerXML(blob []byte) []docxParagraph {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil
	}
	var paragraphs []docxParagraph
	for _, p := range doc.FindElements(".//w:p") {
		paragraphs = append(paragraphs, parseOneParagraph(p))
	}
	return paragraphs
}

func parseOneParagraph(p *etree.Element) docxParagraph {
	var sb strings.Builder
	var footnotes []int
	var footnoteIDs []string
	var deleted []int
	locale := doclocale.Parse("")
	heading := headingLevel(p)

	var walk func(el *etree.Element, inDeletion bool)
	walk = func(el *etree.Element, inDeletion bool) {
		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "t":
				start := sb.Len()
				sb.WriteString(child.Text())
				if inDeletion {
					deleted = append(deleted, start, sb.Len())
				}
			case "delText":
				start := sb.Len()
				sb.WriteString(child.Text())
				deleted = append(deleted, start, sb.Len())
			case "tab":
				sb.WriteRune('\t')
			case "br", "cr":
				sb.WriteRune('\n')
			case "footnoteReference":
				id := child.SelectAttrValue("w:id", "")
				footnoteIDs = append(footnoteIDs, id)
				footnotes = append(footnotes, sb.Len())
				sb.WriteRune(equivalence.ZeroWidthSpace)
			case "endnoteReference":
				id := child.SelectAttrValue("w:id", "")
				footnoteIDs = append(footnoteIDs, id)
				footnotes = append(footnotes, sb.Len())
				sb.WriteRune(equivalence.ZeroWidthSpace)
			case "lang":
				if v := child.SelectAttrValue("w:val", ""); v != "" {
					locale = doclocale.Parse(v)
				}
			case "del":
				walk(child, true)
			default:
				walk(child, inDeletion)
			}
		}
	}
	walk(p, false)

	return docxParagraph{
		text:        sb.String(),
		locale:      locale,
		footnotes:   footnotes,
		footnoteIDs: footnoteIDs,
		deleted:     deleted,
		heading:     heading,
	}
}

func headingLevel(p *etree.Element) int {
	style := p.FindElement("./w:pPr/w:pStyle")
	if style == nil {
		return 0
	}
	val := style.SelectAttrValue("w:val", "")
	if !strings.HasPrefix(val, "Heading") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(val, "Heading"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

var _ hostcontract.Host = (*DocxHost)(nil)
