package doccache

import (
	"strings"

	"github.com/writingtool-org/checkengine/internal/equivalence"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// ParagraphSeparator joins the paragraphs ExtractText returns.
const ParagraphSeparator = ' '

// ManualBreakSentinel replaces a soft line break within a paragraph so it
// can never be mistaken for the paragraph separator once paragraphs are
// joined.
const ManualBreakSentinel = ''

// ExtractText implements doc_as_string (§4.4.6): it returns the
// concatenation, joined by ParagraphSeparator, of the window around coord
// clipped to [previous_heading_or_language_break, next_heading_or_language_break].
//
// nParas bounds how many paragraphs on each side of coord to include when
// onlyParagraph is false; onlyParagraph true restricts the window to coord
// alone. withFootnotes false strips footnote sentinels from the result.
func (c *Cache) ExtractText(coord textcoord.Coord, nParas int, onlyParagraph, withFootnotes bool) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if coord.IsUnknown() {
		return ""
	}
	flats, ok := c.toFlat[coord.Kind]
	if !ok || coord.Index < 0 || coord.Index >= len(flats) {
		return ""
	}

	start, end := coord.Index, coord.Index+1
	if !onlyParagraph {
		floor, ceil := chapterWindowLocked(c, coord.Kind, coord.Index)
		start = coord.Index - nParas
		if start < floor {
			start = floor
		}
		end = coord.Index + nParas + 1
		if end > ceil {
			end = ceil
		}
	}

	var b strings.Builder
	first := true
	for ti := start; ti < end; ti++ {
		if ti < 0 || ti >= len(flats) {
			continue
		}
		flatIdx := flats[ti]
		if flatIdx < 0 || flatIdx >= len(c.paragraphs) {
			continue
		}
		text := c.paragraphs[flatIdx]
		if !withFootnotes {
			text = stripFootnoteSentinels(text)
		}
		text = rewriteSoftBreaks(text)
		if !first {
			b.WriteRune(ParagraphSeparator)
		}
		b.WriteString(text)
		first = false
	}
	return b.String()
}

// chapterWindowLocked returns [floor, ceil) for kind around textIdx: the
// text index just after the previous chapter begin (or 0) through the next
// chapter begin (or the kind's length). The begin marker itself (a heading
// or a language-change boundary) is excluded from the window unless textIdx
// is the begin marker, so a context window never reaches back across a
// heading into the previous chapter. Must be called with c.mu held.
func chapterWindowLocked(c *Cache, kind textcoord.Kind, textIdx int) (floor, ceil int) {
	begins := c.chapterBegins[kind]
	ceil = len(c.toFlat[kind])
	begin := 0
	for _, b := range begins {
		if b <= textIdx {
			begin = b
		}
		if b > textIdx {
			ceil = b
			break
		}
	}
	floor = begin
	if begin < textIdx {
		floor = begin + 1
	}
	return floor, ceil
}

func stripFootnoteSentinels(s string) string {
	if !strings.ContainsRune(s, equivalence.ZeroWidthSpace) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != equivalence.ZeroWidthSpace {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func rewriteSoftBreaks(s string) string {
	if !strings.ContainsRune(s, '\n') && !strings.ContainsRune(s, '\r') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\n', '\r':
			b.WriteRune(ManualBreakSentinel)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
