package doccache

import (
	"unicode"

	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// Quote glyphs the automaton recognises directly (§4.4.4), beyond the
// generic straight-quote handler.
const (
	curlyOpen  = '“'
	curlyClose = '”'
	guillOpen  = '«'
	guillClose = '»'
	straight   = '"'
)

// rebuildQuoteIndexLocked computes the opening/closing quote index for
// every Text-kind paragraph after a mapping pass (§4.4.4). Must be called
// with c.mu held for writing.
func rebuildQuoteIndexLocked(c *Cache, typed []hostcontract.TypedParagraphs) {
	var textTP *hostcontract.TypedParagraphs
	for i := range typed {
		if typed[i].Kind == textcoord.Text {
			textTP = &typed[i]
			break
		}
	}
	if textTP == nil {
		return
	}

	n := len(textTP.Paragraphs)
	c.openingQuotes = make([][]int, n)
	c.closingQuotes = make([][]int, n)
	c.quoteEndsOpen = make([]bool, n)

	carry := false
	for i, text := range textTP.Paragraphs {
		opening, closing, endsOpen := scanQuotes(text, carry)
		c.openingQuotes[i] = opening
		c.closingQuotes[i] = closing
		c.quoteEndsOpen[i] = endsOpen
		carry = endsOpen
	}
}

// UpdateQuoteInfo recomputes the quote index for a single text-kind
// paragraph after an edit, then re-propagates forward until the
// carried-open flag stabilises (§4.4.4).
func (c *Cache) UpdateQuoteInfo(textIdx int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if textIdx < 0 || textIdx >= len(c.openingQuotes) {
		return
	}

	carry := false
	if textIdx > 0 {
		carry = c.quoteEndsOpen[textIdx-1]
	}

	for i := textIdx; i < len(c.openingQuotes); i++ {
		var src string
		if i == textIdx {
			src = text
		} else {
			// Re-derive from the flat text via to_flat, since doccache only
			// keeps the text-kind paragraph strings inside the quote index
			// build, not as a separate owned slice.
			textFlats := c.toFlat[textcoord.Text]
			if i < len(textFlats) {
				if flat := textFlats[i]; flat >= 0 && flat < len(c.paragraphs) {
					src = c.paragraphs[flat]
				}
			}
		}
		opening, closing, endsOpen := scanQuotes(src, carry)
		changed := endsOpen != c.quoteEndsOpen[i]
		c.openingQuotes[i] = opening
		c.closingQuotes[i] = closing
		c.quoteEndsOpen[i] = endsOpen
		if i > textIdx && !changed {
			break
		}
		carry = endsOpen
	}
}

// scanQuotes runs the three-state automaton over text: a straight quote at
// a word boundary flanked by the right punctuation context is classified
// as an opener or closer; a straight quote between two digits is an inch
// mark and disqualified. carryOpen seeds the state as "already inside an
// open quote" from the previous paragraph, recorded as a leading -1 in the
// returned opening list.
func scanQuotes(text string, carryOpen bool) (opening, closing []int, endsOpen bool) {
	runes := []rune(text)
	inQuote := carryOpen
	if carryOpen {
		opening = append(opening, -1)
	}

	for i, r := range runes {
		switch {
		case r == curlyOpen && !inQuote:
			opening = append(opening, i)
			inQuote = true
		case r == curlyClose && inQuote:
			closing = append(closing, i)
			inQuote = false
		case r == guillOpen && !inQuote:
			opening = append(opening, i)
			inQuote = true
		case r == guillClose && inQuote:
			closing = append(closing, i)
			inQuote = false
		case r == straight:
			prev := boundaryRune(runes, i-1)
			next := boundaryRune(runes, i+1)
			if unicode.IsDigit(prev) && unicode.IsDigit(next) {
				continue // inch mark, not a quote
			}
			if !inQuote && isOpenContext(prev) {
				opening = append(opening, i)
				inQuote = true
			} else if inQuote && isCloseContext(next) {
				closing = append(closing, i)
				inQuote = false
			}
		}
	}

	return opening, closing, inQuote
}

func boundaryRune(runes []rune, i int) rune {
	if i < 0 || i >= len(runes) {
		return ' '
	}
	return runes[i]
}

// isOpenContext reports whether the rune preceding a straight quote is
// consistent with the quote opening a span: start of paragraph, whitespace,
// or an opening bracket.
func isOpenContext(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == '[' || r == '-' || r == '—'
}

// isCloseContext reports whether the rune following a straight quote is
// consistent with the quote closing a span: end of paragraph, whitespace,
// or sentence/word punctuation.
func isCloseContext(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '.', ',', '!', '?', ';', ':', ')', ']':
		return true
	}
	return unicode.IsSpace(r)
}
