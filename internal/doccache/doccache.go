// Package doccache implements the Document Cache (§4.4): a versioned,
// read/write-locked snapshot of paragraphs with the flat/text coordinate
// bijection, chapter boundaries, per-paragraph language, a quote-span
// index, and a cached tokenisation map.
package doccache

import (
	"sync"

	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// State is the cache's lifecycle state (design note in §9: "from spin-wait
// on isResetRunning to an explicit state").
type State int

const (
	Idle State = iota
	Refreshing
	Dirty
)

// AnalyzedSentence is an opaque cached tokenisation result. The rule engine
// owns its shape; the cache only tracks presence/absence per paragraph.
type AnalyzedSentence struct {
	Start, End int
	Text       string
}

// Cache is one document's paragraph store; create it with New, which
// allocates its internal maps. All mutation goes through mu; readers take mu.RLock for the
// duration of a single accessor (§5).
type Cache struct {
	mu sync.RWMutex

	host hostcontract.Host

	state State

	// Once disposed is set, Refresh skips the rebuild and the Paragraph,
	// Locale, Footnotes, DeletedCharacters, ToText and ToFlat accessors
	// short-circuit; the other accessors do not read it.
	disposed bool

	paragraphs         []string
	locales            []doclocale.Locale
	footnotes          [][]int
	deletedCharacters  []([]int) // nil entry = no tracked deletions
	automaticParagraphs map[textcoord.Kind]map[int]bool

	chapterBegins map[textcoord.Kind][]int

	toText []textcoord.Coord
	toFlat map[textcoord.Kind][]int

	sortedTextIDs       []int64
	hasSortedTextIDs    bool
	documentElementCount int

	openingQuotes [][]int // per text-kind paragraph index (Text kind only)
	closingQuotes [][]int
	quoteEndsOpen []bool // parallel to openingQuotes: did this paragraph end inside an open quote

	analyzedParagraphs map[int][]AnalyzedSentence

	docLocale      doclocale.Locale
	hasDocLocale   bool

	viewCursorFlatIndex int
	hasViewCursor       bool
}

// New creates an empty document cache.
func New() *Cache {
	return &Cache{
		automaticParagraphs: make(map[textcoord.Kind]map[int]bool),
		chapterBegins:       make(map[textcoord.Kind][]int),
		toFlat:              make(map[textcoord.Kind][]int),
		analyzedParagraphs:  make(map[int][]AnalyzedSentence),
	}
}

// Len returns the flat paragraph count N.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.paragraphs)
}

// State returns the current lifecycle state.
func (c *Cache) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispose marks the cache disposed. Afterwards Refresh no longer rebuilds,
// and Paragraph, Locale, Footnotes, DeletedCharacters, ToText and ToFlat
// return their zero value immediately; Len, State and the remaining
// accessors keep answering from the last snapshot.
func (c *Cache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}

// IsDisposed reports the disposed flag.
func (c *Cache) IsDisposed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.disposed
}

// Paragraph returns the flat text at flatIndex.
func (c *Cache) Paragraph(flatIndex int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed || flatIndex < 0 || flatIndex >= len(c.paragraphs) {
		return "", false
	}
	return c.paragraphs[flatIndex], true
}

// Locale returns the locale recorded for flatIndex.
func (c *Cache) Locale(flatIndex int) (doclocale.Locale, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed || flatIndex < 0 || flatIndex >= len(c.locales) {
		return doclocale.Locale{}, false
	}
	return c.locales[flatIndex], true
}

// Footnotes returns the footnote sentinel offsets recorded for flatIndex.
func (c *Cache) Footnotes(flatIndex int) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed || flatIndex < 0 || flatIndex >= len(c.footnotes) {
		return nil
	}
	return c.footnotes[flatIndex]
}

// DeletedCharacters returns the tracked-deletion offsets for flatIndex, or
// nil if none are recorded.
func (c *Cache) DeletedCharacters(flatIndex int) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed || flatIndex < 0 || flatIndex >= len(c.deletedCharacters) {
		return nil
	}
	return c.deletedCharacters[flatIndex]
}

// ToText returns the typed coordinate for flatIndex (invariant 1 in §8).
func (c *Cache) ToText(flatIndex int) (textcoord.Coord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed || flatIndex < 0 || flatIndex >= len(c.toText) {
		return textcoord.Coord{}, false
	}
	return c.toText[flatIndex], true
}

// ToFlat returns the flat index for (kind, textIndex).
func (c *Cache) ToFlat(kind textcoord.Kind, textIndex int) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed {
		return 0, false
	}
	slice, ok := c.toFlat[kind]
	if !ok || textIndex < 0 || textIndex >= len(slice) {
		return 0, false
	}
	flat := slice[textIndex]
	if flat < 0 {
		return 0, false
	}
	return flat, true
}

// TextKindLen returns how many text paragraphs kind has.
func (c *Cache) TextKindLen(kind textcoord.Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.toFlat[kind])
}

// IsAutomatic reports whether the text paragraph at (kind, textIndex) is
// auto-generated and must never be checked.
func (c *Cache) IsAutomatic(kind textcoord.Kind, textIndex int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.automaticParagraphs[kind]
	return ok && set[textIndex]
}

// ChapterBegins returns the sorted chapter-begin positions for kind.
func (c *Cache) ChapterBegins(kind textcoord.Kind) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]int(nil), c.chapterBegins[kind]...)
}

// IsSingleParagraph reports invariant 4 from §3: a flat index is "single
// paragraph" iff it is Unknown, or its text position is both a chapter
// begin and immediately precedes the next chapter begin (or end).
func (c *Cache) IsSingleParagraph(flatIndex int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if flatIndex < 0 || flatIndex >= len(c.toText) {
		return false
	}
	coord := c.toText[flatIndex]
	if coord.IsUnknown() {
		return true
	}
	begins := c.chapterBegins[coord.Kind]
	pos := indexOf(begins, coord.Index)
	if pos < 0 {
		return false
	}
	next := len(c.toFlat[coord.Kind])
	if pos+1 < len(begins) {
		next = begins[pos+1]
	}
	return coord.Index+1 == next
}

func indexOf(sorted []int, v int) int {
	for i, x := range sorted {
		if x == v {
			return i
		}
	}
	return -1
}

// AnalyzedParagraph returns the cached tokenisation for flatIndex, if any.
func (c *Cache) AnalyzedParagraph(flatIndex int) ([]AnalyzedSentence, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.analyzedParagraphs[flatIndex]
	return s, ok
}

// PutAnalyzedParagraph caches the tokenisation for flatIndex.
func (c *Cache) PutAnalyzedParagraph(flatIndex int, sentences []AnalyzedSentence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyzedParagraphs[flatIndex] = sentences
}

// InvalidateAnalyzedParagraph removes the cached tokenisation for
// flatIndex, per invariant 5 in §3: any edit to paragraph i must clear its
// entry until a new one is created.
func (c *Cache) InvalidateAnalyzedParagraph(flatIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.analyzedParagraphs, flatIndex)
}

// OpeningQuotes returns the opening-quote offsets for text-kind paragraph
// textIdx. A leading -1 means the paragraph opens inside an unclosed quote
// carried over from the previous paragraph.
func (c *Cache) OpeningQuotes(textIdx int) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if textIdx < 0 || textIdx >= len(c.openingQuotes) {
		return nil
	}
	return c.openingQuotes[textIdx]
}

// ClosingQuotes returns the closing-quote offsets for text-kind paragraph
// textIdx.
func (c *Cache) ClosingQuotes(textIdx int) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if textIdx < 0 || textIdx >= len(c.closingQuotes) {
		return nil
	}
	return c.closingQuotes[textIdx]
}

// DocLocale returns the cached doc_locale, if one has been computed.
func (c *Cache) DocLocale() (doclocale.Locale, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docLocale, c.hasDocLocale
}

// SetViewCursorFlatIndex records the flat index the host's view cursor last
// resolved to, used by the analyzer's Unknown-kind heuristic (§4.5).
func (c *Cache) SetViewCursorFlatIndex(flatIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewCursorFlatIndex = flatIndex
	c.hasViewCursor = true
}

// ViewCursorFlatIndex returns the last recorded view-cursor flat index.
func (c *Cache) ViewCursorFlatIndex() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewCursorFlatIndex, c.hasViewCursor
}

// UpdateParagraph replaces the flat text (and derived footnote offsets) for
// flatIndex in place, invalidating its analyzed-paragraph entry (invariant
// 5). It does not touch the flat/text mapping; callers that change
// paragraph count must go through Refresh instead.
func (c *Cache) UpdateParagraph(flatIndex int, text string, footnotes []int, loc doclocale.Locale) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if flatIndex < 0 || flatIndex >= len(c.paragraphs) {
		return
	}
	c.paragraphs[flatIndex] = text
	c.footnotes[flatIndex] = footnotes
	c.locales[flatIndex] = loc
	delete(c.analyzedParagraphs, flatIndex)
}

// DocumentElementCount returns the host element count recorded at the last
// refresh, used by the analyzer to decide whether a stale node id is safe
// to trust (§4.5 step 1).
func (c *Cache) DocumentElementCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.documentElementCount
}

// FlatIndexForNodeID looks up the flat index whose stable node id equals
// id, when sorted_text_ids is present.
func (c *Cache) FlatIndexForNodeID(id int64) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasSortedTextIDs {
		return 0, false
	}
	for i, v := range c.sortedTextIDs {
		if v == id {
			return i, true
		}
	}
	return 0, false
}
