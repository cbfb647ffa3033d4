package doccache

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/equivalence"
	"github.com/writingtool-org/checkengine/internal/errs"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// Refresh rebuilds the cache from the host (§4.4.1). It reads the flat
// paragraphs (which carry node ids when the host supplies them) and the
// typed text enumeration, fanning both reads out in parallel with errgroup
// before taking the writer lock, so slow host I/O is never held under the
// lock.
func (c *Cache) Refresh(ctx context.Context) error {
	return c.refreshWith(ctx, c.host)
}

// host is set by SetHost; kept separate from the zero-value constructor so
// tests can build a Cache without a host and drive rebuildLocked directly.
func (c *Cache) SetHost(h hostcontract.Host) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.host = h
}

func (c *Cache) refreshWith(ctx context.Context, h hostcontract.Host) error {
	if h == nil {
		return errs.New(errs.KindTransientHostCall, nil, "doccache: no host configured")
	}

	c.mu.Lock()
	c.state = Refreshing
	c.mu.Unlock()

	var flat hostcontract.FlatSnapshot
	var typed []hostcontract.TypedParagraphs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flat, err = h.FlatParagraphs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		typed, err = h.TypedParagraphs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.mu.Lock()
		c.state = Dirty
		c.mu.Unlock()
		return errs.New(errs.KindTransientHostCall, err, "doccache: refresh: reading host state")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil
	}
	c.rebuildLocked(flat, typed)
	return nil
}

func (c *Cache) rebuildLocked(flat hostcontract.FlatSnapshot, typed []hostcontract.TypedParagraphs) {
	n := len(flat.Paragraphs)
	c.state = Refreshing

	c.paragraphs = make([]string, n)
	c.locales = make([]doclocale.Locale, n)
	c.footnotes = make([][]int, n)
	c.deletedCharacters = make([]([]int), n)
	c.toText = make([]textcoord.Coord, n)
	c.automaticParagraphs = make(map[textcoord.Kind]map[int]bool)
	c.chapterBegins = make(map[textcoord.Kind][]int)
	c.toFlat = make(map[textcoord.Kind][]int)
	c.analyzedParagraphs = make(map[int][]AnalyzedSentence)
	c.openingQuotes = nil
	c.closingQuotes = nil
	c.hasDocLocale = false
	c.hasViewCursor = false

	for i, p := range flat.Paragraphs {
		c.paragraphs[i] = p.Text
		c.locales[i] = p.Locale
		c.footnotes[i] = p.Footnotes
	}

	hasNodeIDs := n > 0
	for _, p := range flat.Paragraphs {
		if !p.HasNodeID {
			hasNodeIDs = false
			break
		}
	}

	if hasNodeIDs {
		c.sortedTextIDs = make([]int64, n)
		for i, p := range flat.Paragraphs {
			c.sortedTextIDs[i] = p.NodeID
		}
		c.hasSortedTextIDs = true
		c.documentElementCount = flat.DocumentElementCount
		mapWithNodeIDs(c, typed)
	} else {
		c.hasSortedTextIDs = false
		c.sortedTextIDs = nil
		mapHeuristically(c, typed)
	}

	for _, tp := range typed {
		for i, del := range tp.DeletedCharacters {
			if i >= len(tp.DeletedCharacters) {
				break
			}
			if flatIdx, ok := c.toFlat[tp.Kind]; ok && i < len(flatIdx) && flatIdx[i] >= 0 {
				c.deletedCharacters[flatIdx[i]] = del
			}
		}
		for i, auto := range tp.Automatic {
			if !auto {
				continue
			}
			set, ok := c.automaticParagraphs[tp.Kind]
			if !ok {
				set = make(map[int]bool)
				c.automaticParagraphs[tp.Kind] = set
			}
			set[i] = true
		}
	}

	postProcessTextChapterBegins(c, typed)
	rebuildQuoteIndexLocked(c, typed)
	computeDocLocaleLocked(c)

	// A mapping pass that detected a desync has already set Dirty; keep it.
	if c.state != Dirty {
		c.state = Idle
	}
}

// postProcessTextChapterBegins adds, for the Text kind only, the next flat
// position after each heading and each language-change boundary (§4.4.3),
// then sorts and dedupes.
func postProcessTextChapterBegins(c *Cache, typed []hostcontract.TypedParagraphs) {
	var textKind *hostcontract.TypedParagraphs
	for i := range typed {
		if typed[i].Kind == textcoord.Text {
			textKind = &typed[i]
			break
		}
	}
	if textKind == nil {
		return
	}

	begins := map[int]bool{}
	for _, existing := range c.chapterBegins[textcoord.Text] {
		begins[existing] = true
	}
	for _, h := range textKind.Headings {
		begins[h.Index] = true
	}

	flatForText := c.toFlat[textcoord.Text]
	var prevLocale doclocale.Locale
	havePrev := false
	for textIdx, flatIdx := range flatForText {
		if flatIdx < 0 || flatIdx >= len(c.locales) {
			continue
		}
		loc := c.locales[flatIdx]
		if havePrev && !loc.Equal(prevLocale) {
			begins[textIdx] = true
		}
		prevLocale = loc
		havePrev = true
	}

	sorted := make([]int, 0, len(begins))
	for idx := range begins {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)
	c.chapterBegins[textcoord.Text] = sorted
}

// Exposed for equivalence use within mapping_heuristic.go without an import
// cycle; re-exported here to keep that file focused on policy.
var isEqualText = equivalence.IsEqualText

// computeDocLocaleLocked fills in doc_locale (§3) as the most frequent tag
// among the document's paragraph locales. Every distinct tag seen counts as
// "supported": the cache has no independent notion of which locales the
// host's dictionaries cover, and no filtering against such a list is
// applied.
func computeDocLocaleLocked(c *Cache) {
	seen := make(map[language.Tag]bool)
	var supported []language.Tag
	for _, loc := range c.locales {
		if loc.IsUndetermined() {
			continue
		}
		if !seen[loc.Tag()] {
			seen[loc.Tag()] = true
			supported = append(supported, loc.Tag())
		}
	}

	loc, ok := doclocale.DocLocale(c.locales, supported)
	c.docLocale = loc
	c.hasDocLocale = ok
}
