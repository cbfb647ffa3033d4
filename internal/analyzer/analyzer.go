// Package analyzer implements the Check-Request Analyzer (§4.5): given one
// host callback (paragraph text, locale, footnote/deletion offsets, and
// optionally a stable node id), it resolves which flat paragraph the
// request is about, refreshing the document cache structurally when the
// fast paths fail.
package analyzer

import (
	"context"
	"log/slog"

	"github.com/writingtool-org/checkengine/internal/doccache"
	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/equivalence"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// ProofInfo is the reason the host gave for this callback.
type ProofInfo int

const (
	ProofUnknown ProofInfo = iota
	ProofMarkParagraph
	ProofGetProofResult
)

// Request is one host callback to resolve.
type Request struct {
	Text              string
	Locale            doclocale.Locale
	Footnotes         []int
	DeletedCharacters []int
	SentenceStart     int
	ProofInfo         ProofInfo

	HasSortedTextID       bool
	SortedTextID          int64
	DocumentElementsCount int
}

// ChangedRange is the structural diff applied to every shiftable cache
// (§4.5 step 3).
type ChangedRange struct {
	From, To, OldSize, NewSize int
}

// Resolution is what Analyze decided.
type Resolution struct {
	FlatIndex int
	Found     bool

	// Changed is non-nil when resolving this request forced a structural
	// refresh; the caller must apply the same shift to every result cache,
	// the ignore store, and re-enqueue [From, To) for every rule class.
	Changed *ChangedRange

	// ContentUpdated is true when FlatIndex was found but its cached text
	// differed from the request; the analyzer already updated the cache
	// entry and invalidated its analyzed-paragraph slot. The caller must
	// still drop the paragraph's result-cache rows and re-enqueue it.
	ContentUpdated bool
}

// Analyzer resolves host callbacks against one document's cache.
type Analyzer struct {
	cache  *doccache.Cache
	host   hostcontract.Host
	logger *slog.Logger

	hasLast  bool
	lastFlat int
}

// New builds an Analyzer bound to cache and host.
func New(cache *doccache.Cache, host hostcontract.Host, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cache: cache, host: host, logger: logger}
}

// Analyze resolves req (§4.5).
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Resolution, error) {
	if flat, ok := a.resolveByNodeID(req); ok {
		a.remember(flat)
		return Resolution{FlatIndex: flat, Found: true}, nil
	}

	if flat, ok := a.resolveByHeuristic(req); ok {
		a.remember(flat)
		return Resolution{FlatIndex: flat, Found: true}, nil
	}

	// GetProofResult must never trigger a refresh (§4.5 edge policy): answer
	// from cache only, even if that means "not found".
	if req.ProofInfo == ProofGetProofResult {
		return Resolution{Found: false}, nil
	}

	changed, err := a.refreshStructurally(ctx)
	if err != nil {
		return Resolution{Found: false}, err
	}

	if flat, ok := a.resolveByNodeID(req); ok {
		a.remember(flat)
		return a.finish(flat, changed, req), nil
	}
	if flat, ok := a.resolveByHeuristic(req); ok {
		a.remember(flat)
		return a.finish(flat, changed, req), nil
	}
	if flat, ok := a.resolveByScan(req); ok {
		a.remember(flat)
		return a.finish(flat, changed, req), nil
	}

	return Resolution{Found: false, Changed: changed}, nil
}

func (a *Analyzer) finish(flat int, changed *ChangedRange, req Request) Resolution {
	res := Resolution{FlatIndex: flat, Found: true, Changed: changed}
	cached, ok := a.cache.Paragraph(flat)
	if ok && !equivalence.IsEqualText(cached, req.Text, req.Footnotes) {
		loc := req.Locale
		a.cache.UpdateParagraph(flat, req.Text, req.Footnotes, loc)
		res.ContentUpdated = true
	}
	return res
}

func (a *Analyzer) remember(flat int) {
	a.lastFlat = flat
	a.hasLast = true
}

// resolveByNodeID implements §4.5 step 1.
func (a *Analyzer) resolveByNodeID(req Request) (int, bool) {
	if !req.HasSortedTextID {
		return 0, false
	}
	if a.cache.DocumentElementCount() != req.DocumentElementsCount {
		return 0, false
	}
	flat, ok := a.cache.FlatIndexForNodeID(req.SortedTextID)
	if !ok {
		return 0, false
	}
	text, ok := a.cache.Paragraph(flat)
	if !ok || !equivalence.IsEqualText(text, req.Text, req.Footnotes) {
		return 0, false
	}
	loc, ok := a.cache.Locale(flat)
	if !ok || !loc.Equal(req.Locale) {
		return 0, false
	}
	return flat, true
}

// resolveByHeuristic implements §4.5 step 2.
func (a *Analyzer) resolveByHeuristic(req Request) (int, bool) {
	if a.hasLast {
		candidate := a.lastFlat + 1
		if text, ok := a.cache.Paragraph(candidate); ok && equivalence.IsEqualText(text, req.Text, req.Footnotes) {
			return candidate, true
		}
	}
	if req.ProofInfo == ProofGetProofResult {
		if flat, ok := a.cache.ViewCursorFlatIndex(); ok {
			if text, ok := a.cache.Paragraph(flat); ok && equivalence.IsEqualText(text, req.Text, req.Footnotes) {
				return flat, true
			}
		}
	}
	return 0, false
}

// resolveByScan linearly searches every flat paragraph; used only as the
// final retry after a structural refresh (§4.5 step 4), and as the
// Unknown-kind fallback: if the view cursor's paragraph text matches, adopt
// its position even when no mapped flat index matched.
func (a *Analyzer) resolveByScan(req Request) (int, bool) {
	n := a.cache.Len()
	for i := 0; i < n; i++ {
		text, ok := a.cache.Paragraph(i)
		if ok && equivalence.IsEqualText(text, req.Text, req.Footnotes) {
			return i, true
		}
	}
	if flat, ok := a.cache.ViewCursorFlatIndex(); ok {
		if text, ok := a.cache.Paragraph(flat); ok && equivalence.IsEqualText(text, req.Text, req.Footnotes) {
			return flat, true
		}
	}
	return 0, false
}

// refreshStructurally diffs the cache's current flat paragraphs against a
// fresh read from the host, computes the changed range ignoring
// header/footer transitions, then rebuilds the cache (§4.5 step 3).
func (a *Analyzer) refreshStructurally(ctx context.Context) (*ChangedRange, error) {
	oldTexts := make([]string, a.cache.Len())
	oldKinds := make([]textcoord.Kind, a.cache.Len())
	for i := range oldTexts {
		oldTexts[i], _ = a.cache.Paragraph(i)
		if coord, ok := a.cache.ToText(i); ok {
			oldKinds[i] = coord.Kind
		}
	}

	snapshot, err := a.host.FlatParagraphs(ctx)
	if err != nil {
		a.logger.Warn("analyzer: transient host call failure during refresh", slog.String("error", err.Error()))
		return nil, nil
	}
	newTexts := make([]string, len(snapshot.Paragraphs))
	for i, p := range snapshot.Paragraphs {
		newTexts[i] = p.Text
	}

	changed := diffChangedRange(oldTexts, oldKinds, newTexts)

	if err := a.cache.Refresh(ctx); err != nil {
		return nil, err
	}
	a.hasLast = false
	return changed, nil
}

// diffChangedRange computes the maximal unchanged prefix and suffix between
// old and new, tolerating mismatches at header/footer positions so a
// save-induced header rewrite never invalidates the body (§4.5 step 3).
func diffChangedRange(old []string, oldKinds []textcoord.Kind, new []string) *ChangedRange {
	n1, n2 := len(old), len(new)

	prefix := 0
	for prefix < n1 && prefix < n2 {
		if old[prefix] == new[prefix] {
			prefix++
			continue
		}
		if prefix < len(oldKinds) && oldKinds[prefix] == textcoord.HeaderFooter {
			prefix++
			continue
		}
		break
	}

	maxSuffix := n1 - prefix
	if n2-prefix < maxSuffix {
		maxSuffix = n2 - prefix
	}
	suffix := 0
	for suffix < maxSuffix {
		oi, ni := n1-1-suffix, n2-1-suffix
		if old[oi] == new[ni] {
			suffix++
			continue
		}
		if oi < len(oldKinds) && oldKinds[oi] == textcoord.HeaderFooter {
			suffix++
			continue
		}
		break
	}

	from := prefix
	to := n1 - suffix
	newSize := n2 - suffix - prefix
	if to < from {
		to = from
	}
	if newSize < 0 {
		newSize = 0
	}
	return &ChangedRange{From: from, To: to, OldSize: to - from, NewSize: newSize}
}
