// Package orchestrator implements the Single-Document Orchestrator (§4.7):
// the per-document owner of the document cache, the six result caches, the
// ignore stores, and get_check_results, the single entry point the host
// callback thread calls into.
package orchestrator

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/aiadapter"
	"github.com/writingtool-org/checkengine/internal/analyzer"
	"github.com/writingtool-org/checkengine/internal/checkqueue"
	"github.com/writingtool-org/checkengine/internal/doccache"
	"github.com/writingtool-org/checkengine/internal/ignorestore"
	"github.com/writingtool-org/checkengine/internal/resultcache"
	"github.com/writingtool-org/checkengine/internal/ruleengine"
	"github.com/writingtool-org/checkengine/internal/textcoord"
	"github.com/writingtool-org/checkengine/internal/thesaurus"
)

// textLevelWindows gives the paragraph-window radius for each text-level
// cache class, ascending (§6: "text-level classes ordered by window size
// ascending").
var textLevelWindows = [3]int{3, 9, 27}

func textLevelHandling(class checkqueue.CacheClass) ruleengine.Handling {
	switch class {
	case checkqueue.CacheTextLevel1:
		return ruleengine.HandlingParagraph
	default:
		return ruleengine.HandlingMultiParagraph
	}
}

// Request is one host callback into get_check_results.
type Request struct {
	analyzer.Request

	// AugmentSynonyms requests thesaurus augmentation of AI/synonym
	// suggestions (§4.7 step 6) for the resolved paragraph.
	AugmentSynonyms bool
	// OverlapDrop selects the overlap-filter policy for this call: true
	// discards the weaker of two overlapping errors, false splits both
	// into disjoint ranges (§4.7 step 5).
	OverlapDrop bool
}

// ErrorResult is one surfaced match, after merge and filtering.
type ErrorResult struct {
	Start        int
	Length       int
	RuleID       string
	Suggestions  []string
	ShortComment string
	FullComment  string
	Type         resultcache.TypeFlag
}

// Result is what get_check_results returns.
type Result struct {
	Resolution analyzer.Resolution
	Errors     []ErrorResult
}

// Document owns one open document's full checking state.
type Document struct {
	id string

	cache    *doccache.Cache
	analyzer *analyzer.Analyzer

	sentence     *resultcache.Cache
	textLevel    [3]*resultcache.Cache
	ai           *resultcache.Cache
	aiSuggestion *resultcache.Cache

	ignores *ignorestore.Store

	sentenceEngine ruleengine.Engine
	aiAdapter      *aiadapter.Adapter
	lookup         thesaurus.Lookup

	textQueue *checkqueue.Queue
	aiQueue   *checkqueue.Queue

	mu                     sync.Mutex
	backgroundCheckEnabled bool
	disposed               bool
}

// New builds a Document. sentenceEngine is the synchronous, host-supplied
// rule engine used for the interactive single-paragraph check (§4.7 step
// 3); aiAdapter may be nil if the host has no AI backend configured.
func New(id string, cache *doccache.Cache, an *analyzer.Analyzer, sentenceEngine ruleengine.Engine, aiAdapter *aiadapter.Adapter, lookup thesaurus.Lookup, textQueue, aiQueue *checkqueue.Queue) *Document {
	return &Document{
		id:                     id,
		cache:                  cache,
		analyzer:               an,
		sentence:               resultcache.New(),
		textLevel:              [3]*resultcache.Cache{resultcache.New(), resultcache.New(), resultcache.New()},
		ai:                     resultcache.New(),
		aiSuggestion:           resultcache.New(),
		ignores:                ignorestore.New(),
		sentenceEngine:         sentenceEngine,
		aiAdapter:              aiAdapter,
		lookup:                 lookup,
		textQueue:              textQueue,
		aiQueue:                aiQueue,
		backgroundCheckEnabled: true,
	}
}

// ID implements checkqueue.Document.
func (d *Document) ID() string { return d.id }

// Cache exposes the underlying document cache, e.g. for the host's
// document-event listener (save/unload) to refresh or dispose it.
func (d *Document) Cache() *doccache.Cache { return d.cache }

// Ignores exposes the ignore store for handlers that add/remove ignores.
func (d *Document) Ignores() *ignorestore.Store { return d.ignores }

// SetBackgroundCheckEnabled toggles whether get_check_results performs any
// work at all (§4.7 step 2).
func (d *Document) SetBackgroundCheckEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.backgroundCheckEnabled = enabled
}

func (d *Document) backgroundEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.backgroundCheckEnabled
}

// GetCheckResults implements §4.7's get_check_results.
func (d *Document) GetCheckResults(ctx context.Context, req Request) (Result, error) {
	resolution, err := d.analyzer.Analyze(ctx, req.Request)
	if err != nil {
		return Result{}, err
	}
	if !resolution.Found {
		return Result{Resolution: resolution}, nil
	}

	if !d.backgroundEnabled() || d.isAutoGenerated(resolution.FlatIndex) {
		return Result{Resolution: resolution}, nil
	}

	if resolution.ContentUpdated {
		d.invalidateForEdit(resolution.FlatIndex)
	}

	d.runSentenceCheck(ctx, resolution.FlatIndex, req)
	d.enqueueTextLevelHoles(resolution.FlatIndex)

	merged := d.mergeResults(resolution.FlatIndex)
	merged = filterIgnored(merged, d.ignores, resolution.FlatIndex)
	merged = d.filterDirectSpeech(merged, resolution.FlatIndex)
	merged = filterOverlapping(merged, req.OverlapDrop)

	if req.AugmentSynonyms {
		merged = d.augmentSynonyms(merged, req.Locale.Tag())
	}

	return Result{Resolution: resolution, Errors: merged}, nil
}

func (d *Document) isAutoGenerated(flat int) bool {
	coord, ok := d.cache.ToText(flat)
	if !ok || coord.IsUnknown() {
		return false
	}
	return d.cache.IsAutomatic(coord.Kind, coord.Index)
}

// invalidateForEdit drops every cached result for flat so a content change
// re-queues it instead of surfacing a stale match (§8: "After any edit to
// paragraph i, analyzed_paragraphs contains no entry for i until
// re-created" — the same discipline applies to every result cache).
func (d *Document) invalidateForEdit(flat int) {
	d.cache.InvalidateAnalyzedParagraph(flat)
	d.sentence.Remove(flat)
	for _, c := range d.textLevel {
		c.Remove(flat)
	}
	d.ai.Remove(flat)
	d.aiSuggestion.Remove(flat)
}

func (d *Document) runSentenceCheck(ctx context.Context, flat int, req Request) {
	if d.sentenceEngine == nil {
		return
	}
	loc := req.Locale
	if err := d.sentenceEngine.SetLanguage(loc.Tag()); err != nil {
		return
	}
	d.sentenceEngine.ActivateUpTo(ruleengine.HandlingSentence)
	sentences := splitSentences(req.Text)
	matches, err := d.sentenceEngine.Check(ctx, sentences, ruleengine.HandlingSentence)
	if err != nil {
		// RuleEngineFailure (§7): record an empty row so the hole is filled.
		d.sentence.Put(flat, nil)
		return
	}
	d.sentence.Put(flat, toResultMatches(matches))
}

// enqueueTextLevelHoles enqueues a check for every text-level cache class
// still missing an entry for flat, so the worker fills it in the
// background (§4.7 step 3: "produce a result only if already computed,
// otherwise enqueue and leave absent").
func (d *Document) enqueueTextLevelHoles(flat int) {
	coord, ok := d.cache.ToText(flat)
	if !ok || coord.IsUnknown() || d.textQueue == nil {
		return
	}
	classes := [3]checkqueue.CacheClass{checkqueue.CacheTextLevel1, checkqueue.CacheTextLevel2, checkqueue.CacheTextLevel3}
	for i, c := range d.textLevel {
		if _, present := c.Get(flat); present {
			continue
		}
		d.textQueue.AddEntry(checkqueue.Entry{
			Start:       coord,
			End:         textcoord.Coord{Kind: coord.Kind, Index: coord.Index + 1},
			CacheClass:  classes[i],
			CheckRadius: textLevelWindows[i],
			DocID:       d.id,
		})
	}
}

func (d *Document) mergeResults(flat int) []ErrorResult {
	var merged []ErrorResult
	if matches, ok := d.sentence.Get(flat); ok {
		merged = append(merged, toErrorResults(matches)...)
	}
	for _, c := range d.textLevel {
		if matches, ok := c.Get(flat); ok {
			merged = append(merged, toErrorResults(matches)...)
		}
	}
	if matches, ok := d.ai.Get(flat); ok {
		merged = append(merged, toErrorResults(matches)...)
	}
	if matches, ok := d.aiSuggestion.Get(flat); ok {
		merged = append(merged, toErrorResults(matches)...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Length != b.Length {
			return a.Length > b.Length // longer first
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return len(a.Suggestions) > len(b.Suggestions)
	})
	return merged
}

func (d *Document) filterDirectSpeech(errors []ErrorResult, flat int) []ErrorResult {
	coord, ok := d.cache.ToText(flat)
	if !ok || coord.Kind != textcoord.Text {
		return errors
	}
	aware := make([]doccache.QuoteAwareMatch, len(errors))
	for i, e := range errors {
		aware[i] = doccache.QuoteAwareMatch{
			Start:         e.Start,
			IsPunctuation: e.Type.Has(resultcache.FlagPunctuationRule),
			IsStyle:       e.Type.Has(resultcache.FlagStyleRule),
		}
	}
	kept := d.cache.FilterDirectSpeech(aware, coord.Index, doccache.DirectSpeechAlways)
	out := make([]ErrorResult, len(kept))
	for i, idx := range kept {
		out[i] = errors[idx]
	}
	return out
}

func (d *Document) augmentSynonyms(errors []ErrorResult, tag language.Tag) []ErrorResult {
	if d.lookup == nil {
		return errors
	}
	for i, e := range errors {
		if !e.Type.Has(resultcache.FlagAIRule) || len(e.Suggestions) == 0 {
			continue
		}
		word := e.Suggestions[0]
		syn := d.lookup.Synonyms(tag, word)
		errors[i].Suggestions = thesaurus.Augment(e.Suggestions, syn, 10)
	}
	return errors
}

func toResultMatches(matches []ruleengine.Match) []resultcache.Match {
	out := make([]resultcache.Match, len(matches))
	for i, m := range matches {
		flags := resultcache.FlagDefaultRule
		if m.IsStyleRule {
			flags = resultcache.FlagStyleRule
		}
		out[i] = resultcache.Match{
			Start:        m.Start,
			Length:       m.Length,
			RuleID:       strconv.Itoa(m.RuleID),
			Suggestions:  m.Suggestions,
			ShortComment: m.ShortComment,
			FullComment:  m.FullComment,
			Type:         flags,
		}
	}
	return out
}

func toErrorResults(matches []resultcache.Match) []ErrorResult {
	out := make([]ErrorResult, len(matches))
	for i, m := range matches {
		out[i] = ErrorResult{
			Start: m.Start, Length: m.Length, RuleID: m.RuleID,
			Suggestions: m.Suggestions, ShortComment: m.ShortComment,
			FullComment: m.FullComment, Type: m.Type,
		}
	}
	return out
}

func filterIgnored(errors []ErrorResult, store *ignorestore.Store, flat int) []ErrorResult {
	kept := errors[:0:0]
	for _, e := range errors {
		if store.IsIgnored(flat, e.RuleID, e.Start, e.Length) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// Reset implements checkqueue.Document: drops every cached result so the
// next get_check_results re-derives the document from scratch.
func (d *Document) Reset() {
	d.sentence = resultcache.New()
	for i := range d.textLevel {
		d.textLevel[i] = resultcache.New()
	}
	d.ai = resultcache.New()
	d.aiSuggestion = resultcache.New()
}

// Dispose implements checkqueue.Document.
func (d *Document) Dispose() {
	d.mu.Lock()
	d.disposed = true
	d.mu.Unlock()
	d.cache.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (d *Document) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

var _ checkqueue.Document = (*Document)(nil)
