package orchestrator

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/aiadapter"
	"github.com/writingtool-org/checkengine/internal/checkqueue"
	"github.com/writingtool-org/checkengine/internal/resultcache"
	"github.com/writingtool-org/checkengine/internal/ruleengine"
)

// LocaleFor implements checkqueue.Document: it resolves the entry's
// starting paragraph back to a flat index and returns its locale.
func (d *Document) LocaleFor(e checkqueue.Entry) (language.Tag, bool) {
	flat, ok := d.cache.ToFlat(e.Start.Kind, e.Start.Index)
	if !ok {
		return language.Und, false
	}
	loc, ok := d.cache.Locale(flat)
	if !ok {
		return language.Und, false
	}
	return loc.Tag(), true
}

// RunEntry implements checkqueue.Document: it dispatches a queued entry to
// the text-level rule engine or the AI adapter depending on cache class,
// and stores the result in the matching result cache.
func (d *Document) RunEntry(ctx context.Context, e checkqueue.Entry, engine ruleengine.Engine) error {
	flat, ok := d.cache.ToFlat(e.Start.Kind, e.Start.Index)
	if !ok {
		return nil
	}

	switch e.CacheClass {
	case checkqueue.CacheTextLevel1, checkqueue.CacheTextLevel2, checkqueue.CacheTextLevel3:
		return d.runTextLevelEntry(ctx, e, flat, engine)
	case checkqueue.CacheAI:
		return d.runAIEntry(ctx, flat, aiadapter.ModeGrammar, engine)
	case checkqueue.CacheAISuggestion:
		return d.runAIEntry(ctx, flat, aiadapter.ModeRewrite, engine)
	default:
		return nil
	}
}

func (d *Document) runTextLevelEntry(ctx context.Context, e checkqueue.Entry, flat int, engine ruleengine.Engine) error {
	target := d.classCache(e.CacheClass)
	if target == nil {
		return nil
	}

	text := d.cache.ExtractText(e.Start, e.CheckRadius, false, true)
	loc, _ := d.cache.Locale(flat)
	if err := engine.SetLanguage(loc.Tag()); err != nil {
		return fmt.Errorf("orchestrator: set language: %w", err)
	}
	handling := textLevelHandling(e.CacheClass)
	engine.ActivateUpTo(handling)

	matches, err := engine.Check(ctx, splitSentences(text), handling)
	if err != nil {
		// RuleEngineFailure (§7): fill the hole with an empty row instead of
		// propagating, so the worker keeps running.
		target.Put(flat, nil)
		return nil
	}
	target.Put(flat, toResultMatches(matches))
	return nil
}

func (d *Document) classCache(class checkqueue.CacheClass) *resultcache.Cache {
	switch class {
	case checkqueue.CacheTextLevel1:
		return d.textLevel[0]
	case checkqueue.CacheTextLevel2:
		return d.textLevel[1]
	case checkqueue.CacheTextLevel3:
		return d.textLevel[2]
	default:
		return nil
	}
}

func (d *Document) runAIEntry(ctx context.Context, flat int, mode aiadapter.Mode, engine ruleengine.Engine) error {
	if d.aiAdapter == nil {
		return nil
	}
	loc, _ := d.cache.Locale(flat)
	text, ok := d.cache.Paragraph(flat)
	if !ok {
		return nil
	}

	edits, err := d.aiAdapter.Analyze(ctx, mode, text, loc.Tag(), engine)
	if err != nil {
		// RemoteTimeout/RemoteBadResponse (§7): empty suggestion set, no retry
		// from inside the worker.
		d.putAIResult(mode, flat, nil)
		return nil
	}
	d.putAIResult(mode, flat, edits)
	return nil
}

func (d *Document) putAIResult(mode aiadapter.Mode, flat int, edits []aiadapter.Edit) {
	matches := make([]resultcache.Match, len(edits))
	for i, e := range edits {
		matches[i] = resultcache.Match{
			Start: e.Start, Length: e.Length,
			RuleID:      "AI",
			Suggestions: []string{e.Suggestion},
			Type:        resultcache.FlagAIRule,
		}
	}
	if mode == aiadapter.ModeGrammar {
		d.ai.Put(flat, matches)
		return
	}
	d.aiSuggestion.Put(flat, matches)
}
