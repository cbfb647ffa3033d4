// Package aiadapter implements the AI Detection Adapter (§4.8): it asks a
// remote model for a corrected or reformulated paragraph, re-tokenises the
// result locally, and reduces the rewrite to a minimal list of suggested
// edits via a language-specific detection rule.
package aiadapter

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/writingtool-org/checkengine/internal/ruleengine"
)

// Mode selects which remote instruction to send.
type Mode int

const (
	ModeGrammar Mode = iota
	ModeRewrite
)

// Edit is one minimal suggested change against the original paragraph.
type Edit struct {
	Start      int
	Length     int
	Suggestion string
}

// Remote is the host-supplied AI endpoint (§6 item 6): a single string in,
// a single string out, no streaming.
type Remote interface {
	Complete(ctx context.Context, instruction, text string, temperature, topP float64, locale language.Tag) (string, error)
}

// DetectionRule reduces an (original, rewrite) pair to minimal edits for
// one language. Implementations are supplied per language; Adapter falls
// back to a generic rule when none is registered.
type DetectionRule interface {
	Detect(original, rewrite string) []Edit
}

// SpellBypass reports whether the host's spell service accepts word,
// letting the grammar-mode filter ignore the local dictionary-spell rule
// for it (§4.8: "bypassed if the host spell service accepts the word").
type SpellBypass interface {
	Accepts(ctx context.Context, tag language.Tag, word string) bool
}

const dictionarySpellRuleID = "SPELL_DICTIONARY"

// Adapter ties a Remote endpoint, a per-language detection rule table, and
// the local rule engine used to validate grammar-mode rewrites.
type Adapter struct {
	remote  Remote
	rules   map[string]DetectionRule
	generic DetectionRule
	spell   SpellBypass
}

// New builds an Adapter. generic is used for any language absent from
// rules; spell may be nil, in which case the dictionary-spell bypass never
// applies.
func New(remote Remote, rules map[string]DetectionRule, generic DetectionRule, spell SpellBypass) *Adapter {
	return &Adapter{remote: remote, rules: rules, generic: generic, spell: spell}
}

func (a *Adapter) ruleFor(tag language.Tag) DetectionRule {
	if r, ok := a.rules[tag.String()]; ok {
		return r
	}
	return a.generic
}

func instructionFor(mode Mode) string {
	switch mode {
	case ModeRewrite:
		return "reformulate this paragraph while preserving its meaning"
	default:
		return "correct any grammar, spelling, or punctuation errors in this paragraph"
	}
}

// Analyze requests a rewrite for text, reduces it to edits, and — in
// grammar mode — drops any edit whose span the local engine still flags as
// an error in the rewrite, so only suggestions that are themselves clean
// survive (§4.8).
func (a *Adapter) Analyze(ctx context.Context, mode Mode, text string, locale language.Tag, local ruleengine.Engine) ([]Edit, error) {
	rewrite, err := a.remote.Complete(ctx, instructionFor(mode), text, 0.2, 0.9, locale)
	if err != nil {
		return nil, fmt.Errorf("aiadapter: remote call failed: %w", err)
	}

	rule := a.ruleFor(locale)
	if rule == nil {
		return nil, nil
	}
	edits := rule.Detect(text, rewrite)
	if mode != ModeGrammar || len(edits) == 0 {
		return edits, nil
	}

	if err := local.SetLanguage(locale); err != nil {
		return edits, nil
	}
	local.ActivateUpTo(ruleengine.HandlingParagraph)
	matches, err := local.Check(ctx, []ruleengine.Sentence{{Start: 0, Text: rewrite}}, ruleengine.HandlingParagraph)
	if err != nil {
		// RuleEngineFailure (§7): treat as no local corroboration available,
		// keep every candidate edit rather than silently dropping them all.
		return edits, nil
	}

	clean := edits[:0:0]
	for _, e := range edits {
		if !overlapsUncleanMatch(e, matches, a.spell, ctx, locale) {
			clean = append(clean, e)
		}
	}
	return clean, nil
}

func overlapsUncleanMatch(e Edit, matches []ruleengine.Match, spell SpellBypass, ctx context.Context, locale language.Tag) bool {
	for _, m := range matches {
		if m.RuleID == 0 {
			continue
		}
		if !spansOverlap(e.Start, e.Length, m.Start, m.Length) {
			continue
		}
		if isDictionarySpellMatch(m) && spell != nil {
			word := wordAt(m)
			if spell.Accepts(ctx, locale, word) {
				continue
			}
		}
		return true
	}
	return false
}

func isDictionarySpellMatch(m ruleengine.Match) bool {
	return m.ShortComment == dictionarySpellRuleID
}

// wordAt has no text to slice without the rewrite string on hand; callers
// that need the flagged word pass it through ShortComment/FullComment from
// the rule engine, which is how the host's spell rule already reports it.
func wordAt(m ruleengine.Match) string {
	return m.FullComment
}

func spansOverlap(aStart, aLen, bStart, bLen int) bool {
	aEnd, bEnd := aStart+aLen, bStart+bLen
	return aStart < bEnd && bStart < aEnd
}
