package orchestrator

import (
	"unicode"

	"github.com/writingtool-org/checkengine/internal/resultcache"
	"github.com/writingtool-org/checkengine/internal/ruleengine"
)

// splitSentences breaks text into sentences at '.', '!', '?' followed by
// whitespace and an uppercase (or digit-leading) next word, tracking each
// sentence's rune offset within the paragraph. It is a heuristic, not a
// locale-aware tokenizer: the real boundary detection lives in the
// host-supplied rule engine, which receives these spans only to anchor its
// own diagnostics.
func splitSentences(text string) []ruleengine.Sentence {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var sentences []ruleengine.Sentence
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i + 1
		if end >= len(runes) {
			break
		}
		if !unicode.IsSpace(runes[end]) {
			continue
		}
		j := end
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j >= len(runes) {
			break
		}
		if next := runes[j]; !unicode.IsUpper(next) && !unicode.IsDigit(next) {
			continue
		}
		sentences = append(sentences, ruleengine.Sentence{Start: start, Text: string(runes[start:end])})
		start = j
		i = j - 1
	}
	sentences = append(sentences, ruleengine.Sentence{Start: start, Text: string(runes[start:])})
	return sentences
}

// filterOverlapping implements filter_overlapping_errors (§4.7 step 5).
// errors must already be sorted by (start, -length, rule_id,
// suggestion_count_desc).
func filterOverlapping(errors []ErrorResult, drop bool) []ErrorResult {
	if len(errors) < 2 {
		return errors
	}
	if drop {
		return discardWeaker(errors)
	}
	return splitOverlaps(errors)
}

func overlaps(a, b ErrorResult) bool {
	return a.Start < b.Start+b.Length && b.Start < a.Start+a.Length
}

// discardWeaker keeps, among any mutually overlapping group, only the
// strongest error by the §4.7 step-5 tie-break chain.
func discardWeaker(errors []ErrorResult) []ErrorResult {
	kept := make([]bool, len(errors))
	for i := range kept {
		kept[i] = true
	}
	for i := 0; i < len(errors); i++ {
		if !kept[i] {
			continue
		}
		for j := i + 1; j < len(errors); j++ {
			if !kept[j] || !overlaps(errors[i], errors[j]) {
				continue
			}
			if stronger(errors[i], errors[j]) {
				kept[j] = false
				continue
			}
			// j is stronger, or the chain ties and the later-indexed
			// candidate wins.
			kept[i] = false
			break
		}
	}
	out := errors[:0:0]
	for i, e := range errors {
		if kept[i] {
			out = append(out, e)
		}
	}
	return out
}

// stronger reports whether b beats a under the step-5 tie-break chain. A
// strict "b is stronger" answer; ties (including the final stable
// tie-break, which always favours the later-indexed candidate and is
// handled by the caller's iteration order) return false.
func stronger(b, a ErrorResult) bool {
	bDefault := b.Type.Has(resultcache.FlagDefaultRule) && !b.Type.Has(resultcache.FlagStyleRule) && !b.Type.Has(resultcache.FlagAIRule)
	aDefault := a.Type.Has(resultcache.FlagDefaultRule) && !a.Type.Has(resultcache.FlagStyleRule) && !a.Type.Has(resultcache.FlagAIRule)
	if bDefault != aDefault {
		return bDefault
	}

	bOne, aOne := len(b.Suggestions) == 1, len(a.Suggestions) == 1
	if bOne != aOne {
		return bOne
	}

	bAny, aAny := len(b.Suggestions) > 0, len(a.Suggestions) > 0
	if bAny != aAny {
		return bAny
	}

	return false
}

// splitOverlaps clips the lower-priority (later-sorted) side of each
// overlapping pair so both survive disjoint. Applied pairwise in sorted
// order, two nested overlaps become three disjoint ranges as specified.
func splitOverlaps(errors []ErrorResult) []ErrorResult {
	out := append([]ErrorResult(nil), errors...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if !overlaps(out[i], out[j]) {
				continue
			}
			// out[i] sorted ahead of out[j] is the higher-priority side;
			// clip j's range to start where i ends.
			newStart := out[i].Start + out[i].Length
			if newStart <= out[j].Start {
				continue
			}
			shrink := newStart - out[j].Start
			out[j].Start = newStart
			out[j].Length -= shrink
			if out[j].Length < 0 {
				out[j].Length = 0
			}
		}
	}
	kept := out[:0:0]
	for _, e := range out {
		if e.Length > 0 {
			kept = append(kept, e)
		}
	}
	return kept
}
