package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/writingtool-org/checkengine/internal/resultcache"
	"github.com/writingtool-org/checkengine/internal/ruleengine"
)

func TestSplitSentencesTracksOffsets(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third?")
	assert := assert.New(t)
	if assert.Len(sentences, 3) {
		assert.Equal(ruleengine.Sentence{Start: 0, Text: "First one."}, sentences[0])
		assert.Equal(ruleengine.Sentence{Start: 11, Text: "Second one!"}, sentences[1])
		assert.Equal(ruleengine.Sentence{Start: 23, Text: "Third?"}, sentences[2])
	}
}

func TestSplitSentencesSingleSentenceNoTrailingPunctuation(t *testing.T) {
	sentences := splitSentences("No terminal punctuation here")
	if assert.Len(t, sentences, 1) {
		assert.Equal(t, 0, sentences[0].Start)
	}
}

func defaultRule(start, length int) ErrorResult {
	return ErrorResult{Start: start, Length: length, RuleID: "R1", Type: resultcache.FlagDefaultRule}
}

func styleRule(start, length int) ErrorResult {
	return ErrorResult{Start: start, Length: length, RuleID: "R2", Type: resultcache.FlagStyleRule}
}

func TestFilterOverlappingDiscardPrefersDefaultRule(t *testing.T) {
	errs := []ErrorResult{defaultRule(0, 5), styleRule(2, 5)}
	out := filterOverlapping(errs, true)
	if assert.Len(t, out, 1) {
		assert.Equal(t, "R1", out[0].RuleID)
	}
}

func TestFilterOverlappingDiscardPrefersSingleSuggestion(t *testing.T) {
	many := styleRule(0, 5)
	many.Suggestions = []string{"a", "b", "c"}
	one := styleRule(2, 5)
	one.Suggestions = []string{"x"}
	out := filterOverlapping([]ErrorResult{many, one}, true)
	if assert.Len(t, out, 1) {
		assert.Equal(t, []string{"x"}, out[0].Suggestions)
	}
}

func TestFilterOverlappingSplitClipsLowerPriorityRange(t *testing.T) {
	errs := []ErrorResult{defaultRule(0, 10), styleRule(5, 10)}
	out := filterOverlapping(errs, false)
	if assert.Len(t, out, 2) {
		assert.Equal(t, 0, out[0].Start)
		assert.Equal(t, 10, out[0].Length)
		assert.Equal(t, 10, out[1].Start)
		assert.Equal(t, 5, out[1].Length)
	}
}

func TestFilterOverlappingNonOverlappingUnaffected(t *testing.T) {
	errs := []ErrorResult{defaultRule(0, 2), styleRule(10, 2)}
	out := filterOverlapping(errs, true)
	assert.Len(t, out, 2)
}
