package doccache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

func TestScanQuotesCurly(t *testing.T) {
	opening, closing, endsOpen := scanQuotes(`She said “hello there” and left.`, false)
	require.Len(t, opening, 1)
	require.Len(t, closing, 1)
	assert.False(t, endsOpen)
	assert.Less(t, opening[0], closing[0])
}

func TestScanQuotesCarriesOpenAcrossParagraphs(t *testing.T) {
	_, _, endsOpen := scanQuotes(`“This line never closes.`, false)
	assert.True(t, endsOpen)

	opening, _, endsOpen2 := scanQuotes(`It continues here and closes.”`, true)
	assert.Equal(t, []int{-1}, opening)
	assert.False(t, endsOpen2)
}

func TestScanQuotesStraightInchMarkIgnored(t *testing.T) {
	opening, closing, endsOpen := scanQuotes(`The board is 2"x4" long.`, false)
	assert.Empty(t, opening)
	assert.Empty(t, closing)
	assert.False(t, endsOpen)
}

func TestScanQuotesStraightDialogue(t *testing.T) {
	opening, closing, endsOpen := scanQuotes(`He said "stop now" immediately.`, false)
	require.Len(t, opening, 1)
	require.Len(t, closing, 1)
	assert.False(t, endsOpen)
}

func quoteHost() *fakeHost {
	en := doclocale.Parse("en-US")
	return &fakeHost{
		flat: hostcontract.FlatSnapshot{
			Paragraphs: []hostcontract.FlatParagraph{
				{Text: `She said “stay calm” and smiled.`, Locale: en},
				{Text: `Everyone agreed it was wise.`, Locale: en},
			},
		},
		typed: []hostcontract.TypedParagraphs{
			{
				Kind:       textcoord.Text,
				Paragraphs: []string{`She said “stay calm” and smiled.`, `Everyone agreed it was wise.`},
				Automatic:  []bool{false, false},
			},
		},
	}
}

func TestFilterDirectSpeechDropsMatchInsideQuote(t *testing.T) {
	c := New()
	c.SetHost(quoteHost())
	require.NoError(t, c.Refresh(context.Background()))

	opening := c.OpeningQuotes(0)
	require.Len(t, opening, 1)
	insideOffset := opening[0] + 1

	matches := []QuoteAwareMatch{
		{Start: insideOffset, IsPunctuation: false, IsStyle: false},
		{Start: 0, IsPunctuation: false, IsStyle: false},
	}

	kept := c.FilterDirectSpeech(matches, 0, DirectSpeechAlways)
	assert.Equal(t, []int{1}, kept)

	keptNever := c.FilterDirectSpeech(matches, 0, DirectSpeechNever)
	assert.Equal(t, []int{0, 1}, keptNever)
}

func TestFilterDirectSpeechStyleOnlyKeepsNonStyleMatches(t *testing.T) {
	c := New()
	c.SetHost(quoteHost())
	require.NoError(t, c.Refresh(context.Background()))

	opening := c.OpeningQuotes(0)
	insideOffset := opening[0] + 1

	matches := []QuoteAwareMatch{
		{Start: insideOffset, IsStyle: true},
		{Start: insideOffset, IsStyle: false},
		{Start: insideOffset, IsPunctuation: true},
	}

	kept := c.FilterDirectSpeech(matches, 0, DirectSpeechStyleOnly)
	assert.Equal(t, []int{1, 2}, kept)
}

func TestUpdateQuoteInfoPropagatesUntilStable(t *testing.T) {
	c := New()
	c.SetHost(quoteHost())
	require.NoError(t, c.Refresh(context.Background()))

	// Editing paragraph 0 to leave its quote open must flip paragraph 1's
	// carried-open state too.
	c.UpdateParagraph(0, `She said “stay calm forever.`, nil, doclocale.Parse("en-US"))
	c.UpdateQuoteInfo(0, `She said “stay calm forever.`)

	assert.True(t, c.quoteEndsOpen[0])
	opening1 := c.OpeningQuotes(1)
	require.Len(t, opening1, 1)
	assert.Equal(t, -1, opening1[0])
}
