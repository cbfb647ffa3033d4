package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writingtool-org/checkengine/internal/doccache"
	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

type fakeHost struct {
	flat  hostcontract.FlatSnapshot
	typed []hostcontract.TypedParagraphs
}

func (f *fakeHost) FlatParagraphs(ctx context.Context) (hostcontract.FlatSnapshot, error) {
	return f.flat, nil
}
func (f *fakeHost) TypedParagraphs(ctx context.Context) ([]hostcontract.TypedParagraphs, error) {
	return f.typed, nil
}
func (f *fakeHost) ViewCursorPosition(ctx context.Context) (hostcontract.ViewCursor, error) {
	return hostcontract.ViewCursor{}, nil
}
func (f *fakeHost) ReplaceParagraphSubstring(ctx context.Context, flatIndex, start, length int, replacement string) error {
	return nil
}

func twoParaHost() *fakeHost {
	en := doclocale.Parse("en-US")
	return &fakeHost{
		flat: hostcontract.FlatSnapshot{
			Paragraphs: []hostcontract.FlatParagraph{
				{Text: "First paragraph.", Locale: en},
				{Text: "Second paragraph.", Locale: en},
			},
		},
		typed: []hostcontract.TypedParagraphs{
			{Kind: textcoord.Text, Paragraphs: []string{"First paragraph.", "Second paragraph."}, Automatic: []bool{false, false}},
		},
	}
}

func setup(t *testing.T) (*doccache.Cache, *fakeHost, *Analyzer) {
	t.Helper()
	host := twoParaHost()
	cache := doccache.New()
	cache.SetHost(host)
	require.NoError(t, cache.Refresh(context.Background()))
	a := New(cache, host, nil)
	return cache, host, a
}

func TestAnalyzeNextPositionHeuristic(t *testing.T) {
	_, _, a := setup(t)

	res, err := a.Analyze(context.Background(), Request{Text: "First paragraph.", Locale: doclocale.Parse("en-US")})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.FlatIndex)

	res2, err := a.Analyze(context.Background(), Request{Text: "Second paragraph.", Locale: doclocale.Parse("en-US")})
	require.NoError(t, err)
	assert.True(t, res2.Found)
	assert.Equal(t, 1, res2.FlatIndex)
}

func TestAnalyzeGetProofResultNeverRefreshes(t *testing.T) {
	_, host, a := setup(t)

	// Mutate the host out from under the cache without refreshing it.
	host.flat.Paragraphs = append(host.flat.Paragraphs, hostcontract.FlatParagraph{
		Text: "A brand new paragraph.", Locale: doclocale.Parse("en-US"),
	})

	res, err := a.Analyze(context.Background(), Request{
		Text:      "A brand new paragraph.",
		Locale:    doclocale.Parse("en-US"),
		ProofInfo: ProofGetProofResult,
	})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Changed)
}

func TestAnalyzeStructuralRefreshOnDeletion(t *testing.T) {
	en := doclocale.Parse("en-US")
	host := &fakeHost{
		flat: hostcontract.FlatSnapshot{Paragraphs: []hostcontract.FlatParagraph{
			{Text: "A.", Locale: en}, {Text: "B.", Locale: en}, {Text: "C.", Locale: en},
		}},
		typed: []hostcontract.TypedParagraphs{
			{Kind: textcoord.Text, Paragraphs: []string{"A.", "B.", "C."}, Automatic: []bool{false, false, false}},
		},
	}
	cache := doccache.New()
	cache.SetHost(host)
	require.NoError(t, cache.Refresh(context.Background()))
	a := New(cache, host, nil)

	_, err := a.Analyze(context.Background(), Request{Text: "A.", Locale: en})
	require.NoError(t, err)

	// Delete the middle paragraph out from under the cache.
	host.flat.Paragraphs = []hostcontract.FlatParagraph{{Text: "A.", Locale: en}, {Text: "C.", Locale: en}}
	host.typed = []hostcontract.TypedParagraphs{
		{Kind: textcoord.Text, Paragraphs: []string{"A.", "C."}, Automatic: []bool{false, false}},
	}

	res, err := a.Analyze(context.Background(), Request{Text: "C.", Locale: en, ProofInfo: ProofMarkParagraph})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.FlatIndex)
	require.NotNil(t, res.Changed)
	assert.Equal(t, 2, cache.Len())
}
