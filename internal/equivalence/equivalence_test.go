package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/writingtool-org/checkengine/internal/equivalence"
)

func TestIsEqualText_NoFootnotes(t *testing.T) {
	assert.True(t, equivalence.IsEqualText("a b c", "a b c", nil))
	assert.False(t, equivalence.IsEqualText("a b c", "a b d", nil))
	assert.True(t, equivalence.IsEqualText("", "", nil))
}

func TestIsEqualText_SingleFootnote(t *testing.T) {
	flat := "Hello​world"
	footnotes := []int{len("Hello")}
	assert.True(t, equivalence.IsEqualText(flat, "Hello1world", footnotes))
	assert.True(t, equivalence.IsEqualText(flat, "Helloiworld", footnotes))
	assert.True(t, equivalence.IsEqualText(flat, "Helloivworld", footnotes))
	assert.False(t, equivalence.IsEqualText(flat, "Helloworld", footnotes))
	assert.False(t, equivalence.IsEqualText(flat, "Hello1wrold", footnotes))
}

func TestIsEqualText_FootnoteAtEnd(t *testing.T) {
	flat := "The end​"
	footnotes := []int{len("The end")}
	assert.True(t, equivalence.IsEqualText(flat, "The end12", footnotes))
}

func TestIsEqualText_MultipleFootnotes(t *testing.T) {
	flat := "A​B​C"
	footnotes := []int{len("A"), len("A​B")}
	assert.True(t, equivalence.IsEqualText(flat, "A1B12C", footnotes))
	assert.False(t, equivalence.IsEqualText(flat, "A1BC", footnotes))
}

func TestIsEqualText_OutOfRangeOffset(t *testing.T) {
	flat := "short"
	assert.False(t, equivalence.IsEqualText(flat, "short", []int{100}))
	assert.False(t, equivalence.IsEqualText(flat, "short", []int{-1}))
}

func TestIsEqualText_TrailingZWSNotListed(t *testing.T) {
	// A zero-width space not present in the footnote list is still
	// invisible once stripped, so the strings are equal.
	flat := "abc​"
	assert.True(t, equivalence.IsEqualText(flat, "abc", nil))
}
