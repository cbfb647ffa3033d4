package ignorestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/writingtool-org/checkengine/internal/ignorestore"
)

func TestInsertAndIsIgnored(t *testing.T) {
	s := ignorestore.New()
	s.Insert(2, "rule-a", 10)

	assert.True(t, s.IsIgnored(2, "rule-a", 8, 5))
	assert.False(t, s.IsIgnored(2, "rule-a", 11, 5))
	assert.False(t, s.IsIgnored(2, "rule-b", 10, 1))
	assert.False(t, s.IsIgnored(3, "rule-a", 10, 1))
}

func TestShiftTranslatesKeyedEntries(t *testing.T) {
	s := ignorestore.New()
	s.Insert(1, "rule-a", 3)

	// Scenario 3 from §8: two-paragraph document, first paragraph deleted.
	s.Shift(0, 0, 2, 1)

	assert.False(t, s.IsIgnored(1, "rule-a", 3, 1))
	assert.True(t, s.IsIgnored(0, "rule-a", 3, 1))
}

func TestShiftDropsEditedRange(t *testing.T) {
	s := ignorestore.New()
	s.Insert(5, "rule-a", 0)
	s.Shift(4, 6, 2, 0)

	for _, idx := range s.Paragraphs() {
		assert.NotEqual(t, 5, idx)
	}
}
