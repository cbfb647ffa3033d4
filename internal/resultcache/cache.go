// Package resultcache implements the per-rule-class match cache (§4.3). A
// cache holds, per flat paragraph index, one of three states: absent ("not
// yet checked"), empty-but-present ("checked, no matches"), or a populated
// match vector.
package resultcache

import "sync"

// TypeFlag enumerates the bit-flags a match carries about its own nature,
// used by the overlap filter (§4.7.5) and the direct-speech filter (§4.4.5).
type TypeFlag int

const (
	FlagDefaultRule TypeFlag = 1 << iota
	FlagStyleRule
	FlagPunctuationRule
	FlagAIRule
)

// Has reports whether flags contains flag.
func (flags TypeFlag) Has(flag TypeFlag) bool { return flags&flag != 0 }

// Match is a single rule hit within a paragraph.
type Match struct {
	Start        int
	Length       int
	RuleID       string
	Suggestions  []string
	ShortComment string
	FullComment  string
	Type         TypeFlag
}

// entry distinguishes "absent" from "present but empty" without relying on
// a nil vs. empty-non-nil slice convention, which is easy to get wrong
// across package boundaries.
type entry struct {
	present bool
	matches []Match
}

// Cache is one per-rule-class result cache. The zero value is not usable;
// call New.
type Cache struct {
	mu      sync.RWMutex
	entries map[int]entry
}

// New creates an empty result cache.
func New() *Cache {
	return &Cache{entries: make(map[int]entry)}
}

// Get returns the matches for flatIndex and whether an entry exists at all
// (as opposed to never having been checked).
func (c *Cache) Get(flatIndex int) ([]Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[flatIndex]
	if !ok {
		return nil, false
	}
	return e.matches, true
}

// Put stores the checked matches for flatIndex. Passing a nil or empty
// slice still marks the paragraph as checked-with-no-matches.
func (c *Cache) Put(flatIndex int, matches []Match) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[flatIndex] = entry{present: true, matches: matches}
}

// Remove deletes the entry for flatIndex, reverting it to "not yet checked".
func (c *Cache) Remove(flatIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, flatIndex)
}

// RemoveByRuleID deletes every match with the given rule id across all
// paragraphs and returns the flat indices that were touched, so callers
// know which paragraphs to re-mark.
func (c *Cache) RemoveByRuleID(ruleID string) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var touched []int
	for idx, e := range c.entries {
		if !e.present {
			continue
		}
		filtered := e.matches[:0:0]
		changed := false
		for _, m := range e.matches {
			if m.RuleID == ruleID {
				changed = true
				continue
			}
			filtered = append(filtered, m)
		}
		if changed {
			c.entries[idx] = entry{present: true, matches: filtered}
			touched = append(touched, idx)
		}
	}
	return touched
}

// Shift applies a structural edit (from, to) that replaced oldSize
// paragraphs with newSize paragraphs: entries before `from` are untouched,
// entries in [from, to) are dropped (they no longer exist), and entries at
// or after `to` are renumbered by newSize-oldSize.
func (c *Cache) Shift(from, to, oldSize, newSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delta := newSize - oldSize
	shifted := make(map[int]entry, len(c.entries))
	for idx, e := range c.entries {
		switch {
		case idx < from:
			shifted[idx] = e
		case idx >= to:
			shifted[idx+delta] = e
		default:
			// paragraph in the edited range: its cache row is gone.
		}
	}
	c.entries = shifted
}

// SnapshotEntry is one row of a Cache's persisted form (§6 persisted state).
type SnapshotEntry struct {
	FlatIndex int
	Matches   []Match
}

// Snapshot returns every present entry, for serialisation by the
// persistence layer. The zero value of the returned slice means "cache
// fully empty", not "never checked" — callers restore it with Restore.
func (c *Cache) Snapshot() []SnapshotEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]SnapshotEntry, 0, len(c.entries))
	for idx, e := range c.entries {
		if !e.present {
			continue
		}
		out = append(out, SnapshotEntry{FlatIndex: idx, Matches: e.matches})
	}
	return out
}

// Restore replaces the cache's contents with a previously captured
// Snapshot. It does not validate flat indices against any paragraph count;
// the caller is expected to have already confirmed the config fingerprint
// and paragraph layout still match.
func (c *Cache) Restore(entries []SnapshotEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int]entry, len(entries))
	for _, se := range entries {
		c.entries[se.FlatIndex] = entry{present: true, matches: se.Matches}
	}
}

// Holes returns up to limit flat indices within [0, paragraphCount) that
// have no entry at all, in ascending order. Used by the queue worker to
// find work when its list is empty (§4.6 step 1).
func (c *Cache) Holes(paragraphCount, limit int) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var holes []int
	for i := 0; i < paragraphCount && len(holes) < limit; i++ {
		if _, ok := c.entries[i]; !ok {
			holes = append(holes, i)
		}
	}
	return holes
}
