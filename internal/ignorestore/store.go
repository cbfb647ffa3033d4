// Package ignorestore holds the set of matches the user has told the
// engine to stop flagging (§4.2). Ignores are keyed by flat paragraph index
// and survive a document-cache rebuild; only a structural shift moves them.
package ignorestore

import "sync"

// LangIgnore is an ignore entry that also carries language information, so
// a later spell-check pass can restore the mark if the word's language
// changes.
type LangIgnore struct {
	Offset   int
	Length   int
	Locale   string
	RuleID   string
}

// Store is the keyed set of suppressed matches plus the parallel
// language-carrying ignore list, both indexed by flat paragraph index.
type Store struct {
	mu      sync.RWMutex
	byRule  map[int]map[string]map[int]struct{} // flatIndex -> ruleID -> offset set
	byLang  map[int][]LangIgnore
}

// New creates an empty ignore store.
func New() *Store {
	return &Store{
		byRule: make(map[int]map[string]map[int]struct{}),
		byLang: make(map[int][]LangIgnore),
	}
}

// Insert records that ruleID at charOffset in flatIndex is ignored.
func (s *Store) Insert(flatIndex int, ruleID string, charOffset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byRule, ok := s.byRule[flatIndex]
	if !ok {
		byRule = make(map[string]map[int]struct{})
		s.byRule[flatIndex] = byRule
	}
	offsets, ok := byRule[ruleID]
	if !ok {
		offsets = make(map[int]struct{})
		byRule[ruleID] = offsets
	}
	offsets[charOffset] = struct{}{}
}

// InsertLang records a language-carrying ignore, used to restore spell
// check marks when the ignored word's surrounding language changes.
func (s *Store) InsertLang(flatIndex int, entry LangIgnore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byLang[flatIndex] = append(s.byLang[flatIndex], entry)
}

// Remove deletes a single ignore entry, if present.
func (s *Store) Remove(flatIndex int, ruleID string, charOffset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byRule, ok := s.byRule[flatIndex]
	if !ok {
		return
	}
	offsets, ok := byRule[ruleID]
	if !ok {
		return
	}
	delete(offsets, charOffset)
	if len(offsets) == 0 {
		delete(byRule, ruleID)
	}
	if len(byRule) == 0 {
		delete(s.byRule, flatIndex)
	}
}

// IsIgnored reports whether a match of ruleID at [offset, offset+length) in
// flatIndex is ignored: it is if any offset recorded for ruleID in that
// paragraph lies within [offset, offset+length).
func (s *Store) IsIgnored(flatIndex int, ruleID string, offset, length int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byRule, ok := s.byRule[flatIndex]
	if !ok {
		return false
	}
	offsets, ok := byRule[ruleID]
	if !ok {
		return false
	}
	for o := range offsets {
		if o >= offset && o < offset+length {
			return true
		}
	}
	return false
}

// Paragraphs lists every flat index that has at least one ignore entry of
// either kind.
func (s *Store) Paragraphs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[int]struct{})
	for idx := range s.byRule {
		seen[idx] = struct{}{}
	}
	for idx := range s.byLang {
		seen[idx] = struct{}{}
	}
	result := make([]int, 0, len(seen))
	for idx := range seen {
		result = append(result, idx)
	}
	return result
}

// LangIgnores returns a copy of the language-carrying ignores for flatIndex.
func (s *Store) LangIgnores(flatIndex int) []LangIgnore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.byLang[flatIndex]
	out := make([]LangIgnore, len(src))
	copy(out, src)
	return out
}

// RuleSnapshot is one persisted byRule ignore: flatIndex/ruleID/offset.
type RuleSnapshot struct {
	FlatIndex int
	RuleID    string
	Offset    int
}

// Snapshot returns the full ignore set in a form the persistence layer can
// serialise directly.
func (s *Store) Snapshot() ([]RuleSnapshot, map[int][]LangIgnore) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rules []RuleSnapshot
	for idx, byRuleID := range s.byRule {
		for ruleID, offsets := range byRuleID {
			for offset := range offsets {
				rules = append(rules, RuleSnapshot{FlatIndex: idx, RuleID: ruleID, Offset: offset})
			}
		}
	}
	lang := make(map[int][]LangIgnore, len(s.byLang))
	for idx, entries := range s.byLang {
		cp := make([]LangIgnore, len(entries))
		copy(cp, entries)
		lang[idx] = cp
	}
	return rules, lang
}

// Restore replaces the store's contents with a previously captured
// Snapshot, as produced by a config-fingerprint-validated persisted blob.
func (s *Store) Restore(rules []RuleSnapshot, lang map[int][]LangIgnore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRule = make(map[int]map[string]map[int]struct{})
	for _, r := range rules {
		byRuleID, ok := s.byRule[r.FlatIndex]
		if !ok {
			byRuleID = make(map[string]map[int]struct{})
			s.byRule[r.FlatIndex] = byRuleID
		}
		offsets, ok := byRuleID[r.RuleID]
		if !ok {
			offsets = make(map[int]struct{})
			byRuleID[r.RuleID] = offsets
		}
		offsets[r.Offset] = struct{}{}
	}
	s.byLang = make(map[int][]LangIgnore, len(lang))
	for idx, entries := range lang {
		cp := make([]LangIgnore, len(entries))
		copy(cp, entries)
		s.byLang[idx] = cp
	}
}

// Shift translates every ignore entry after a structural edit, exactly as
// resultcache.Cache.Shift does: entries strictly before `from` are kept at
// their index, entries in [from, to) are dropped (the edited range), and
// entries at or after `to` move by newSize-oldSize.
func (s *Store) Shift(from, to, oldSize, newSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delta := newSize - oldSize

	s.byRule = shiftIndexedMap(s.byRule, from, to, delta)
	s.byLang = shiftIndexedLangMap(s.byLang, from, to, delta)
}

func shiftIndexedMap(m map[int]map[string]map[int]struct{}, from, to, delta int) map[int]map[string]map[int]struct{} {
	out := make(map[int]map[string]map[int]struct{}, len(m))
	for idx, v := range m {
		switch {
		case idx < from:
			out[idx] = v
		case idx >= to:
			out[idx+delta] = v
		default:
			// inside the edited range: dropped
		}
	}
	return out
}

func shiftIndexedLangMap(m map[int][]LangIgnore, from, to, delta int) map[int][]LangIgnore {
	out := make(map[int][]LangIgnore, len(m))
	for idx, v := range m {
		switch {
		case idx < from:
			out[idx] = v
		case idx >= to:
			out[idx+delta] = v
		default:
		}
	}
	return out
}
