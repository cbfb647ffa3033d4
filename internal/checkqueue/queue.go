// Package checkqueue implements the Text-Level Check Queue (§4.6): a single
// background worker with a prioritised, de-duplicating task list driving
// multi-paragraph rules.
package checkqueue

import (
	"sync"

	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// CacheClass is one of the six result-cache buckets (§6): lower classes
// fill before higher ones for the same range unless a later entry
// overrides that ordering.
type CacheClass int

const (
	CacheSentence CacheClass = iota
	CacheTextLevel1
	CacheTextLevel2
	CacheTextLevel3
	CacheAI
	CacheAISuggestion
)

// EntryKind distinguishes an ordinary check task from the queue's control
// signals.
type EntryKind int

const (
	EntryCheck EntryKind = iota
	EntryStop
	EntryReset
	EntryDispose
)

// Entry is one unit of queued work (§4.6).
type Entry struct {
	Kind EntryKind

	Start, End      textcoord.Coord
	CacheClass      CacheClass
	CheckRadius     int // < -1 means "covers everything"
	DocID           string
	OverrideRunning bool
}

func (e Entry) malformed() bool {
	if e.Kind != EntryCheck {
		return false
	}
	if e.End.Kind != e.Start.Kind {
		return true
	}
	if e.End.Index <= e.Start.Index {
		return true
	}
	if e.Start.Index < 0 {
		return true
	}
	return false
}

func (e Entry) sameRange(o Entry) bool {
	return e.Start == o.Start && e.End == o.End
}

// Queue is the synchronised task list (§5: "a synchronised list").
type Queue struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Len reports how many entries are queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// AddEntry implements the §4.6 enqueue rules (`add_entry`). It returns false
// if the entry was rejected as malformed or suppressed as redundant.
func (q *Queue) AddEntry(e Entry) bool {
	if e.Kind != EntryCheck {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.entries = append([]Entry{e}, q.entries...)
		return true
	}

	if e.malformed() {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.entries[:0:0]
	for _, existing := range q.entries {
		if isObsolete(existing, e) {
			continue
		}
		kept = append(kept, existing)
	}
	q.entries = kept

	if !e.OverrideRunning && isCoveredByLarger(q.entries, e) {
		return false
	}

	if e.OverrideRunning {
		idx := insertionPoint(q.entries, e)
		q.entries = append(q.entries, Entry{})
		copy(q.entries[idx+1:], q.entries[idx:])
		q.entries[idx] = e
		return true
	}

	q.entries = append(q.entries, e)
	return true
}

// Pop removes and returns the head of the queue.
func (q *Queue) Pop() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// InterruptCheck removes every entry owned by docID (`interrupt_check`,
// §4.6). The `wait` semantics (dropping a partially-processed current item)
// are the worker's responsibility; Queue only owns the pending list.
func (q *Queue) InterruptCheck(docID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.entries[:0:0]
	removed := 0
	for _, e := range q.entries {
		if e.Kind == EntryCheck && e.DocID == docID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return removed
}

// isObsolete reports whether existing becomes redundant once incoming is
// enqueued: same cache class and document, and either incoming covers
// everything (radius < -1) or the ranges match exactly.
func isObsolete(existing, incoming Entry) bool {
	if existing.Kind != EntryCheck {
		return false
	}
	if existing.CacheClass != incoming.CacheClass || existing.DocID != incoming.DocID {
		return false
	}
	if incoming.CheckRadius < -1 {
		return true
	}
	return existing.sameRange(incoming)
}

// isCoveredByLarger reports whether incoming's range is strictly inside an
// existing entry of the same cache class and document.
func isCoveredByLarger(entries []Entry, incoming Entry) bool {
	for _, e := range entries {
		if e.Kind != EntryCheck || e.CacheClass != incoming.CacheClass || e.DocID != incoming.DocID {
			continue
		}
		if e.Start.Kind != incoming.Start.Kind {
			continue
		}
		larger := e.Start.Index <= incoming.Start.Index && e.End.Index >= incoming.End.Index
		if larger && !e.sameRange(incoming) {
			return true
		}
	}
	return false
}

// insertionPoint finds where an override_running entry belongs: just
// before the first existing entry with the same range and a smaller cache
// class index, so the overriding entry runs ahead of those lower-class
// checks.
func insertionPoint(entries []Entry, incoming Entry) int {
	for i, e := range entries {
		if e.Kind == EntryCheck && e.sameRange(incoming) && e.CacheClass < incoming.CacheClass {
			return i
		}
	}
	return len(entries)
}
