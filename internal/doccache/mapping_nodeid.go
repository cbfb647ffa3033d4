package doccache

import (
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// mapWithNodeIDs implements §4.4.2: when the host supplies stable node ids,
// each flat position maps to the unique text kind/index whose node-id list
// contains sortedTextIDs[n]. This is O(N*K) in flat count and kind count.
func mapWithNodeIDs(c *Cache, typed []hostcontract.TypedParagraphs) {
	type loc struct {
		kind textcoord.Kind
		idx  int
	}
	byNodeID := make(map[int64]loc)
	for _, tp := range typed {
		for i, id := range tp.NodeIDs {
			byNodeID[id] = loc{kind: tp.Kind, idx: i}
		}
		c.toFlat[tp.Kind] = negativeSlice(len(tp.Paragraphs))
	}

	mappedCount := make(map[textcoord.Kind]int)
	for n, nodeID := range c.sortedTextIDs {
		l, ok := byNodeID[nodeID]
		if !ok {
			c.toText[n] = textcoord.UnknownAt(n)
			continue
		}
		c.toText[n] = textcoord.Coord{Kind: l.kind, Index: l.idx}
		c.toFlat[l.kind][l.idx] = n
		mappedCount[l.kind]++
	}

	desync := false
	for _, tp := range typed {
		if mappedCount[tp.Kind] != len(tp.Paragraphs) {
			desync = true
		}
	}
	if desync {
		c.state = Dirty
		for kind, slice := range c.toFlat {
			c.toFlat[kind] = compactNonNegative(slice)
		}
	}
}

func negativeSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

func compactNonNegative(s []int) []int {
	out := s[:0:0]
	for _, v := range s {
		if v >= 0 {
			out = append(out, v)
		}
	}
	return out
}
