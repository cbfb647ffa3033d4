package doccache

import (
	"github.com/writingtool-org/checkengine/internal/hostcontract"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// lookaheadWindow bounds how far the table-vs-body disambiguation (§4.4.3)
// follows two candidate chains before giving up and favouring body text.
const lookaheadWindow = 8

// mapHeuristically implements the §4.4.3 fallback used when the host does
// not supply stable node ids. It walks flat positions left to right,
// maintaining a per-kind "next expected text index" cursor, testing every
// kind with paragraphs still outstanding against the current cursor text,
// disambiguating ties by look-ahead, and finally repairing any remaining
// desync against Unknown-tagged slots.
func mapHeuristically(c *Cache, typed []hostcontract.TypedParagraphs) {
	byKind := make(map[textcoord.Kind]*hostcontract.TypedParagraphs)
	for i := range typed {
		byKind[typed[i].Kind] = &typed[i]
		c.toFlat[typed[i].Kind] = negativeSlice(len(typed[i].Paragraphs))
	}

	cursor := map[textcoord.Kind]int{}
	for _, k := range textcoord.AllKinds {
		cursor[k] = 0
	}

	remaining := func(k textcoord.Kind) bool {
		tp, ok := byKind[k]
		return ok && cursor[k] < len(tp.Paragraphs)
	}

	unmatched := 0
	n := len(c.paragraphs)

	for i := 0; i < n; i++ {
		flatText := c.paragraphs[i]
		flatFootnotes := c.footnotes[i]

		var candidateKinds []textcoord.Kind
		for _, k := range textcoord.AllKinds {
			if remaining(k) {
				candidateKinds = append(candidateKinds, k)
			}
		}

		matchedKind, ok := pickCandidate(c, byKind, cursor, candidateKinds, i, flatText, flatFootnotes)
		if !ok {
			c.toText[i] = textcoord.UnknownAt(i)
			unmatched++
			continue
		}
		assignMapping(c, matchedKind, cursor[matchedKind], i)
		cursor[matchedKind]++
	}

	repairDesync(c, byKind, unmatched)
}

// pickCandidate tries each candidate kind's current cursor text against
// flatText. When both Table and Text are candidates and both match, it
// looks ahead to see which chain keeps matching longer, favouring Text on
// an indefinite tie (§4.4.3).
func pickCandidate(
	c *Cache,
	byKind map[textcoord.Kind]*hostcontract.TypedParagraphs,
	cursor map[textcoord.Kind]int,
	candidates []textcoord.Kind,
	flatIdx int,
	flatText string,
	flatFootnotes []int,
) (textcoord.Kind, bool) {
	var matches []textcoord.Kind
	for _, k := range candidates {
		tp, ok := byKind[k]
		if !ok || cursor[k] >= len(tp.Paragraphs) {
			continue
		}
		if isEqualText(flatText, tp.Paragraphs[cursor[k]], flatFootnotes) {
			matches = append(matches, k)
		}
	}

	switch len(matches) {
	case 0:
		return 0, false
	case 1:
		return matches[0], true
	default:
		return disambiguate(c, byKind, cursor, matches, flatIdx), true
	}
}

// disambiguate picks among multiple equally-matching candidate kinds by
// following each chain forward until one diverges from the flat text,
// favouring whichever chain keeps matching longer; an indefinite tie (both
// survive the whole look-ahead window) favours body text.
func disambiguate(
	c *Cache,
	byKind map[textcoord.Kind]*hostcontract.TypedParagraphs,
	cursor map[textcoord.Kind]int,
	matches []textcoord.Kind,
	flatIdx int,
) textcoord.Kind {
	best := matches[0]
	bestRun := chainRunLength(c, byKind[best], cursor[best], flatIdx)
	for _, k := range matches[1:] {
		run := chainRunLength(c, byKind[k], cursor[k], flatIdx)
		if run > bestRun || (run == bestRun && run >= lookaheadWindow && k == textcoord.Text) {
			best = k
			bestRun = run
		}
	}
	return best
}

func chainRunLength(c *Cache, tp *hostcontract.TypedParagraphs, startCursor, flatIdx int) int {
	run := 0
	for step := 0; step < lookaheadWindow; step++ {
		fi := flatIdx + step
		ti := startCursor + step
		if fi >= len(c.paragraphs) || ti >= len(tp.Paragraphs) {
			break
		}
		if !isEqualText(c.paragraphs[fi], tp.Paragraphs[ti], c.footnotes[fi]) {
			break
		}
		run++
	}
	return run
}

func assignMapping(c *Cache, kind textcoord.Kind, textIdx, flatIdx int) {
	c.toText[flatIdx] = textcoord.Coord{Kind: kind, Index: textIdx}
	if slice, ok := c.toFlat[kind]; ok && textIdx < len(slice) {
		slice[textIdx] = flatIdx
	}
}

// repairDesync runs the post-pass described in §4.4.3: exhaustively
// rematch each kind's unmapped entries against Unknown-tagged flat slots.
// If body-text counts still mismatch afterwards, its mapping is cleared and
// redone linearly against the remaining Unknown flat positions, in order,
// with any leftover unmatched text paragraphs left as a desync.
func repairDesync(c *Cache, byKind map[textcoord.Kind]*hostcontract.TypedParagraphs, unmatched int) {
	if unmatched == 0 && countsAlign(c, byKind) {
		return
	}

	unknownFlat := func() []int {
		var out []int
		for i, coord := range c.toText {
			if coord.IsUnknown() {
				out = append(out, i)
			}
		}
		return out
	}

	for kind, tp := range byKind {
		slice := c.toFlat[kind]
		for textIdx, flatIdx := range slice {
			if flatIdx >= 0 {
				continue
			}
			for _, candidate := range unknownFlat() {
				if isEqualText(c.paragraphs[candidate], tp.Paragraphs[textIdx], c.footnotes[candidate]) {
					assignMapping(c, kind, textIdx, candidate)
					break
				}
			}
		}
	}

	bodyTP, hasBody := byKind[textcoord.Text]
	if hasBody {
		bodySlice := c.toFlat[textcoord.Text]
		stillMismatched := countMapped(bodySlice) != len(bodyTP.Paragraphs)
		if stillMismatched {
			// Clear and redo linearly against remaining Unknown flat slots.
			for textIdx, flatIdx := range bodySlice {
				if flatIdx >= 0 {
					c.toText[flatIdx] = textcoord.UnknownAt(flatIdx)
				}
				bodySlice[textIdx] = -1
			}
			remainingText := 0
			for _, candidate := range unknownFlat() {
				if remainingText >= len(bodyTP.Paragraphs) {
					break
				}
				assignMapping(c, textcoord.Text, remainingText, candidate)
				remainingText++
			}
			// Paragraphs from remainingText onward stay unmatched; this is
			// the desync the caller (doccache.Refresh) surfaces via State().
			if remainingText < len(bodyTP.Paragraphs) {
				c.state = Dirty
			}
		}
	}

	if !countsAlign(c, byKind) {
		c.state = Dirty
	}
}

func countMapped(slice []int) int {
	count := 0
	for _, v := range slice {
		if v >= 0 {
			count++
		}
	}
	return count
}

func countsAlign(c *Cache, byKind map[textcoord.Kind]*hostcontract.TypedParagraphs) bool {
	for kind, tp := range byKind {
		if countMapped(c.toFlat[kind]) != len(tp.Paragraphs) {
			return false
		}
	}
	return true
}
