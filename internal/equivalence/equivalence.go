// Package equivalence decides whether a flat paragraph string (with
// zero-width-space footnote sentinels) and a text paragraph string (with
// rendered footnote labels) describe the same paragraph (§4.1). It is a hot
// path: the heuristic mapping fallback (§4.4.3) calls it on every candidate
// pair, so it must stay allocation-light and never panic.
package equivalence

// ZeroWidthSpace is the sentinel the flat string uses to mark a footnote
// anchor (§6).
const ZeroWidthSpace = '​'

// MaxNoteChar is the widest a rendered footnote label is ever allowed to be
// (digits or small Roman numerals, §4.1).
const MaxNoteChar = 7

// IsEqualText reports whether flat and text agree on every non-sentinel
// character, under some assignment of rendered footnote widths in
// 1..=MaxNoteChar for each offset listed in footnotes.
//
// footnotes holds byte offsets into flat. An offset that is negative or
// ≥ len(flat), or not itself pointing at a zero-width space, is an
// "impossible offset" (§7 FootnoteOutOfRange) and causes IsEqualText to
// return false rather than panic.
func IsEqualText(flat, text string, footnotes []int) bool {
	for _, off := range footnotes {
		if off < 0 || off >= len(flat) {
			return false
		}
	}

	if len(footnotes) == 0 {
		return stripZWS(flat) == stripZWS(text)
	}

	return matchFromEnd(flat, text, footnotes)
}

// stripZWS removes every zero-width space from s.
func stripZWS(s string) string {
	if indexRune(s, ZeroWidthSpace) < 0 {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ZeroWidthSpace {
			out = append(out, r)
		}
	}
	return string(out)
}

func indexRune(s string, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// matchFromEnd walks the footnote anchor list from the end: it peels off
// the suffix after the last footnote (compared exactly, after zero-width
// removal), then for each interior footnote gap tries every render width
// 1..=MaxNoteChar until the gap matches, finally requiring the prefix
// before the first footnote to match exactly.
func matchFromEnd(flat, text string, footnotes []int) bool {
	flatRunes := []rune(flat)
	textRunes := []rune(text)

	// Sentinel footnote runes in flat are single zero-width-space runes,
	// but footnotes gives byte offsets; convert to rune indices.
	runeOffsets := make([]int, len(footnotes))
	byteToRune := make(map[int]int, len(flatRunes))
	runeIdx := 0
	for byteIdx := range flat {
		byteToRune[byteIdx] = runeIdx
		runeIdx++
	}
	for i, off := range footnotes {
		ri, ok := byteToRune[off]
		if !ok {
			return false
		}
		if flatRunes[ri] != ZeroWidthSpace {
			return false
		}
		runeOffsets[i] = ri
	}

	// Suffix after the last footnote must match exactly once zero-width
	// spaces are stripped (there should be none left after the last
	// footnote, but strip defensively).
	lastFlatSuffix := stripRuneZWS(flatRunes[runeOffsets[len(runeOffsets)-1]+1:])
	flatCursor := len(flatRunes)
	textCursor := len(textRunes)
	if len(lastFlatSuffix) > textCursor {
		return false
	}
	suffixStart := textCursor - len(lastFlatSuffix)
	if string(textRunes[suffixStart:textCursor]) != string(lastFlatSuffix) {
		return false
	}
	textCursor = suffixStart
	flatCursor = runeOffsets[len(runeOffsets)-1]

	// Walk interior footnotes from the end towards the start.
	for i := len(runeOffsets) - 1; i >= 0; i-- {
		gapEnd := flatCursor
		var gapStart int
		if i == 0 {
			gapStart = 0
		} else {
			gapStart = runeOffsets[i-1] + 1
		}
		gap := stripRuneZWS(flatRunes[gapStart:gapEnd])

		// In text, the gap precedes its footnote's rendered label, which in
		// turn precedes whatever was already matched to the right:
		// ... gap label [already-consumed].
		matched := false
		for width := 1; width <= MaxNoteChar; width++ {
			needLen := len(gap) + width
			if needLen > textCursor {
				continue
			}
			candidateStart := textCursor - needLen
			beforeLabel := textRunes[candidateStart : candidateStart+len(gap)]
			if string(beforeLabel) != string(gap) {
				continue
			}
			// The label itself (textRunes[candidateStart+len(gap):textCursor])
			// is accepted as-is: any sequence of width runes stands for the
			// rendered footnote number, so no further check is needed.
			textCursor = candidateStart
			matched = true
			break
		}
		if !matched {
			return false
		}
		if i == 0 {
			flatCursor = 0
		} else {
			flatCursor = runeOffsets[i-1]
		}
	}

	return string(stripRuneZWS(flatRunes[:flatCursor])) == string(textRunes[:textCursor])
}

func stripRuneZWS(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if r != ZeroWidthSpace {
			out = append(out, r)
		}
	}
	return out
}
