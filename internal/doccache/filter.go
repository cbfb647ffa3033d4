package doccache

import "sort"

// DirectSpeechMode is the three-valued configuration for
// filter_direct_speech (§4.4.5).
type DirectSpeechMode int

const (
	// DirectSpeechAlways strips every non-punctuation match inside an open
	// quote span.
	DirectSpeechAlways DirectSpeechMode = iota
	// DirectSpeechNever disables the filter entirely.
	DirectSpeechNever
	// DirectSpeechStyleOnly strips only style-rule matches inside an open
	// quote span; other non-punctuation matches survive.
	DirectSpeechStyleOnly
)

// QuoteAwareMatch is the minimal shape filter_direct_speech needs from a
// match: its start offset and whether it is a punctuation-rule or
// style-rule match.
type QuoteAwareMatch struct {
	Start         int
	IsPunctuation bool
	IsStyle       bool
}

// FilterDirectSpeech implements §4.4.5: it returns the indices (into
// matches) that should be KEPT. textIdx is the enclosing text-kind
// paragraph; matches whose start is inside one of its open-quote spans are
// dropped unless they're punctuation-rule matches (always kept), or, in
// StyleOnly mode, unless they're not style-rule matches.
func (c *Cache) FilterDirectSpeech(matches []QuoteAwareMatch, textIdx int, mode DirectSpeechMode) []int {
	if mode == DirectSpeechNever {
		kept := make([]int, len(matches))
		for i := range matches {
			kept[i] = i
		}
		return kept
	}

	opening := c.OpeningQuotes(textIdx)
	closing := c.ClosingQuotes(textIdx)

	var kept []int
	for i, m := range matches {
		if m.IsPunctuation {
			kept = append(kept, i)
			continue
		}
		inside := isInsideQuoteSpan(opening, closing, m.Start)
		if !inside {
			kept = append(kept, i)
			continue
		}
		if mode == DirectSpeechStyleOnly && !m.IsStyle {
			kept = append(kept, i)
		}
		// else: dropped.
	}
	return kept
}

// isInsideQuoteSpan reports whether offset falls strictly between an
// opening quote and its matching close, or after an unclosed opening
// inherited from the previous paragraph (a leading -1 in opening).
func isInsideQuoteSpan(opening, closing []int, offset int) bool {
	type event struct {
		pos   int
		open  bool
	}
	var events []event
	startsOpen := false
	for _, o := range opening {
		if o == -1 {
			startsOpen = true
			continue
		}
		events = append(events, event{pos: o, open: true})
	}
	for _, cl := range closing {
		events = append(events, event{pos: cl, open: false})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].pos < events[j].pos })

	state := startsOpen
	for _, e := range events {
		if offset < e.pos {
			break
		}
		state = e.open
		if offset == e.pos {
			// The boundary character itself belongs to whichever state the
			// event establishes.
			break
		}
	}
	return state
}
