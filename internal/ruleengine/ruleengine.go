// Package ruleengine defines the grammar/style rule engine contract (§6
// item 5): a language-settable collaborator that checks tokenised text and
// returns matches. The engine itself is an external collaborator the host
// supplies; this package only describes the boundary and a null
// implementation for unsupported languages and for filling queue holes
// without blocking on a real engine.
package ruleengine

import (
	"context"

	"golang.org/x/text/language"
)

// Sentence is one unit of text the engine checks, with its offset within
// the paragraph it came from.
type Sentence struct {
	Start int
	Text  string
}

// Handling selects how deep a check runs; cache classes map 1:1 onto rule
// classes the engine activates up to.
type Handling int

const (
	// HandlingSentence runs only sentence-local rules (cache class 0).
	HandlingSentence Handling = iota
	// HandlingParagraph activates rules that look at a whole paragraph.
	HandlingParagraph
	// HandlingMultiParagraph activates the widest-window text-level rules.
	HandlingMultiParagraph
)

// Match is one rule hit, in the vocabulary resultcache.Match mirrors.
type Match struct {
	Start        int
	Length       int
	RuleID       int
	Suggestions  []string
	ShortComment string
	FullComment  string
	IsStyleRule  bool
	IsDefault    bool
}

// Engine is the host-supplied grammar/style checker (§6 item 5).
type Engine interface {
	// SetLanguage switches the active rule set; implementations may treat
	// this as a no-op if the language is already active.
	SetLanguage(tag language.Tag) error
	// ActivateUpTo restricts which rule classes run on the next Check call.
	ActivateUpTo(handling Handling)
	// Check runs the currently activated rules over sentences.
	Check(ctx context.Context, sentences []Sentence, handling Handling) ([]Match, error)
}

// Null is the engine used when a paragraph's language has no configured
// rule set (§4.6 step 3): it always succeeds with zero matches, so a queue
// entry still produces a cache row and fills the hole instead of leaving it
// perpetually absent.
type Null struct{}

func (Null) SetLanguage(language.Tag) error { return nil }
func (Null) ActivateUpTo(Handling)          {}
func (Null) Check(context.Context, []Sentence, Handling) ([]Match, error) {
	return nil, nil
}

var _ Engine = Null{}
