// Package hostcontract defines the interfaces the host word processor must
// satisfy (§6). The engine never talks to the host directly outside these
// interfaces; internal/hostadapter provides one concrete implementation
// backed by a real .docx file for batch/CLI use and tests.
package hostcontract

import (
	"context"

	"github.com/writingtool-org/checkengine/internal/doclocale"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// FlatParagraph is one entry from the host's linear paragraph iterator.
type FlatParagraph struct {
	Text      string // footnotes present as zero-width-space sentinels
	Locale    doclocale.Locale
	Footnotes []int // byte offsets of footnote sentinels within Text
	NodeID    int64 // stable id; zero if the host doesn't supply one
	HasNodeID bool
}

// FlatSnapshot is everything FlatParagraphs returns in one call.
type FlatSnapshot struct {
	Paragraphs           []FlatParagraph
	DocumentElementCount int // only meaningful when any paragraph HasNodeID
}

// Heading marks a heading position within a typed text kind, with its
// outline level (1 = top level).
type Heading struct {
	Index int
	Level int
}

// TypedParagraphs is one typed-text-kind enumeration (§6.2): the rendered
// paragraph strings for that kind, the heading positions within it, and
// any tracked-deletion character offsets per paragraph.
type TypedParagraphs struct {
	Kind              textcoord.Kind
	Paragraphs        []string
	Headings          []Heading
	DeletedCharacters [][]int // parallel to Paragraphs; nil entry means none
	NodeIDs           []int64 // parallel to Paragraphs; empty if unsupported
	Automatic         []bool  // parallel to Paragraphs; true = auto-generated, never checked
}

// ViewCursor is the host's current cursor position.
type ViewCursor struct {
	Kind      textcoord.Kind
	Paragraph int
	Character int
	Text      string // text of the paragraph under the cursor, for matching
}

// Host is the full contract §6 describes. Each method may return an error
// wrapping errs.KindTransientHostCall if the host call itself failed.
type Host interface {
	// FlatParagraphs returns every paragraph the host's linear iterator
	// produces, in flat order.
	FlatParagraphs(ctx context.Context) (FlatSnapshot, error)

	// TypedParagraphs returns the per-kind typed enumeration for every kind
	// the host supports content in.
	TypedParagraphs(ctx context.Context) ([]TypedParagraphs, error)

	// ViewCursorPosition returns the host's current cursor location.
	ViewCursorPosition(ctx context.Context) (ViewCursor, error)

	// ReplaceParagraphSubstring mutates a flat paragraph in place.
	ReplaceParagraphSubstring(ctx context.Context, flatIndex, start, length int, replacement string) error
}
