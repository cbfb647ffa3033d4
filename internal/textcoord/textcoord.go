// Package textcoord defines the two coordinate systems that name a
// paragraph (§3): the dense "flat" index used by the host's linear
// iterator, and the typed TextCoord used by the host's per-kind enumerator.
package textcoord

import "fmt"

// Kind is one of the seven containers a text paragraph can live in.
type Kind int

const (
	// Unknown marks a flat paragraph that could not be mapped to any typed
	// text paragraph (e.g. automatic headings, graphical-element labels).
	Unknown Kind = iota
	Endnote
	Footnote
	HeaderFooter
	Text
	Table
	Shape
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Endnote:
		return "endnote"
	case Footnote:
		return "footnote"
	case HeaderFooter:
		return "header_footer"
	case Text:
		return "text"
	case Table:
		return "table"
	case Shape:
		return "shape"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// AllKinds lists every typed kind in the mapping order §4.4.3 uses:
// footnotes and endnotes first, then header/footer and shape, then
// text/table last.
var AllKinds = []Kind{Footnote, Endnote, HeaderFooter, Shape, Text, Table}

// Coord names a single paragraph within one typed container.
type Coord struct {
	Kind  Kind
	Index int
}

// IsUnknown reports whether this coordinate is the opaque Unknown kind; per
// the open question in §9, Unknown.Index must never be treated as a text
// index — it is only ever derived from the flat index and must be
// re-derived from the flat side, never read back.
func (c Coord) IsUnknown() bool { return c.Kind == Unknown }

// UnknownAt builds the opaque placeholder coordinate for flat index n. The
// Index field here intentionally holds the flat index for debugging only;
// no code may read it back as a text position.
func UnknownAt(flatIndex int) Coord {
	return Coord{Kind: Unknown, Index: flatIndex}
}
