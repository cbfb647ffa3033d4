// Package doclocale wraps golang.org/x/text/language for the per-paragraph
// locale the document cache tracks (§3), including the multilingual
// sentinel the host uses to flag mixed-language paragraphs.
package doclocale

import (
	"strings"

	"golang.org/x/text/language"
)

// MultilingualLabel is the fixed ASCII prefix a locale variant string
// carries when the host has marked a paragraph as multilingual (§6).
const MultilingualLabel = "zzmultilingual-"

// Locale is a BCP-47 language tag plus the multilingual flag. The zero
// value is the "und" (undetermined) tag.
type Locale struct {
	tag            language.Tag
	multilingual   bool
	variantPayload string
}

// Parse builds a Locale from a BCP-47-ish tag string such as "en-US" or
// the multilingual-sentinel form "en-US-zzmultilingual-something".
func Parse(raw string) Locale {
	if raw == "" {
		return Locale{tag: language.Und}
	}
	base := raw
	multilingual := false
	var payload string
	if idx := strings.Index(raw, MultilingualLabel); idx >= 0 {
		multilingual = true
		base = strings.TrimSuffix(raw[:idx], "-")
		payload = raw[idx+len(MultilingualLabel):]
	}
	tag, err := language.Parse(base)
	if err != nil {
		tag = language.Und
	}
	return Locale{tag: tag, multilingual: multilingual, variantPayload: payload}
}

// Tag returns the underlying BCP-47 tag.
func (l Locale) Tag() language.Tag { return l.tag }

// IsMultilingual reports whether the host flagged this paragraph as mixing
// languages.
func (l Locale) IsMultilingual() bool { return l.multilingual }

// IsUndetermined reports whether no usable tag was supplied.
func (l Locale) IsUndetermined() bool { return l.tag == language.Und }

// String renders the tag, re-attaching the multilingual sentinel if set.
func (l Locale) String() string {
	s := l.tag.String()
	if l.multilingual {
		s += "-" + MultilingualLabel + l.variantPayload
	}
	return s
}

// Equal reports whether two locales name the same tag (ignoring the
// multilingual flag, which is metadata about the paragraph, not the
// language itself).
func (l Locale) Equal(other Locale) bool {
	return l.tag == other.tag
}

// DocLocale picks the most frequently used supported locale among a set of
// per-paragraph locales, per §3's doc_locale field. Paragraphs whose tag is
// not present in supported are ignored. Ties are broken by first
// appearance, matching the stable-iteration behaviour a single linear scan
// naturally gives.
func DocLocale(paragraphLocales []Locale, supported []language.Tag) (Locale, bool) {
	supportedSet := make(map[language.Tag]bool, len(supported))
	for _, t := range supported {
		supportedSet[t] = true
	}

	counts := make(map[language.Tag]int)
	order := make([]language.Tag, 0, len(paragraphLocales))
	for _, loc := range paragraphLocales {
		if loc.IsUndetermined() || !supportedSet[loc.tag] {
			continue
		}
		if counts[loc.tag] == 0 {
			order = append(order, loc.tag)
		}
		counts[loc.tag]++
	}

	if len(order) == 0 {
		return Locale{}, false
	}

	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return Locale{tag: best}, true
}
