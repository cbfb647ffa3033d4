// Package thesaurus defines the synonym-lookup collaborator §4.7 step 6
// uses to augment AI/synonym suggestions, plus an in-memory implementation
// for tests and for locales with no external dictionary configured.
package thesaurus

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Lookup resolves a word to its synonyms in the given language.
type Lookup interface {
	Synonyms(tag language.Tag, word string) []string
}

// InMemory is a static, case-insensitive word-to-synonyms table. It exists
// for tests and as the degenerate "no dictionary configured" collaborator;
// production deployments wire a real thesaurus service behind the same
// interface.
type InMemory struct {
	byLang map[string]map[string][]string
}

// NewInMemory builds an InMemory thesaurus from a language-tag-keyed table.
func NewInMemory(entries map[string]map[string][]string) *InMemory {
	byLang := make(map[string]map[string][]string, len(entries))
	for lang, words := range entries {
		normalized := make(map[string][]string, len(words))
		for word, syns := range words {
			normalized[strings.ToLower(word)] = syns
		}
		byLang[lang] = normalized
	}
	return &InMemory{byLang: byLang}
}

// Synonyms returns word's synonyms for tag, or nil if none are known.
func (m *InMemory) Synonyms(tag language.Tag, word string) []string {
	words, ok := m.byLang[tag.String()]
	if !ok {
		return nil
	}
	return words[strings.ToLower(word)]
}

var _ Lookup = (*InMemory)(nil)

// Augment merges thesaurus synonyms into an existing suggestion list,
// deduplicated and capped at maxLen, preserving the original order and
// appending new entries after it (§4.7 step 6).
func Augment(existing []string, synonyms []string, maxLen int) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, maxLen)
	for _, s := range existing {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) >= maxLen {
			return out
		}
	}
	sorted := append([]string(nil), synonyms...)
	sort.Strings(sorted)
	for _, s := range sorted {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) >= maxLen {
			break
		}
	}
	return out
}
