package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile is the YAML rule-profile file a user or admin can drop next to
// the engine: which rule ids and categories are disabled, per language,
// plus the engine version string. It is the configuration half of the
// fingerprint compared against a persisted cache blob (§6 "Persisted
// state") — if the profile changes, every cache on disk is stale.
type Profile struct {
	EngineVersion     string              `yaml:"engine_version"`
	DisabledRuleIDs   []string            `yaml:"disabled_rule_ids"`
	DisabledCategories []string           `yaml:"disabled_categories"`
	PerLanguageDisable map[string][]string `yaml:"per_language_disable"`
}

// LoadProfile reads and parses a rule-profile YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Fingerprint deterministically hashes the profile's effective settings.
// Two Profiles with the same fields in a different slice order produce the
// same fingerprint; that is the point of sorting before hashing.
func (p *Profile) Fingerprint() string {
	rules := append([]string(nil), p.DisabledRuleIDs...)
	sort.Strings(rules)
	cats := append([]string(nil), p.DisabledCategories...)
	sort.Strings(cats)

	langs := make([]string, 0, len(p.PerLanguageDisable))
	for lang := range p.PerLanguageDisable {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	h := sha256.New()
	fmt.Fprintf(h, "engine=%s\n", p.EngineVersion)
	fmt.Fprintf(h, "rules=%v\n", rules)
	fmt.Fprintf(h, "categories=%v\n", cats)
	for _, lang := range langs {
		perLang := append([]string(nil), p.PerLanguageDisable[lang]...)
		sort.Strings(perLang)
		fmt.Fprintf(h, "lang[%s]=%v\n", lang, perLang)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// RuleDisabled reports whether ruleID is disabled globally or for lang.
func (p *Profile) RuleDisabled(ruleID, lang string) bool {
	for _, id := range p.DisabledRuleIDs {
		if id == ruleID {
			return true
		}
	}
	for _, id := range p.PerLanguageDisable[lang] {
		if id == ruleID {
			return true
		}
	}
	return false
}
