package config

import "testing"

func TestFingerprintStableUnderReordering(t *testing.T) {
	a := &Profile{
		EngineVersion:      "1.4.0",
		DisabledRuleIDs:    []string{"R1", "R2"},
		DisabledCategories: []string{"style"},
		PerLanguageDisable: map[string][]string{"en": {"R9", "R8"}},
	}
	b := &Profile{
		EngineVersion:      "1.4.0",
		DisabledRuleIDs:    []string{"R2", "R1"},
		DisabledCategories: []string{"style"},
		PerLanguageDisable: map[string][]string{"en": {"R8", "R9"}},
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("fingerprints differ for semantically identical profiles")
	}
}

func TestFingerprintChangesWithDisabledRule(t *testing.T) {
	a := &Profile{EngineVersion: "1.4.0", DisabledRuleIDs: []string{"R1"}}
	b := &Profile{EngineVersion: "1.4.0", DisabledRuleIDs: []string{"R1", "R2"}}
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("expected fingerprints to differ")
	}
}

func TestRuleDisabledChecksGlobalAndPerLanguage(t *testing.T) {
	p := &Profile{
		DisabledRuleIDs:    []string{"R1"},
		PerLanguageDisable: map[string][]string{"de": {"R5"}},
	}
	if !p.RuleDisabled("R1", "en") {
		t.Fatalf("R1 should be globally disabled")
	}
	if !p.RuleDisabled("R5", "de") {
		t.Fatalf("R5 should be disabled for de")
	}
	if p.RuleDisabled("R5", "en") {
		t.Fatalf("R5 should not be disabled for en")
	}
}
