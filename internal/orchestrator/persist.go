package orchestrator

import (
	"github.com/writingtool-org/checkengine/internal/persistence"
	"github.com/writingtool-org/checkengine/internal/resultcache"
)

// Snapshot captures every result cache and the ignore store into a
// persistence.Blob tagged with fingerprint, for the host's save path.
func (d *Document) Snapshot(fingerprint string) persistence.Blob {
	rules, lang := d.ignores.Snapshot()
	caches := map[persistence.ResultCacheKind][]resultcache.SnapshotEntry{
		persistence.KindSentence:     d.sentence.Snapshot(),
		persistence.KindTextLevel1:   d.textLevel[0].Snapshot(),
		persistence.KindTextLevel2:   d.textLevel[1].Snapshot(),
		persistence.KindTextLevel3:   d.textLevel[2].Snapshot(),
		persistence.KindAI:           d.ai.Snapshot(),
		persistence.KindAISuggestion: d.aiSuggestion.Snapshot(),
	}
	return persistence.Blob{
		Fingerprint: fingerprint,
		Caches:      caches,
		IgnoreRules: rules,
		IgnoreLang:  lang,
	}
}

// Restore replaces every result cache and the ignore store with the
// contents of a previously validated Blob (fingerprint already checked by
// the caller, per §7 ConfigFingerprintMismatch: rejection happens before
// Restore is ever called).
func (d *Document) Restore(b persistence.Blob) {
	d.sentence.Restore(b.Caches[persistence.KindSentence])
	d.textLevel[0].Restore(b.Caches[persistence.KindTextLevel1])
	d.textLevel[1].Restore(b.Caches[persistence.KindTextLevel2])
	d.textLevel[2].Restore(b.Caches[persistence.KindTextLevel3])
	d.ai.Restore(b.Caches[persistence.KindAI])
	d.aiSuggestion.Restore(b.Caches[persistence.KindAISuggestion])
	d.ignores.Restore(b.IgnoreRules, b.IgnoreLang)
}
