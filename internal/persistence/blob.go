// Package persistence implements the per-document cache blob described in
// §6 "Persisted state": on save, the engine compresses the document cache's
// derived state (every result cache plus the permanent-ignore map) together
// with the configuration fingerprint that produced it; on load, a
// fingerprint mismatch rejects the blob outright rather than attempting a
// partial reuse (§7 ConfigFingerprintMismatch).
package persistence

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"

	"github.com/writingtool-org/checkengine/internal/ignorestore"
	"github.com/writingtool-org/checkengine/internal/resultcache"
)

// ResultCacheKind identifies which of a Document's six result caches a
// Blob's entries belong to.
type ResultCacheKind int

const (
	KindSentence ResultCacheKind = iota
	KindTextLevel1
	KindTextLevel2
	KindTextLevel3
	KindAI
	KindAISuggestion
)

// Blob is the gob-encoded, gzip-compressed payload stored per document.
type Blob struct {
	Fingerprint string
	Caches      map[ResultCacheKind][]resultcache.SnapshotEntry
	IgnoreRules []ignorestore.RuleSnapshot
	IgnoreLang  map[int][]ignorestore.LangIgnore
}

// Encode gzip-compresses the gob encoding of b.
func Encode(b Blob) ([]byte, error) {
	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(b); err != nil {
		return nil, fmt.Errorf("persistence: encode blob: %w", err)
	}
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := gz.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("persistence: compress blob: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("persistence: compress blob: %w", err)
	}
	return compressed.Bytes(), nil
}

// Decode reverses Encode. It does not check the fingerprint; callers do
// that against the currently loaded config profile before trusting the
// result (§7: a fingerprint mismatch is a silent-reject, not an error the
// caller should propagate to the host).
func Decode(data []byte) (Blob, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return Blob{}, fmt.Errorf("persistence: decompress blob: %w", err)
	}
	defer gz.Close()
	var b Blob
	if err := gob.NewDecoder(gz).Decode(&b); err != nil {
		return Blob{}, fmt.Errorf("persistence: decode blob: %w", err)
	}
	return b, nil
}
