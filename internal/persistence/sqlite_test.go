package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPersister(t *testing.T) *SQLitePersister {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	logger := logrus.New()
	logger.SetOutput(logTestWriter{t})
	p, err := OpenSQLitePersister(path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

type logTestWriter struct{ t *testing.T }

func (w logTestWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	p := openTestPersister(t)
	ctx := context.Background()

	b := Blob{Fingerprint: "fp-1"}
	require.NoError(t, p.Save(ctx, "doc-1", b))

	loaded, ok := p.Load(ctx, "doc-1", "fp-1")
	assert.True(t, ok)
	assert.Equal(t, "fp-1", loaded.Fingerprint)
}

func TestLoadRejectsFingerprintMismatch(t *testing.T) {
	p := openTestPersister(t)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "doc-1", Blob{Fingerprint: "fp-old"}))

	_, ok := p.Load(ctx, "doc-1", "fp-new")
	assert.False(t, ok)
}

func TestLoadMissingDocumentReturnsFalse(t *testing.T) {
	p := openTestPersister(t)
	_, ok := p.Load(context.Background(), "never-saved", "fp")
	assert.False(t, ok)
}

func TestDeleteRemovesBlob(t *testing.T) {
	p := openTestPersister(t)
	ctx := context.Background()
	require.NoError(t, p.Save(ctx, "doc-1", Blob{Fingerprint: "fp-1"}))
	require.NoError(t, p.Delete(ctx, "doc-1"))

	_, ok := p.Load(ctx, "doc-1", "fp-1")
	assert.False(t, ok)
}
