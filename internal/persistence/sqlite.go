package persistence

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sirupsen/logrus"
)

// SQLitePersister stores one compressed Blob per document id in an
// embedded SQLite file next to the document, the natural "no server"
// analogue of a SQL backend for a desktop extension.
type SQLitePersister struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

// OpenSQLitePersister opens (creating if necessary) the blob store at path.
func OpenSQLitePersister(path string, logger logrus.FieldLogger) (*SQLitePersister, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistence: open %s: %w", path, err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS document_cache (
			doc_id      TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			blob        BLOB NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: create schema: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SQLitePersister{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}

// Save upserts the blob for docID.
func (p *SQLitePersister) Save(ctx context.Context, docID string, b Blob) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	const upsert = `
		INSERT INTO document_cache (doc_id, fingerprint, blob) VALUES (?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET fingerprint = excluded.fingerprint, blob = excluded.blob;`
	if _, err := p.db.ExecContext(ctx, upsert, docID, b.Fingerprint, data); err != nil {
		return fmt.Errorf("persistence: save %s: %w", docID, err)
	}
	return nil
}

// Load reads the blob for docID and validates it against wantFingerprint.
// Per §7 DiskIO and ConfigFingerprintMismatch policy, any failure (read
// error, corrupt blob, fingerprint mismatch) is logged and reported as
// "no cached state", never as an error the caller must propagate — the
// caller rebuilds the relevant caches from scratch either way.
func (p *SQLitePersister) Load(ctx context.Context, docID, wantFingerprint string) (Blob, bool) {
	const query = `SELECT fingerprint, blob FROM document_cache WHERE doc_id = ?;`
	row := p.db.QueryRowContext(ctx, query, docID)

	var fingerprint string
	var data []byte
	if err := row.Scan(&fingerprint, &data); err != nil {
		if err != sql.ErrNoRows {
			p.logger.WithError(err).WithField("doc_id", docID).Warn("persistence: reject cache blob, disk read failed")
		}
		return Blob{}, false
	}

	if fingerprint != wantFingerprint {
		p.logger.WithField("doc_id", docID).Info("persistence: reject cache blob, config fingerprint mismatch")
		return Blob{}, false
	}

	b, err := Decode(data)
	if err != nil {
		p.logger.WithError(err).WithField("doc_id", docID).Warn("persistence: reject cache blob, corrupt data")
		return Blob{}, false
	}
	return b, true
}

// Delete removes any stored blob for docID.
func (p *SQLitePersister) Delete(ctx context.Context, docID string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM document_cache WHERE doc_id = ?;`, docID); err != nil {
		return fmt.Errorf("persistence: delete %s: %w", docID, err)
	}
	return nil
}
