package store

import (
	"database/sql"
	_ "embed"
	"errors"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLite stores blobs in a single-table SQLite database. Rows carry a
// uuid id; keys are unique and upserted on write.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// schema. Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &Error{Op: "open", Key: path, Kind: KindIO, Err: err}
	}
	if path == ":memory:" {
		// Pooled connections would each get their own memory database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, &Error{Op: "open", Key: path, Kind: KindCorrupt, Err: err}
	}
	return &SQLite{db: db}, nil
}

// WriteBlob upserts payload under key. Last write wins.
func (s *SQLite) WriteBlob(key string, payload []byte) error {
	if payload == nil {
		payload = []byte{} // the column is NOT NULL; nil means empty
	}
	_, err := s.db.Exec(
		`INSERT INTO blobs (id, key, payload) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		uuid.NewString(), key, payload,
	)
	if err != nil {
		return &Error{Op: "write", Key: key, Kind: KindIO, Err: err}
	}
	return nil
}

// ReadBlob returns the blob stored under key.
func (s *SQLite) ReadBlob(key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM blobs WHERE key = ?`, key).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, &Error{Op: "read", Key: key, Kind: KindNotFound, Err: err}
	case err != nil:
		return nil, &Error{Op: "read", Key: key, Kind: KindIO, Err: err}
	}
	return payload, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }
