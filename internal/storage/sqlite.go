package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const createTranscriptsTable = `
CREATE TABLE IF NOT EXISTS transcripts (
	key            TEXT PRIMARY KEY,
	candidate_name TEXT NOT NULL,
	completed_at   TEXT NOT NULL,
	payload        TEXT NOT NULL
)`

// SQLiteStore persists transcripts into a single SQLite table, keyed the
// same way as the file store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if _, err := db.Exec(createTranscriptsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating transcripts table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(transcript *Transcript) (string, error) {
	payload, err := json.Marshal(transcript)
	if err != nil {
		return "", fmt.Errorf("serializing transcript: %w", err)
	}

	key := Key(transcript)
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO transcripts (key, candidate_name, completed_at, payload) VALUES (?, ?, ?, ?)`,
		key, transcript.Candidate.FullName, transcript.CompletedAt.Format("2006-01-02T15:04:05Z07:00"), string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("inserting transcript %s: %w", key, err)
	}

	return key, nil
}

// Load reads a previously saved transcript by key.
func (s *SQLiteStore) Load(key string) (*Transcript, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM transcripts WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("loading transcript %s: %w", key, err)
	}

	var transcript Transcript
	if err := json.Unmarshal([]byte(payload), &transcript); err != nil {
		return nil, fmt.Errorf("deserializing transcript %s: %w", key, err)
	}

	return &transcript, nil
}

// List returns the keys of all saved transcripts, newest first.
func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM transcripts ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning transcript key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
