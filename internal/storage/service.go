package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore writes one JSON file per completed session into a results
// directory. Keys look like candidate_jane_doe_20260829_153012: the
// slugified candidate name plus a second-resolution timestamp.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Slug lowercases a candidate name and replaces spaces with underscores
// for use in storage keys.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// Key builds the storage key for a transcript.
func Key(t *Transcript) string {
	return fmt.Sprintf("candidate_%s_%s", Slug(t.Candidate.FullName), t.CompletedAt.Format("20060102_150405"))
}

func (s *FileStore) Save(transcript *Transcript) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", s.dir, err)
	}

	key := Key(transcript)
	path := filepath.Join(s.dir, key+".json")

	jsonData, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing transcript: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	return key, nil
}

// Load reads a previously saved transcript by key.
func (s *FileStore) Load(key string) (*Transcript, error) {
	path := filepath.Join(s.dir, key+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("deserializing transcript: %w", err)
	}

	return &transcript, nil
}

// List returns the keys of all saved transcripts.
func (s *FileStore) List() ([]string, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", s.dir, err)
	}

	var keys []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}

	return keys, nil
}
