package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"checkin-bot/internal/checkin"
)

// FileStore implements checkin.Store on a single JSON file. It is the
// fallback for deployments without MongoDB.
//
// Saves go through a temp file followed by a rename, so a crash mid-write
// leaves the previous file intact. A missing or unreadable file degrades to
// an empty data set; corruption is logged, never fatal.
type FileStore struct {
	path string
}

// NewFileStore creates a file store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full data set from disk.
func (s *FileStore) Load(_ context.Context) (checkin.DataSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return checkin.DataSet{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var data checkin.DataSet
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("[FileStore] Corrupt data file %s, starting empty: %v", s.path, err)
		return checkin.DataSet{}, nil
	}
	if data == nil {
		data = checkin.DataSet{}
	}
	return data, nil
}

// Save atomically replaces the data file with the given data set.
func (s *FileStore) Save(_ context.Context, data checkin.DataSet) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data set: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
