package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// HistoryStore defines the interface for storing validation run records.
type HistoryStore interface {
	Save(record RunRecord) error
	LoadLatest() (*RunRecord, error)
	LoadAll() ([]RunRecord, error)
}

// FileHistoryStore implements HistoryStore using a JSON file.
type FileHistoryStore struct {
	path string
}

func NewFileHistoryStore(path string) (*FileHistoryStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileHistoryStore{path: path}, nil
}

func (s *FileHistoryStore) Save(record RunRecord) error {
	records, err := s.LoadAll()
	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run records: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *FileHistoryStore) LoadAll() ([]RunRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunRecord{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return []RunRecord{}, nil
	}

	var records []RunRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run records: %w", err)
	}

	// Sort by timestamp just in case
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	return records, nil
}

func (s *FileHistoryStore) LoadLatest() (*RunRecord, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[len(records)-1], nil
}
