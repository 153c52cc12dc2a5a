// Package storage persists small values as JSON files on disk.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore provides thread-safe JSON file-based persistence
type JSONStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewJSONStore creates a new JSON store at the specified path
func NewJSONStore(dataDir, filename string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	return &JSONStore{
		filePath: filepath.Join(dataDir, filename),
	}, nil
}

// Path is the file backing the store.
func (s *JSONStore) Path() string {
	return s.filePath
}

// Load decodes the file into data. A missing file leaves data untouched and is not an error.
func (s *JSONStore) Load(data interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(data)
}

// Save writes data through a temp file and rename, so readers never see a partial file.
func (s *JSONStore) Save(data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tempFile := s.filePath + ".tmp"
	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.filePath)
}

// Delete removes the file. Deleting a missing file is not an error.
func (s *JSONStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists checks if the storage file exists
func (s *JSONStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.filePath)
	return err == nil
}
