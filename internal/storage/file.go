// ABOUTME: File-backed Store writing one JSON file per collection.
// ABOUTME: Suits local installs where a data directory is all that is needed.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File stores each collection blob as a file under a data directory.
type File struct {
	dataDir string
}

var _ Store = (*File)(nil)

// OpenFile creates a file store rooted at dataDir, creating it if needed.
func OpenFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &File{dataDir: dataDir}, nil
}

func (s *File) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// Load returns the collection blob, or (nil, nil) when the file is absent.
func (s *File) Load(collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return data, nil
}

// Save overwrites the collection file.
func (s *File) Save(collection string, data []byte) error {
	if err := os.WriteFile(s.path(collection), data, 0600); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *File) Close() error {
	return nil
}
