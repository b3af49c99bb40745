// ABOUTME: Charm KV (Badger-backed) Store with automatic cloud sync.
// ABOUTME: Collection blobs live under their fixed keys in the contratempo KV db.
package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

const (
	kvName    = "contratempo"
	charmHost = "charm.2389.dev"
)

// KV stores collection blobs in Charm KV, which syncs E2E encrypted to
// Charm Cloud on each write.
type KV struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ Store = (*KV)(nil)

// OpenKV opens the contratempo KV database and pulls remote data once.
func OpenKV() (*KV, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(kvName)
	if err != nil {
		return nil, fmt.Errorf("open kv: %w", err)
	}

	s := &KV{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// Load returns the collection blob, or (nil, nil) when the key is absent.
func (s *KV) Load(collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.kv.Get([]byte(collection))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return data, nil
}

// Save overwrites the collection blob and syncs if enabled.
func (s *KV) Save(collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Set([]byte(collection), data); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
	return nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *KV) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// IsReadOnly returns true if another process holds the write lock.
func (s *KV) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Close closes the KV database connection.
func (s *KV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
