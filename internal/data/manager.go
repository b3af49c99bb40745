// ABOUTME: Manager is the data core: CRUD over the four collections.
// ABOUTME: Every mutation is a full-collection read-modify-write through the Store.
package data

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/contratempo/internal/storage"
)

// Manager owns the four persisted collections: users, athlete profiles,
// training plans, and alerts. It is stateless beyond the injected Store;
// construct one per store.
//
// Cascading operations (DeleteUser, DeletePlan) write each collection
// separately. There is no transaction across collections: if the process
// dies between writes, a partial cascade can persist. Accepted for this
// tool's single-writer scope.
type Manager struct {
	store storage.Store
}

// NewManager creates a Manager backed by the given store.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// loadCollection decodes a collection blob into out. Missing or
// malformed data is treated as an empty collection, never an error.
func (m *Manager) loadCollection(key string, out any) error {
	data, err := m.store.Load(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	// Fail soft: a corrupt blob reads as empty rather than erroring.
	_ = json.Unmarshal(data, out)
	return nil
}

// saveCollection encodes records and overwrites the collection blob.
func (m *Manager) saveCollection(key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := m.store.Save(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
