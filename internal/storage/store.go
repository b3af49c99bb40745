// ABOUTME: Store port for collection blob persistence.
// ABOUTME: Each collection is one JSON array under a fixed key.
package storage

// Collection keys. The contratempo_ prefix matches the keys the original
// web app wrote, so existing data reads in unchanged.
const (
	UsersKey    = "contratempo_users"
	AthletesKey = "contratempo_athletes"
	PlansKey    = "contratempo_plans"
	AlertsKey   = "contratempo_alerts"
)

// Collections lists every collection key, in export order.
var Collections = []string{UsersKey, AthletesKey, PlansKey, AlertsKey}

// Store is the persistence port for collection blobs. Implementations are
// swappable: Charm KV for synced production use, SQLite or plain files for
// local installs, Memory for tests.
//
// Load returns (nil, nil) when the collection has never been written.
// Save overwrites the whole collection unconditionally; there are no
// partial-collection writes and no transactions across collections.
type Store interface {
	Load(collection string) ([]byte, error)
	Save(collection string, data []byte) error
	Close() error
}
