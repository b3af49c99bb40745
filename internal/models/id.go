// ABOUTME: ID generation for persisted records.
// ABOUTME: IDs are prefix_timestamp_random, matching the stored-data schema.
package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	athleteIDMu   sync.Mutex
	lastAthleteMS int64
)

// NewID generates a record ID of the form <prefix>_<unixMilli>_<random>.
// The random fragment comes from a UUID so IDs minted within the same
// millisecond stay unique.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewAthleteID generates a user ID for a newly registered athlete.
// Athlete user IDs carry no random fragment in the stored schema, so the
// millisecond is bumped when two registrations land in the same one.
func NewAthleteID() string {
	athleteIDMu.Lock()
	defer athleteIDMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastAthleteMS {
		ms = lastAthleteMS + 1
	}
	lastAthleteMS = ms
	return fmt.Sprintf("athlete_%d", ms)
}

// NowISO returns the current time as an ISO-8601 (RFC 3339) UTC string.
// All persisted timestamps use this format.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
