// ABOUTME: Export and import of the full data set across all collections.
// ABOUTME: Supports JSON and YAML snapshot formats.
package data

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/contratempo/internal/models"
)

// Snapshot is the full export format: every collection plus provenance.
type Snapshot struct {
	Version    string                `json:"version" yaml:"version"`
	ExportedAt time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool       string                `json:"tool" yaml:"tool"`
	DeviceID   string                `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	Users      []models.User         `json:"users" yaml:"users"`
	Athletes   []models.AthleteData  `json:"athletes" yaml:"athletes"`
	Plans      []models.TrainingPlan `json:"plans" yaml:"plans"`
	Alerts     []models.AlertItem    `json:"alerts" yaml:"alerts"`
}

// Export gathers all four collections into a snapshot. Athlete profiles
// are normalized on the way out.
func (m *Manager) Export(deviceID string) (*Snapshot, error) {
	users, err := m.Users()
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	athletes, err := m.AllAthleteData()
	if err != nil {
		return nil, fmt.Errorf("export athletes: %w", err)
	}
	plans, err := m.Plans()
	if err != nil {
		return nil, fmt.Errorf("export plans: %w", err)
	}
	alerts, err := m.Alerts()
	if err != nil {
		return nil, fmt.Errorf("export alerts: %w", err)
	}

	return &Snapshot{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "contratempo",
		DeviceID:   deviceID,
		Users:      users,
		Athletes:   athletes,
		Plans:      plans,
		Alerts:     alerts,
	}, nil
}

// Import replaces every collection with the snapshot's contents.
func (m *Manager) Import(snap *Snapshot) error {
	if err := m.saveUsers(snap.Users); err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	if err := m.saveAthletes(snap.Athletes); err != nil {
		return fmt.Errorf("import athletes: %w", err)
	}
	if err := m.savePlans(snap.Plans); err != nil {
		return fmt.Errorf("import plans: %w", err)
	}
	if err := m.saveAlerts(snap.Alerts); err != nil {
		return fmt.Errorf("import alerts: %w", err)
	}
	return nil
}

// MarshalSnapshot renders a snapshot as "json" or "yaml".
func MarshalSnapshot(snap *Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(snap, "", "  ")
	case "yaml":
		return yaml.Marshal(snap)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalSnapshot parses a snapshot in "json" or "yaml".
func UnmarshalSnapshot(data []byte, format string) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case "json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parse snapshot: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parse snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
	return &snap, nil
}
