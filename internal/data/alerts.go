// ABOUTME: Alert collection access, resolution, and recomputation.
// ABOUTME: The rule engine owns each athlete's unresolved alert set.
package data

import (
	"github.com/harperreed/contratempo/internal/alerts"
	"github.com/harperreed/contratempo/internal/models"
	"github.com/harperreed/contratempo/internal/storage"
)

// Alerts returns all alerts, resolved and unresolved.
func (m *Manager) Alerts() ([]models.AlertItem, error) {
	var items []models.AlertItem
	if err := m.loadCollection(storage.AlertsKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Manager) saveAlerts(items []models.AlertItem) error {
	return m.saveCollection(storage.AlertsKey, items)
}

// UnresolvedAlerts returns the active alerts, optionally filtered to one
// athlete (empty athleteID means all athletes).
func (m *Manager) UnresolvedAlerts(athleteID string) ([]models.AlertItem, error) {
	items, err := m.Alerts()
	if err != nil {
		return nil, err
	}
	var active []models.AlertItem
	for _, a := range items {
		if a.Resolved() {
			continue
		}
		if athleteID != "" && a.AthleteID != athleteID {
			continue
		}
		active = append(active, a)
	}
	return active, nil
}

// ResolveAlert stamps resolvedAt on the alert and persists. The record is
// retained, never deleted. No-op when the id is unknown.
func (m *Manager) ResolveAlert(id string) error {
	items, err := m.Alerts()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].ResolvedAt = models.NowISO()
			return m.saveAlerts(items)
		}
	}
	return nil
}

// RecalculateAlerts re-derives the athlete's unresolved alert set from
// current state. Resolved alerts and other athletes' alerts pass through
// untouched; the athlete's previous unresolved set is discarded even when
// a condition still holds, so at most one unresolved alert per fired rule
// exists afterward.
func (m *Manager) RecalculateAlerts(userID string) error {
	athlete, err := m.EnsureAthleteData(userID)
	if err != nil {
		return err
	}

	var plan *models.TrainingPlan
	if athlete.PlanID != nil {
		plan, err = m.Plan(*athlete.PlanID)
		if err != nil {
			return err
		}
	}

	all, err := m.Alerts()
	if err != nil {
		return err
	}

	fired := alerts.Evaluate(athlete, plan)
	return m.saveAlerts(alerts.Merge(all, userID, fired))
}
