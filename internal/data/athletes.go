// ABOUTME: Athlete profile operations: lazy creation, merges, history appends.
// ABOUTME: Every athlete-state mutation triggers an alert recompute.
package data

import (
	"github.com/harperreed/contratempo/internal/models"
	"github.com/harperreed/contratempo/internal/storage"
)

// allAthleteData loads the raw athlete collection without normalization.
func (m *Manager) allAthleteData() ([]models.AthleteData, error) {
	var athletes []models.AthleteData
	if err := m.loadCollection(storage.AthletesKey, &athletes); err != nil {
		return nil, err
	}
	return athletes, nil
}

func (m *Manager) saveAthletes(athletes []models.AthleteData) error {
	return m.saveCollection(storage.AthletesKey, athletes)
}

// AllAthleteData returns every athlete profile, normalized.
func (m *Manager) AllAthleteData() ([]models.AthleteData, error) {
	athletes, err := m.allAthleteData()
	if err != nil {
		return nil, err
	}
	for i := range athletes {
		athletes[i].Normalize()
	}
	return athletes, nil
}

// AthleteData returns the normalized profile for a user, or nil if none
// exists yet.
func (m *Manager) AthleteData(userID string) (*models.AthleteData, error) {
	athletes, err := m.allAthleteData()
	if err != nil {
		return nil, err
	}
	for i := range athletes {
		if athletes[i].UserID == userID {
			athletes[i].Normalize()
			return &athletes[i], nil
		}
	}
	return nil, nil
}

// EnsureAthleteData returns the existing profile or creates, persists,
// and returns a fresh default one. Idempotent: a second call with no
// intervening mutation returns the same record.
func (m *Manager) EnsureAthleteData(userID string) (*models.AthleteData, error) {
	existing, err := m.AthleteData(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created := models.DefaultAthleteData(userID)
	if err := m.SaveAthleteData(created); err != nil {
		return nil, err
	}
	return created, nil
}

// SaveAthleteData upserts a profile by userId, replacing the stored
// record wholesale.
func (m *Manager) SaveAthleteData(athlete *models.AthleteData) error {
	athletes, err := m.allAthleteData()
	if err != nil {
		return err
	}

	replaced := false
	for i := range athletes {
		if athletes[i].UserID == athlete.UserID {
			athletes[i] = *athlete
			replaced = true
			break
		}
	}
	if !replaced {
		athletes = append(athletes, *athlete)
	}

	return m.saveAthletes(athletes)
}

// AthleteUpdate carries the fields UpdateAthleteData may merge. Nil
// fields are left untouched. PlanID distinguishes "leave alone" (nil)
// from "clear" (pointer to nil) via the double pointer.
type AthleteUpdate struct {
	VDOT   *float64
	Plan   *string
	PlanID **string
	PRs    []models.PersonalRecord
	Stats  *models.StatsSnapshot
}

// UpdateAthleteData merges the given fields into the athlete's profile,
// persists it, and recomputes alerts: any athlete-state change can affect
// alert conditions.
func (m *Manager) UpdateAthleteData(userID string, update AthleteUpdate) (*models.AthleteData, error) {
	athlete, err := m.EnsureAthleteData(userID)
	if err != nil {
		return nil, err
	}

	if update.VDOT != nil {
		athlete.VDOT = *update.VDOT
	}
	if update.Plan != nil {
		athlete.Plan = *update.Plan
	}
	if update.PlanID != nil {
		athlete.PlanID = *update.PlanID
	}
	if update.PRs != nil {
		athlete.PRs = update.PRs
	}
	if update.Stats != nil {
		athlete.Stats = *update.Stats
	}

	if err := m.SaveAthleteData(athlete); err != nil {
		return nil, err
	}
	if err := m.RecalculateAlerts(userID); err != nil {
		return nil, err
	}
	return athlete, nil
}

// AddActivity appends a training session to the athlete's history,
// assigning a generated id, and recomputes alerts. Returns the stored
// entry.
func (m *Manager) AddActivity(userID string, entry models.ActivityEntry) (*models.ActivityEntry, error) {
	athlete, err := m.EnsureAthleteData(userID)
	if err != nil {
		return nil, err
	}

	entry.ID = models.NewID("activity")
	athlete.Activities = append(athlete.Activities, entry)

	if err := m.SaveAthleteData(athlete); err != nil {
		return nil, err
	}
	if err := m.RecalculateAlerts(userID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddMetrics appends a wellness check-in to the athlete's history,
// assigning a generated id, and recomputes alerts. Returns the stored
// entry.
func (m *Manager) AddMetrics(userID string, entry models.MetricsEntry) (*models.MetricsEntry, error) {
	athlete, err := m.EnsureAthleteData(userID)
	if err != nil {
		return nil, err
	}

	entry.ID = models.NewID("metrics")
	athlete.Metrics = append(athlete.Metrics, entry)

	if err := m.SaveAthleteData(athlete); err != nil {
		return nil, err
	}
	if err := m.RecalculateAlerts(userID); err != nil {
		return nil, err
	}
	return &entry, nil
}
