// ABOUTME: Training plan CRUD and plan-to-athlete assignment.
// ABOUTME: Deleting a plan nulls the planId back-reference on every athlete.
package data

import (
	"github.com/harperreed/contratempo/internal/models"
	"github.com/harperreed/contratempo/internal/storage"
)

// Plans returns all training plans.
func (m *Manager) Plans() ([]models.TrainingPlan, error) {
	var plans []models.TrainingPlan
	if err := m.loadCollection(storage.PlansKey, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (m *Manager) savePlans(plans []models.TrainingPlan) error {
	return m.saveCollection(storage.PlansKey, plans)
}

// Plan returns the plan with the given id, or nil when not found.
func (m *Manager) Plan(id string) (*models.TrainingPlan, error) {
	plans, err := m.Plans()
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, nil
}

// CreatePlan persists the plan, assigning a generated id and setting both
// timestamps to now.
func (m *Manager) CreatePlan(plan *models.TrainingPlan) (*models.TrainingPlan, error) {
	plans, err := m.Plans()
	if err != nil {
		return nil, err
	}

	plan.ID = models.NewID("plan")
	now := models.NowISO()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Workouts == nil {
		plan.Workouts = []models.Workout{}
	}

	plans = append(plans, *plan)
	if err := m.savePlans(plans); err != nil {
		return nil, err
	}
	return plan, nil
}

// PlanUpdate carries the fields UpdatePlan may merge. Nil fields are left
// untouched.
type PlanUpdate struct {
	Name           *string
	Level          *string
	Goal           *string
	WeeklyTargetKm *float64
	Notes          *string
	Workouts       []models.Workout
}

// UpdatePlan merges the given fields, refreshes updatedAt, and persists.
// Returns nil when the id is unknown.
func (m *Manager) UpdatePlan(id string, update PlanUpdate) (*models.TrainingPlan, error) {
	plans, err := m.Plans()
	if err != nil {
		return nil, err
	}

	for i := range plans {
		if plans[i].ID != id {
			continue
		}
		if update.Name != nil {
			plans[i].Name = *update.Name
		}
		if update.Level != nil {
			plans[i].Level = *update.Level
		}
		if update.Goal != nil {
			plans[i].Goal = *update.Goal
		}
		if update.WeeklyTargetKm != nil {
			plans[i].WeeklyTargetKm = *update.WeeklyTargetKm
		}
		if update.Notes != nil {
			plans[i].Notes = *update.Notes
		}
		if update.Workouts != nil {
			plans[i].Workouts = update.Workouts
		}
		plans[i].UpdatedAt = models.NowISO()

		if err := m.savePlans(plans); err != nil {
			return nil, err
		}
		return &plans[i], nil
	}

	return nil, nil
}

// DeletePlan removes the plan and clears the planId back-reference on
// every athlete assigned to it, so no dangling foreign key survives.
func (m *Manager) DeletePlan(id string) error {
	plans, err := m.Plans()
	if err != nil {
		return err
	}
	kept := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := m.savePlans(kept); err != nil {
		return err
	}

	athletes, err := m.allAthleteData()
	if err != nil {
		return err
	}
	for i := range athletes {
		if athletes[i].PlanID != nil && *athletes[i].PlanID == id {
			athletes[i].PlanID = nil
		}
	}
	return m.saveAthletes(athletes)
}

// AssignPlanToAthlete sets the athlete's planId (nil unassigns) and
// recomputes alerts against the new target.
func (m *Manager) AssignPlanToAthlete(userID string, planID *string) error {
	athlete, err := m.EnsureAthleteData(userID)
	if err != nil {
		return err
	}

	athlete.PlanID = planID
	if err := m.SaveAthleteData(athlete); err != nil {
		return err
	}
	return m.RecalculateAlerts(userID)
}
