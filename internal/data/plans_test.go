// ABOUTME: Tests for training plan CRUD and assignment.
// ABOUTME: Verifies timestamp handling and back-reference cleanup on delete.
package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/contratempo/internal/models"
)

func TestCreatePlan(t *testing.T) {
	m := newTestManager(t)

	plan, err := m.CreatePlan(&models.TrainingPlan{
		Name:           "10K Build",
		Level:          "intermediate",
		Goal:           "sub-45 10K",
		WeeklyTargetKm: 45,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.NotEmpty(t, plan.CreatedAt)
	assert.Equal(t, plan.CreatedAt, plan.UpdatedAt)
	assert.NotNil(t, plan.Workouts)

	plans, err := m.Plans()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "10K Build", plans[0].Name)
}

func TestUpdatePlan(t *testing.T) {
	m := newTestManager(t)

	plan, err := m.CreatePlan(&models.TrainingPlan{Name: "Base", WeeklyTargetKm: 40})
	require.NoError(t, err)

	target := 55.0
	updated, err := m.UpdatePlan(plan.ID, PlanUpdate{WeeklyTargetKm: &target})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 55.0, updated.WeeklyTargetKm)
	assert.Equal(t, "Base", updated.Name)
	assert.Equal(t, plan.CreatedAt, updated.CreatedAt)
}

func TestUpdatePlanUnknownID(t *testing.T) {
	m := newTestManager(t)

	name := "x"
	updated, err := m.UpdatePlan("plan_missing", PlanUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeletePlanClearsAssignments(t *testing.T) {
	m := newTestManager(t)

	plan, err := m.CreatePlan(&models.TrainingPlan{Name: "Base", WeeklyTargetKm: 40})
	require.NoError(t, err)

	a1 := registerTestAthlete(t, m, "maria")
	a2 := registerTestAthlete(t, m, "joao")
	require.NoError(t, m.AssignPlanToAthlete(a1.ID, &plan.ID))
	require.NoError(t, m.AssignPlanToAthlete(a2.ID, &plan.ID))

	require.NoError(t, m.DeletePlan(plan.ID))

	plans, err := m.Plans()
	require.NoError(t, err)
	assert.Empty(t, plans)

	for _, id := range []string{a1.ID, a2.ID} {
		profile, err := m.AthleteData(id)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Nil(t, profile.PlanID, "dangling planId on %s", id)
	}
}

func TestAssignPlanToAthlete(t *testing.T) {
	m := newTestManager(t)

	plan, err := m.CreatePlan(&models.TrainingPlan{Name: "Base", WeeklyTargetKm: 40})
	require.NoError(t, err)

	u := registerTestAthlete(t, m, "maria")
	require.NoError(t, m.AssignPlanToAthlete(u.ID, &plan.ID))

	profile, err := m.AthleteData(u.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.PlanID)
	assert.Equal(t, plan.ID, *profile.PlanID)

	// Unassign
	require.NoError(t, m.AssignPlanToAthlete(u.ID, nil))
	profile, err = m.AthleteData(u.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.PlanID)
}
