// ABOUTME: Tests for athlete profile operations.
// ABOUTME: Covers lazy creation idempotence, history appends, and merges.
package data

import (
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/contratempo/internal/models"
)

func testDate(daysBack int) string {
	return time.Now().UTC().AddDate(0, 0, -daysBack).Format("2006-01-02")
}

func TestEnsureAthleteDataIdempotent(t *testing.T) {
	m := newTestManager(t)

	first, err := m.EnsureAthleteData("athlete_42")
	if err != nil {
		t.Fatalf("EnsureAthleteData failed: %v", err)
	}
	second, err := m.EnsureAthleteData("athlete_42")
	if err != nil {
		t.Fatalf("EnsureAthleteData failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical records, got\n%+v\n%+v", first, second)
	}
	if first.ID != "athlete_42" || first.UserID != "athlete_42" {
		t.Errorf("Expected id mirrored from userId: %+v", first)
	}
}

func TestEnsureAthleteDataNormalizesLegacyRecord(t *testing.T) {
	m := newTestManager(t)

	// Simulate a record written by an older schema: no metrics, no planId.
	if err := m.saveAthletes([]models.AthleteData{{ID: "athlete_1", UserID: "athlete_1", VDOT: 45}}); err != nil {
		t.Fatalf("saveAthletes failed: %v", err)
	}

	got, err := m.EnsureAthleteData("athlete_1")
	if err != nil {
		t.Fatalf("EnsureAthleteData failed: %v", err)
	}
	if got.VDOT != 45 {
		t.Errorf("Expected existing record, got %+v", got)
	}
	if got.Metrics == nil || got.Activities == nil || got.Plan != models.DefaultPlanLabel {
		t.Errorf("Expected normalized defaults: %+v", got)
	}
}

func TestAddActivity(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	before, _ := m.EnsureAthleteData(u.ID)

	entry, err := m.AddActivity(u.ID, models.ActivityEntry{
		Date:       testDate(0),
		Type:       "tempo",
		DistanceKm: 12,
		TimeMin:    55,
		Pace:       "4:35",
		Notes:      "felt strong",
	})
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("Expected generated entry id")
	}

	after, _ := m.EnsureAthleteData(u.ID)
	if len(after.Activities) != len(before.Activities)+1 {
		t.Fatalf("Expected one more activity, got %d then %d", len(before.Activities), len(after.Activities))
	}

	stored := after.Activities[len(after.Activities)-1]
	if stored.ID != entry.ID || stored.Type != "tempo" || float64(stored.DistanceKm) != 12 || stored.Notes != "felt strong" {
		t.Errorf("Payload fields not preserved: %+v", stored)
	}
}

func TestAddActivityIDsUnique(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		entry, err := m.AddActivity(u.ID, models.ActivityEntry{Date: testDate(0), DistanceKm: 5})
		if err != nil {
			t.Fatalf("AddActivity failed: %v", err)
		}
		if seen[entry.ID] {
			t.Fatalf("Duplicate activity id: %s", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestAddMetrics(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	entry, err := m.AddMetrics(u.ID, models.MetricsEntry{
		Date:        testDate(0),
		SleepHours:  7.5,
		HRV:         62,
		WeightKg:    64.2,
		RecoveryPct: 88,
	})
	if err != nil {
		t.Fatalf("AddMetrics failed: %v", err)
	}

	after, _ := m.EnsureAthleteData(u.ID)
	if len(after.Metrics) != 1 {
		t.Fatalf("Expected 1 metrics entry, got %d", len(after.Metrics))
	}
	if after.Metrics[0].ID != entry.ID || after.Metrics[0].SleepHours != 7.5 {
		t.Errorf("Payload fields not preserved: %+v", after.Metrics[0])
	}
}

func TestUpdateAthleteData(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	vdot := 51.0
	plan := "Marathon Build"
	updated, err := m.UpdateAthleteData(u.ID, AthleteUpdate{VDOT: &vdot, Plan: &plan})
	if err != nil {
		t.Fatalf("UpdateAthleteData failed: %v", err)
	}
	if updated.VDOT != 51 || updated.Plan != "Marathon Build" {
		t.Errorf("Merge missed fields: %+v", updated)
	}

	stored, _ := m.AthleteData(u.ID)
	if stored.VDOT != 51 {
		t.Error("Update not persisted")
	}
}

func TestUpdateAthleteDataClearsPlanID(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	plan, err := m.CreatePlan(&models.TrainingPlan{Name: "Base", WeeklyTargetKm: 40})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
	if err := m.AssignPlanToAthlete(u.ID, &plan.ID); err != nil {
		t.Fatalf("AssignPlanToAthlete failed: %v", err)
	}

	var cleared *string
	updated, err := m.UpdateAthleteData(u.ID, AthleteUpdate{PlanID: &cleared})
	if err != nil {
		t.Fatalf("UpdateAthleteData failed: %v", err)
	}
	if updated.PlanID != nil {
		t.Errorf("Expected planId cleared, got %v", *updated.PlanID)
	}
}

func TestCallerMutationDoesNotCorruptStore(t *testing.T) {
	m := newTestManager(t)
	u := registerTestAthlete(t, m, "maria")

	got, _ := m.EnsureAthleteData(u.ID)
	got.VDOT = 99
	got.Activities = append(got.Activities, models.ActivityEntry{ID: "rogue"})

	stored, _ := m.AthleteData(u.ID)
	if stored.VDOT == 99 || len(stored.Activities) != 0 {
		t.Errorf("Caller mutation leaked into stored state: %+v", stored)
	}
}
