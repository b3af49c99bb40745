// ABOUTME: Tests for the alert rule engine.
// ABOUTME: Covers individual rules, the three-alert case, and merge semantics.
package alerts

import (
	"testing"
	"time"

	"github.com/harperreed/contratempo/internal/models"
)

func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format("2006-01-02")
}

func athleteWith(metrics []models.MetricsEntry, activities []models.ActivityEntry) *models.AthleteData {
	a := models.DefaultAthleteData("athlete_1")
	a.Metrics = metrics
	a.Activities = activities
	return a
}

func typesOf(fired []*models.AlertItem) map[string]models.Severity {
	out := make(map[string]models.Severity)
	for _, a := range fired {
		out[a.Type] = a.Severity
	}
	return out
}

func TestLowSleepRule(t *testing.T) {
	athlete := athleteWith(
		[]models.MetricsEntry{{ID: "metrics_1", Date: daysAgo(0), SleepHours: 5, RecoveryPct: 80}},
		[]models.ActivityEntry{{Date: daysAgo(1), DistanceKm: 10}},
	)

	fired := typesOf(Evaluate(athlete, nil))
	if fired[models.AlertSleep] != models.SeverityMedium {
		t.Errorf("Expected medium sleep alert, got %+v", fired)
	}
	if _, ok := fired[models.AlertRecovery]; ok {
		t.Error("Recovery rule fired unexpectedly")
	}
}

func TestSleepRuleIgnoresZero(t *testing.T) {
	// A zero reading means no data, not zero sleep.
	athlete := athleteWith(
		[]models.MetricsEntry{{Date: daysAgo(0), SleepHours: 0, RecoveryPct: 80}},
		[]models.ActivityEntry{{Date: daysAgo(1), DistanceKm: 10}},
	)

	if fired := typesOf(Evaluate(athlete, nil)); len(fired) != 0 {
		t.Errorf("Expected no alerts, got %+v", fired)
	}
}

func TestLowRecoveryRule(t *testing.T) {
	athlete := athleteWith(
		[]models.MetricsEntry{{Date: daysAgo(0), SleepHours: 8, RecoveryPct: 45}},
		[]models.ActivityEntry{{Date: daysAgo(1), DistanceKm: 10}},
	)

	fired := typesOf(Evaluate(athlete, nil))
	if fired[models.AlertRecovery] != models.SeverityMedium {
		t.Errorf("Expected medium recovery alert, got %+v", fired)
	}
}

func TestVolumeOvershootRule(t *testing.T) {
	athlete := athleteWith(nil, []models.ActivityEntry{
		{Date: daysAgo(1), DistanceKm: 30},
		{Date: daysAgo(3), DistanceKm: 35},
	})
	plan := &models.TrainingPlan{ID: "plan_1", WeeklyTargetKm: 50}

	fired := typesOf(Evaluate(athlete, plan))
	if fired[models.AlertVolume] != models.SeverityHigh {
		t.Errorf("Expected high volume alert at 65km vs 50km target, got %+v", fired)
	}
}

func TestVolumeRuleRespectsTolerance(t *testing.T) {
	// 55km against a 50km target is within the 1.2x tolerance.
	athlete := athleteWith(nil, []models.ActivityEntry{{Date: daysAgo(1), DistanceKm: 55}})
	plan := &models.TrainingPlan{ID: "plan_1", WeeklyTargetKm: 50}

	if fired := typesOf(Evaluate(athlete, plan)); len(fired) != 0 {
		t.Errorf("Expected no alerts, got %+v", fired)
	}
}

func TestInactivityRule(t *testing.T) {
	athlete := athleteWith(nil, []models.ActivityEntry{{Date: daysAgo(10), DistanceKm: 20}})

	fired := typesOf(Evaluate(athlete, nil))
	if fired[models.AlertInactivity] != models.SeverityLow {
		t.Errorf("Expected low inactivity alert, got %+v", fired)
	}
}

func TestThreeAlertsZeroTarget(t *testing.T) {
	// Low sleep + low recovery + inactivity; volume rule must not fire
	// because the plan target is 0.
	athlete := athleteWith(
		[]models.MetricsEntry{{Date: daysAgo(0), SleepHours: 5, RecoveryPct: 50}},
		nil,
	)
	plan := &models.TrainingPlan{ID: "plan_1", WeeklyTargetKm: 0}

	fired := Evaluate(athlete, plan)
	if len(fired) != 3 {
		t.Fatalf("Expected exactly 3 alerts, got %d", len(fired))
	}

	got := typesOf(fired)
	if got[models.AlertSleep] != models.SeverityMedium ||
		got[models.AlertRecovery] != models.SeverityMedium ||
		got[models.AlertInactivity] != models.SeverityLow {
		t.Errorf("Unexpected alert set: %+v", got)
	}
}

func TestFiredAlertShape(t *testing.T) {
	athlete := athleteWith(nil, nil)

	fired := Evaluate(athlete, nil)
	if len(fired) != 1 {
		t.Fatalf("Expected 1 alert, got %d", len(fired))
	}

	a := fired[0]
	if a.AthleteID != "athlete_1" {
		t.Errorf("Expected athlete_1, got %s", a.AthleteID)
	}
	if a.ID == "" || a.CreatedAt == "" || a.Message == "" {
		t.Errorf("Alert missing generated fields: %+v", a)
	}
	if a.Resolved() {
		t.Error("Freshly fired alert must be unresolved")
	}
}

func TestMergePreservesResolvedAndOthers(t *testing.T) {
	all := []models.AlertItem{
		{ID: "alert_1", AthleteID: "athlete_1", Type: models.AlertSleep},
		{ID: "alert_2", AthleteID: "athlete_1", Type: models.AlertVolume, ResolvedAt: models.NowISO()},
		{ID: "alert_3", AthleteID: "athlete_2", Type: models.AlertInactivity},
	}
	fired := []*models.AlertItem{
		models.NewAlert("athlete_1", models.AlertInactivity, models.SeverityLow, "msg"),
	}

	next := Merge(all, "athlete_1", fired)
	if len(next) != 3 {
		t.Fatalf("Expected 3 alerts, got %d", len(next))
	}

	ids := make(map[string]bool)
	for _, a := range next {
		ids[a.ID] = true
	}
	if ids["alert_1"] {
		t.Error("Previous unresolved alert for athlete survived merge")
	}
	if !ids["alert_2"] {
		t.Error("Resolved alert dropped by merge")
	}
	if !ids["alert_3"] {
		t.Error("Other athlete's alert dropped by merge")
	}
}
