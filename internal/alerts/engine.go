// ABOUTME: Rule engine deriving the unresolved alert set for one athlete.
// ABOUTME: Pure over current athlete state and the assigned plan; no stored state.
package alerts

import (
	"github.com/harperreed/contratempo/internal/aggregate"
	"github.com/harperreed/contratempo/internal/models"
)

// Rule thresholds.
const (
	minSleepHours     = 6.0
	minRecoveryPct    = 60.0
	volumeTargetRatio = 1.2
	windowDays        = 7
)

// Alert messages, one fixed string per rule.
const (
	msgSleep      = "Sleep below 6 hours in the last 24h."
	msgRecovery   = "Recovery below 60%."
	msgVolume     = "Weekly volume above plan target."
	msgInactivity = "No training logged in the past week."
)

// Evaluate recomputes the unresolved alert set for an athlete from current
// state. Every rule is evaluated independently; zero or more may fire.
// plan is the athlete's assigned plan, nil when none is assigned.
func Evaluate(athlete *models.AthleteData, plan *models.TrainingPlan) []*models.AlertItem {
	var fired []*models.AlertItem

	latest := aggregate.LatestMetrics(athlete.Metrics)
	weeklyVolume := aggregate.WeeklyVolume(athlete.Activities, windowDays)

	if latest != nil && latest.SleepHours > 0 && latest.SleepHours < minSleepHours {
		fired = append(fired, models.NewAlert(athlete.UserID, models.AlertSleep, models.SeverityMedium, msgSleep))
	}

	if latest != nil && latest.RecoveryPct > 0 && latest.RecoveryPct < minRecoveryPct {
		fired = append(fired, models.NewAlert(athlete.UserID, models.AlertRecovery, models.SeverityMedium, msgRecovery))
	}

	if plan != nil && plan.WeeklyTargetKm > 0 && weeklyVolume > plan.WeeklyTargetKm*volumeTargetRatio {
		fired = append(fired, models.NewAlert(athlete.UserID, models.AlertVolume, models.SeverityHigh, msgVolume))
	}

	if weeklyVolume == 0 {
		fired = append(fired, models.NewAlert(athlete.UserID, models.AlertInactivity, models.SeverityLow, msgInactivity))
	}

	return fired
}

// Merge splices freshly fired alerts into the full alert collection:
// the athlete's previous unresolved alerts are dropped, resolved alerts
// and other athletes' alerts pass through untouched.
func Merge(all []models.AlertItem, athleteID string, fired []*models.AlertItem) []models.AlertItem {
	next := make([]models.AlertItem, 0, len(all)+len(fired))
	for _, a := range all {
		if a.AthleteID != athleteID || a.Resolved() {
			next = append(next, a)
		}
	}
	for _, a := range fired {
		next = append(next, *a)
	}
	return next
}
