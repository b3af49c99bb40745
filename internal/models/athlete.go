// ABOUTME: AthleteData model with activity and metrics histories.
// ABOUTME: Normalize fills schema gaps so records from older versions read cleanly.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates legacy records where numeric
// fields were stored as strings. Anything unparseable decodes as 0.
type FlexFloat float64

// UnmarshalJSON accepts a JSON number, a quoted number, or anything
// else (which decodes as 0).
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON always writes a JSON number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// ActivityEntry is one logged training session. Append-only; entries are
// never edited except via a full AthleteData replace.
type ActivityEntry struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Type       string    `json:"type"`
	DistanceKm FlexFloat `json:"distanceKm"`
	TimeMin    FlexFloat `json:"timeMin"`
	Pace       string    `json:"pace"`
	Notes      string    `json:"notes"`
}

// MetricsEntry is one daily wellness check-in.
type MetricsEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	SleepHours  float64 `json:"sleepHours"`
	HRV         float64 `json:"hrv"`
	WeightKg    float64 `json:"weightKg"`
	RecoveryPct float64 `json:"recoveryPct"`
}

// StatsSnapshot is a legacy display snapshot kept for schema compatibility.
type StatsSnapshot struct {
	Sleep    string `json:"sleep"`
	HRV      string `json:"hrv"`
	Weight   string `json:"weight"`
	Recovery string `json:"recovery"`
}

// PersonalRecord is a best effort over a standard distance.
type PersonalRecord struct {
	Dist string `json:"dist"`
	Time string `json:"time"`
	Pace string `json:"pace"`
	Date string `json:"date"`
}

// DefaultPlanLabel is the display plan label for a fresh athlete profile.
const DefaultPlanLabel = "Beginner"

// AthleteData is the training profile for one athlete user, keyed by
// UserID and mirrored as ID. Exactly one record exists per athlete.
type AthleteData struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	VDOT         float64          `json:"vdot"`
	Plan         string           `json:"plan"`
	PlanID       *string          `json:"planId"`
	WeeklyVolume []float64        `json:"weeklyVolume"`
	Activities   []ActivityEntry  `json:"activities"`
	Metrics      []MetricsEntry   `json:"metrics"`
	Stats        StatsSnapshot    `json:"stats"`
	PRs          []PersonalRecord `json:"prs"`
}

// DefaultAthleteData builds a fresh profile for a user with deterministic
// defaults.
func DefaultAthleteData(userID string) *AthleteData {
	return &AthleteData{
		ID:           userID,
		UserID:       userID,
		VDOT:         0,
		Plan:         DefaultPlanLabel,
		PlanID:       nil,
		WeeklyVolume: make([]float64, 7),
		Activities:   []ActivityEntry{},
		Metrics:      []MetricsEntry{},
		Stats:        defaultStats(),
		PRs:          []PersonalRecord{},
	}
}

func defaultStats() StatsSnapshot {
	return StatsSnapshot{Sleep: "0h 0m", HRV: "0ms", Weight: "0kg", Recovery: "0%"}
}

// Normalize fills any missing field with its default so records written
// by an older schema version still read cleanly. Applied on every read
// at the storage boundary.
func (a *AthleteData) Normalize() {
	if a.ID == "" {
		a.ID = a.UserID
	}
	if a.Plan == "" {
		a.Plan = DefaultPlanLabel
	}
	if len(a.WeeklyVolume) == 0 {
		a.WeeklyVolume = make([]float64, 7)
	}
	if a.Activities == nil {
		a.Activities = []ActivityEntry{}
	}
	if a.Metrics == nil {
		a.Metrics = []MetricsEntry{}
	}
	if (a.Stats == StatsSnapshot{}) {
		a.Stats = defaultStats()
	}
	if a.PRs == nil {
		a.PRs = []PersonalRecord{}
	}
}
