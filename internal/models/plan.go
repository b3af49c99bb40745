// ABOUTME: TrainingPlan model with weekly workout templates.
// ABOUTME: Plans are coach-authored and assigned to athletes via planId.
package models

// Workout is one templated session within a training plan week.
type Workout struct {
	Day        string  `json:"day"`
	Type       string  `json:"type"`
	DistanceKm float64 `json:"distanceKm,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// TrainingPlan is a named weekly training template. CreatedAt is set once;
// UpdatedAt refreshes on every update.
type TrainingPlan struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Level          string    `json:"level"`
	Goal           string    `json:"goal"`
	WeeklyTargetKm float64   `json:"weeklyTargetKm"`
	Notes          string    `json:"notes"`
	Workouts       []Workout `json:"workouts"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// NewTrainingPlan creates a plan with a generated ID and both timestamps
// set to now.
func NewTrainingPlan(name, level, goal string, weeklyTargetKm float64) *TrainingPlan {
	now := NowISO()
	return &TrainingPlan{
		ID:             NewID("plan"),
		Name:           name,
		Level:          level,
		Goal:           goal,
		WeeklyTargetKm: weeklyTargetKm,
		Workouts:       []Workout{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
