// ABOUTME: Tests for AthleteData normalization and legacy decoding.
// ABOUTME: Verifies default filling and FlexFloat tolerance of string numbers.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	a := &AthleteData{UserID: "athlete_1"}
	a.Normalize()

	if a.ID != "athlete_1" {
		t.Errorf("Expected ID mirrored from UserID, got %q", a.ID)
	}
	if a.Plan != DefaultPlanLabel {
		t.Errorf("Expected default plan %q, got %q", DefaultPlanLabel, a.Plan)
	}
	if a.PlanID != nil {
		t.Errorf("Expected nil PlanID, got %v", *a.PlanID)
	}
	if len(a.WeeklyVolume) != 7 {
		t.Errorf("Expected 7 weekly volume slots, got %d", len(a.WeeklyVolume))
	}
	if a.Activities == nil || a.Metrics == nil || a.PRs == nil {
		t.Error("Expected empty slices, got nil")
	}
	if a.Stats.Sleep != "0h 0m" {
		t.Errorf("Expected zeroed stats snapshot, got %+v", a.Stats)
	}
}

func TestNormalizePreservesExisting(t *testing.T) {
	planID := "plan_1"
	a := &AthleteData{
		ID:     "athlete_2",
		UserID: "athlete_2",
		VDOT:   48,
		Plan:   "Marathon",
		PlanID: &planID,
	}
	a.Normalize()

	if a.VDOT != 48 || a.Plan != "Marathon" {
		t.Errorf("Normalize clobbered existing fields: %+v", a)
	}
	if a.PlanID == nil || *a.PlanID != "plan_1" {
		t.Error("Normalize clobbered PlanID")
	}
}

func TestDecodeLegacyRecord(t *testing.T) {
	// Old schema: string distances, no planId, no metrics.
	raw := `{"id":"athlete_3","userId":"athlete_3","vdot":42,
		"activities":[{"id":"activity_1","date":"2024-11-02","type":"easy","distanceKm":"12.5","timeMin":"64","pace":"5:07","notes":""}]}`

	var a AthleteData
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "\n", "")), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	a.Normalize()

	if got := float64(a.Activities[0].DistanceKm); got != 12.5 {
		t.Errorf("Expected string distance decoded as 12.5, got %v", got)
	}
	if got := float64(a.Activities[0].TimeMin); got != 64 {
		t.Errorf("Expected string time decoded as 64, got %v", got)
	}
	if a.Metrics == nil || a.PlanID != nil {
		t.Error("Expected normalized defaults for missing fields")
	}
}

func TestFlexFloatGarbageDecodesToZero(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"Number", `7.5`, 7.5},
		{"QuotedNumber", `"7.5"`, 7.5},
		{"Null", `null`, 0},
		{"Garbage", `"12km"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if float64(f) != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, float64(f))
			}
		})
	}
}

func TestNewIDFormat(t *testing.T) {
	id := NewID("activity")
	if !strings.HasPrefix(id, "activity_") {
		t.Errorf("Expected activity_ prefix, got %s", id)
	}
	if len(strings.Split(id, "_")) != 3 {
		t.Errorf("Expected prefix_timestamp_random, got %s", id)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("metrics")
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
