// ABOUTME: MCP tool implementations for the coaching roster.
// ABOUTME: Exposes athlete queries, history appends, plans, and alert handling.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/contratempo/internal/aggregate"
	"github.com/harperreed/contratempo/internal/models"
)

func (s *Server) registerTools() {
	// list_athletes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_athletes",
		Description: "List all registered athletes",
	}, s.handleListAthletes)

	// get_athlete
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_athlete",
		Description: "Get an athlete's full training profile",
	}, s.handleGetAthlete)

	// add_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_activity",
		Description: "Log a training session for an athlete",
	}, s.handleAddActivity)

	// add_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_metrics",
		Description: "Log a daily wellness check-in for an athlete",
	}, s.handleAddMetrics)

	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List all training plans",
	}, s.handleListPlans)

	// assign_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_plan",
		Description: "Assign a training plan to an athlete (empty plan_id unassigns)",
	}, s.handleAssignPlan)

	// list_alerts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_alerts",
		Description: "List active alerts, optionally for one athlete",
	}, s.handleListAlerts)

	// resolve_alert
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "resolve_alert",
		Description: "Mark an alert as resolved",
	}, s.handleResolveAlert)

	// weekly_volume
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_volume",
		Description: "Trailing 7-day training volume and average pace for an athlete",
	}, s.handleWeeklyVolume)
}

// Tool input/output types

type athleteIDInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user ID"`
}

type addActivityInput struct {
	AthleteID  string  `json:"athlete_id" jsonschema:"Athlete user ID"`
	Date       string  `json:"date" jsonschema:"Session date (YYYY-MM-DD)"`
	Type       string  `json:"type,omitempty" jsonschema:"Session type (easy, tempo, interval, long, race)"`
	DistanceKm float64 `json:"distance_km" jsonschema:"Distance in kilometers"`
	TimeMin    float64 `json:"time_min,omitempty" jsonschema:"Duration in minutes"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Session notes"`
}

type addMetricsInput struct {
	AthleteID   string  `json:"athlete_id" jsonschema:"Athlete user ID"`
	Date        string  `json:"date" jsonschema:"Check-in date (YYYY-MM-DD)"`
	SleepHours  float64 `json:"sleep_hours,omitempty" jsonschema:"Hours slept last night"`
	HRV         float64 `json:"hrv,omitempty" jsonschema:"Heart rate variability in ms"`
	WeightKg    float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg"`
	RecoveryPct float64 `json:"recovery_pct,omitempty" jsonschema:"Recovery score 0-100"`
}

type assignPlanInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user ID"`
	PlanID    string `json:"plan_id,omitempty" jsonschema:"Plan ID to assign; empty unassigns"`
}

type listAlertsInput struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Filter to one athlete"`
}

type resolveAlertInput struct {
	ID string `json:"id" jsonschema:"Alert ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type volumeOutput struct {
	AthleteID      string  `json:"athlete_id"`
	WeeklyVolumeKm float64 `json:"weekly_volume_km"`
	AveragePace    string  `json:"average_pace"`
	ActivityCount  int     `json:"activity_count"`
}

// Tool handlers

func (s *Server) handleListAthletes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	athletes, err := s.manager.Athletes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	if len(athletes) == 0 {
		return nil, map[string]interface{}{"message": "No athletes registered."}, nil
	}

	// Strip credentials from tool output
	type athleteSummary struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
	}
	out := make([]athleteSummary, 0, len(athletes))
	for _, a := range athletes {
		out = append(out, athleteSummary{ID: a.ID, Name: a.Name, Email: a.Email})
	}
	return nil, out, nil
}

func (s *Server) handleGetAthlete(ctx context.Context, req *mcp.CallToolRequest, input athleteIDInput) (*mcp.CallToolResult, any, error) {
	profile, err := s.manager.AthleteData(input.AthleteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	if profile == nil {
		return nil, nil, fmt.Errorf("athlete not found: %s", input.AthleteID)
	}
	return nil, profile, nil
}

func (s *Server) handleAddActivity(ctx context.Context, req *mcp.CallToolRequest, input addActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.manager.AddActivity(input.AthleteID, models.ActivityEntry{
		Date:       input.Date,
		Type:       input.Type,
		DistanceKm: models.FlexFloat(input.DistanceKm),
		TimeMin:    models.FlexFloat(input.TimeMin),
		Notes:      input.Notes,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f km on %s (ID: %s)", input.DistanceKm, input.Date, entry.ID),
	}, nil
}

func (s *Server) handleAddMetrics(ctx context.Context, req *mcp.CallToolRequest, input addMetricsInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.manager.AddMetrics(input.AthleteID, models.MetricsEntry{
		Date:        input.Date,
		SleepHours:  input.SleepHours,
		HRV:         input.HRV,
		WeightKg:    input.WeightKg,
		RecoveryPct: input.RecoveryPct,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add metrics: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged check-in for %s (ID: %s)", input.Date, entry.ID),
	}, nil
}

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans, err := s.manager.Plans()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 {
		return nil, map[string]interface{}{"message": "No training plans."}, nil
	}
	return nil, plans, nil
}

func (s *Server) handleAssignPlan(ctx context.Context, req *mcp.CallToolRequest, input assignPlanInput) (*mcp.CallToolResult, simpleOutput, error) {
	var planID *string
	if input.PlanID != "" {
		plan, err := s.manager.Plan(input.PlanID)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to look up plan: %w", err)
		}
		if plan == nil {
			return nil, simpleOutput{}, fmt.Errorf("plan not found: %s", input.PlanID)
		}
		planID = &input.PlanID
	}

	if err := s.manager.AssignPlanToAthlete(input.AthleteID, planID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to assign plan: %w", err)
	}

	msg := fmt.Sprintf("Assigned plan %s to %s", input.PlanID, input.AthleteID)
	if planID == nil {
		msg = fmt.Sprintf("Unassigned plan from %s", input.AthleteID)
	}
	return nil, simpleOutput{Message: msg}, nil
}

func (s *Server) handleListAlerts(ctx context.Context, req *mcp.CallToolRequest, input listAlertsInput) (*mcp.CallToolResult, any, error) {
	alerts, err := s.manager.UnresolvedAlerts(input.AthleteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if len(alerts) == 0 {
		return nil, map[string]interface{}{"message": "No active alerts."}, nil
	}
	return nil, alerts, nil
}

func (s *Server) handleResolveAlert(ctx context.Context, req *mcp.CallToolRequest, input resolveAlertInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.manager.ResolveAlert(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Resolved alert: %s", input.ID)}, nil
}

func (s *Server) handleWeeklyVolume(ctx context.Context, req *mcp.CallToolRequest, input athleteIDInput) (*mcp.CallToolResult, volumeOutput, error) {
	profile, err := s.manager.AthleteData(input.AthleteID)
	if err != nil {
		return nil, volumeOutput{}, fmt.Errorf("failed to get athlete: %w", err)
	}
	if profile == nil {
		return nil, volumeOutput{}, fmt.Errorf("athlete not found: %s", input.AthleteID)
	}

	return nil, volumeOutput{
		AthleteID:      input.AthleteID,
		WeeklyVolumeKm: aggregate.WeeklyVolume(profile.Activities, 7),
		AveragePace:    aggregate.AveragePace(profile.Activities, 7),
		ActivityCount:  aggregate.RecentActivityCount(profile.Activities, 7),
	}, nil
}
