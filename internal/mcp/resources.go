// ABOUTME: MCP resource implementations for the coaching roster.
// ABOUTME: Provides the contratempo://roster summary resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/contratempo/internal/aggregate"
)

func (s *Server) registerResources() {
	// contratempo://roster - every athlete with volume and alert counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "contratempo://roster",
		Name:        "Roster Summary",
		Description: "Every athlete with weekly volume, assigned plan, and active alert count",
		MIMEType:    "application/json",
	}, s.handleRosterResource)
}

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	athletes, err := s.manager.Athletes()
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	type rosterRow struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		VDOT           float64 `json:"vdot"`
		PlanID         string  `json:"plan_id,omitempty"`
		WeeklyVolumeKm float64 `json:"weekly_volume_km"`
		ActiveAlerts   int     `json:"active_alerts"`
	}

	rows := make([]rosterRow, 0, len(athletes))
	for _, u := range athletes {
		profile, err := s.manager.AthleteData(u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get athlete %s: %w", u.ID, err)
		}

		row := rosterRow{ID: u.ID, Name: u.Name}
		if profile != nil {
			row.VDOT = profile.VDOT
			if profile.PlanID != nil {
				row.PlanID = *profile.PlanID
			}
			row.WeeklyVolumeKm = aggregate.WeeklyVolume(profile.Activities, 7)
		}

		alerts, err := s.manager.UnresolvedAlerts(u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list alerts: %w", err)
		}
		row.ActiveAlerts = len(alerts)

		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "contratempo://roster",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
