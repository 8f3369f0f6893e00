// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittrack://summary, fittrack://recent, and fittrack://goals.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://summary - current weight, latest measurements, active goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary",
		Name:        "Fitness Summary",
		Description: "Current weight, latest measurements, and active goals",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fittrack://recent - last 10 workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://recent",
		Name:        "Recent Workouts",
		Description: "The 10 most recent workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fittrack://goals - all goals with progress history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://goals",
		Name:        "Goals",
		Description: "All goals, including completed ones, with progress history",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{}

	if current, err := s.db.CurrentWeight(s.userID); err == nil {
		result["currentWeight"] = current
	}

	measurements, err := s.db.LatestMeasurements(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurements: %w", err)
	}
	result["measurements"] = measurements

	activeGoals, err := s.db.ListGoals(s.userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	result["activeGoals"] = activeGoals

	return jsonResource("fittrack://summary", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.db.ListWorkouts(s.userID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return jsonResource("fittrack://recent", map[string]interface{}{"workouts": workouts})
}

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goalList, err := s.db.ListGoals(s.userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return jsonResource("fittrack://goals", map[string]interface{}{"goals": goalList})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
