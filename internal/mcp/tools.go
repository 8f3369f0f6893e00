// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Provides CRUD operations for workouts, weight, measurements, and goals.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Create a new workout session",
	}, s.handleLogWorkout)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a set for an exercise within an existing workout",
	}, s.handleLogSet)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workout sessions",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout session with all exercises and sets",
	}, s.handleGetWorkout)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a body-weight entry (kg or lb)",
	}, s.handleLogWeight)

	// log_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record a body measurement (waist, biceps, body fat, etc.)",
	}, s.handleLogMeasurement)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a fitness goal, manual or auto-tracked",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals, active by default",
	}, s.handleListGoals)

	// record_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_progress",
		Description: "Record a progress value for a manual goal",
	}, s.handleRecordProgress)

	// complete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_goal",
		Description: "Mark a goal as completed",
	}, s.handleCompleteGoal)

	// sync_now
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sync_now",
		Description: "Run a full sync pass with the cloud store",
	}, s.handleSyncNow)
}

// Tool input/output types

type logWorkoutInput struct {
	Title string `json:"title" jsonschema:"Session title (Push Day, Morning Run)"`
	Date  string `json:"date,omitempty" jsonschema:"Session date (ISO 8601), defaults to now"`
	Notes string `json:"notes,omitempty" jsonschema:"Free-text session notes"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type logSetInput struct {
	WorkoutID string  `json:"workout_id" jsonschema:"Workout ID or prefix"`
	Exercise  string  `json:"exercise" jsonschema:"Exercise name"`
	Category  string  `json:"category,omitempty" jsonschema:"Exercise category (chest, legs, cardio)"`
	Weight    float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Reps      int     `json:"reps,omitempty" jsonschema:"Repetitions"`
	Distance  float64 `json:"distance,omitempty" jsonschema:"Distance in km"`
	Duration  float64 `json:"duration,omitempty" jsonschema:"Duration in seconds"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type workoutIDInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type logWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight value"`
	Unit   string  `json:"unit,omitempty" jsonschema:"kg or lb (default kg)"`
}

type logMeasurementInput struct {
	Name  string  `json:"name" jsonschema:"Measurement name (waist, biceps, body_fat)"`
	Value float64 `json:"value" jsonschema:"The measured value"`
	Unit  string  `json:"unit,omitempty" jsonschema:"Unit of measurement (cm, %, kg)"`
}

type addGoalInput struct {
	Type        string  `json:"type" jsonschema:"Goal type (weight, strength, frequency)"`
	Title       string  `json:"title" jsonschema:"Goal title"`
	Target      float64 `json:"target" jsonschema:"Target value"`
	Unit        string  `json:"unit,omitempty" jsonschema:"Unit for the target value"`
	Exercise    string  `json:"exercise,omitempty" jsonschema:"Exercise an auto rule tracks"`
	Aggregation string  `json:"aggregation,omitempty" jsonschema:"Auto rule (max_weight, session_count, body_weight); omit for manual goals"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type listGoalsInput struct {
	All bool `json:"all,omitempty" jsonschema:"Include completed and archived goals"`
}

type recordProgressInput struct {
	ID    string  `json:"id" jsonschema:"Goal ID or prefix"`
	Value float64 `json:"value" jsonschema:"Current progress value"`
	Note  string  `json:"note,omitempty" jsonschema:"Optional note for this progress point"`
}

type goalIDInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w := models.NewWorkoutSession(s.userID, input.Title)

	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02", input.Date)
		}
		if err == nil {
			w.WithDate(t)
		}
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	if err := s.db.SaveWorkout(w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}
	s.afterMutation()

	return nil, workoutOutput{
		ID:      w.ID,
		Title:   w.Title,
		Message: fmt.Sprintf("Logged workout %q (ID: %s)", w.Title, w.ID),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.db.GetWorkout(input.WorkoutID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutID)
	}

	// Reuse the session's exercise when the name matches; otherwise add one.
	var ex *models.Exercise
	for i := range w.Exercises {
		if w.Exercises[i].Name == input.Exercise {
			ex = &w.Exercises[i]
			break
		}
	}
	if ex == nil {
		ex = w.AddExercise(input.Exercise, input.Category)
	}

	ex.AddSet(models.SetLog{
		Weight:   input.Weight,
		Reps:     input.Reps,
		Distance: input.Distance,
		Duration: input.Duration,
	})

	if err := s.db.SaveWorkout(w); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}
	s.afterMutation()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged set for %s in workout %q", input.Exercise, w.Title),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.db.ListWorkouts(s.userID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, any, error) {
	w, err := s.db.GetWorkout(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}
	return nil, w, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	var err error
	if s.engine != nil {
		err = s.engine.DeleteWorkout(input.ID)
	} else {
		_, err = s.db.DeleteWorkout(input.ID)
	}
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", input.ID),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	unit := input.Unit
	if unit == "" {
		unit = "kg"
	}

	e := models.NewWeightEntry(s.userID, models.ToKilograms(input.Weight, unit), unit)
	if err := s.db.SaveWeightEntry(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save weight entry: %w", err)
	}
	s.afterMutation()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged weight %.1f %s (ID: %s)", input.Weight, unit, e.ID),
	}, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	m := models.NewMeasurement(s.userID, input.Name, input.Value, input.Unit)
	if err := s.db.SaveMeasurement(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save measurement: %w", err)
	}
	s.afterMutation()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %.1f %s (ID: %s)", input.Name, input.Value, input.Unit, m.ID),
	}, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	if !models.IsValidGoalType(input.Type) {
		return nil, goalOutput{}, fmt.Errorf("unknown goal type: %s", input.Type)
	}

	g := models.NewGoal(s.userID, models.GoalType(input.Type), input.Title, input.Target)
	g.Unit = input.Unit
	if input.Aggregation != "" {
		g.WithAutoRule(models.AutoRule{
			Exercise:    input.Exercise,
			Aggregation: input.Aggregation,
		})
	}

	if err := s.db.SaveGoal(g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to save goal: %w", err)
	}
	s.afterMutation()

	return nil, goalOutput{
		ID:      g.ID,
		Title:   g.Title,
		Message: fmt.Sprintf("Added goal %q (ID: %s)", g.Title, g.ID),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	goalList, err := s.db.ListGoals(s.userID, !input.All)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if len(goalList) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}
	return nil, goalList, nil
}

func (s *Server) handleRecordProgress(ctx context.Context, req *mcp.CallToolRequest, input recordProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	g, err := s.db.GetGoal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}
	if g.DataSource == models.SourceAuto {
		return nil, simpleOutput{}, fmt.Errorf("goal %q is auto-tracked; progress is computed from logged data", g.DisplayTitle())
	}

	g.RecordProgress(input.Value, input.Note)
	if err := s.db.SaveGoal(g); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save goal: %w", err)
	}
	s.afterMutation()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %.1f for goal %q", input.Value, g.DisplayTitle()),
	}, nil
}

func (s *Server) handleCompleteGoal(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	g, err := s.db.GetGoal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	g.Complete()
	if err := s.db.SaveGoal(g); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save goal: %w", err)
	}
	s.afterMutation()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Completed goal %q", g.DisplayTitle()),
	}, nil
}

func (s *Server) handleSyncNow(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if s.engine == nil {
		return nil, simpleOutput{Message: "Not linked to a cloud account; nothing to sync."}, nil
	}

	report, err := s.engine.SyncNow(ctx)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("sync failed: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Sync complete in %s", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)),
	}, nil
}
