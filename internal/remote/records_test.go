// ABOUTME: Tests that wire-record conversions preserve every model field.
// ABOUTME: Uses fully-populated records so a dropped field fails DeepEqual.
package remote

import (
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func TestWorkoutRecordConversionExhaustive(t *testing.T) {
	loggedAt := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	w := &models.WorkoutSession{
		ID:     "1714588200000-0001",
		UserID: "user-1",
		Date:   time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		Title:  "Push Day",
		Notes:  "felt strong",
		Exercises: []models.Exercise{
			{
				ID:       "ex-1",
				Name:     "Bench Press",
				Category: "chest",
				LoggedAt: &loggedAt,
				Config: &models.InstanceConfig{
					EnablePyramid:        true,
					BodyweightMode:       models.BodyweightAssisted,
					PyramidMode:          models.PyramidIncreasing,
					AutoCalculateSubSets: true,
				},
				Sets: []models.SetLog{
					{
						ID:       "set-1",
						Weight:   80,
						Reps:     8,
						Distance: 1.5,
						Duration: 90,
						Speed:    12,
						Custom:   map[string]float64{"incline": 15},
						SubSets: []models.SubSetLog{
							{Weight: 60, Reps: 6, RestSeconds: 15, Note: "drop"},
						},
					},
				},
			},
		},
	}

	got := fromWorkoutRecord(toWorkoutRecord(w))
	if !reflect.DeepEqual(w, got) {
		t.Errorf("workout conversion dropped or mangled a field:\nwant %+v\ngot  %+v", w, got)
	}
}

func TestGoalRecordConversionExhaustive(t *testing.T) {
	active := true
	completed := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	g := &models.Goal{
		ID:           "1714588200000-0002",
		UserID:       "user-1",
		Type:         models.GoalStrength,
		Category:     "legs",
		Title:        "Squat 140",
		Label:        "squat goal",
		TargetValue:  140,
		CurrentValue: 120,
		Unit:         "kg",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		DataSource:   models.SourceAuto,
		AutoRule:     &models.AutoRule{Exercise: "Squat", Aggregation: models.AggMaxWeight},
		Progress: []models.ProgressEntry{
			{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Value: 110, Note: "pr"},
		},
		IsActive:    &active,
		CompletedAt: &completed,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got := fromGoalRecord(toGoalRecord(g))
	if !reflect.DeepEqual(g, got) {
		t.Errorf("goal conversion dropped or mangled a field:\nwant %+v\ngot  %+v", g, got)
	}
}

func TestUserConfigRecordConversionExhaustive(t *testing.T) {
	b := &models.UserConfigBundle{
		UserID:          "user-1",
		Tags:            []models.ExerciseTag{{Name: "push", Color: "#ff0000"}},
		CustomExercises: []models.CustomExercise{{Name: "Sled Push", Category: "legs", Dimensions: []string{"distance", "weight"}}},
		ExerciseNotes:   map[string]string{"Squat": "high bar"},
		RestPrefs:       map[string]int{"Squat": 180},
		Starred:         map[string]bool{"Deadlift": true},
		ExerciseOverrides: map[string]models.InstanceConfig{
			"Dips": {EnablePyramid: false, BodyweightMode: models.BodyweightFull, PyramidMode: models.PyramidDecreasing},
		},
		MetricDimensions:          map[string][]string{"Run": {"distance", "duration"}},
		MetricDimensionsUpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:                 time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	got := fromUserConfigRecord(toUserConfigRecord(b))
	if !reflect.DeepEqual(b, got) {
		t.Errorf("user config conversion dropped or mangled a field:\nwant %+v\ngot  %+v", b, got)
	}
}

func TestScopedKeyEmbedsUser(t *testing.T) {
	key := scopedKey(WorkoutPrefix, "user-1", "123")
	if key != "workout:user-1:123" {
		t.Errorf("scopedKey = %q", key)
	}
}
