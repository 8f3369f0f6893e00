// ABOUTME: Typed WorkoutSession operations over the workouts document table.
// ABOUTME: Lists are sorted by session date descending (most recent first).
package storage

import (
	"fmt"
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

// SaveWorkout upserts a workout session.
func (d *DB) SaveWorkout(w *models.WorkoutSession) error {
	return Put(d, TableWorkouts, w.ID, w.UserID, w)
}

// GetWorkout retrieves a workout by ID or ID prefix.
func (d *DB) GetWorkout(idOrPrefix string) (*models.WorkoutSession, error) {
	id, err := d.ResolveID(TableWorkouts, idOrPrefix)
	if err != nil {
		return nil, err
	}
	return Get[models.WorkoutSession](d, TableWorkouts, id)
}

// ListWorkouts retrieves all of a user's workouts, most recent first.
func (d *DB) ListWorkouts(userID string, limit int) ([]*models.WorkoutSession, error) {
	workouts, err := List[models.WorkoutSession](d, TableWorkouts, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})

	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts, nil
}

// DeleteWorkout removes a workout by ID or prefix and returns the full id
// that was deleted, so the caller can mirror the delete to the remote store.
func (d *DB) DeleteWorkout(idOrPrefix string) (string, error) {
	id, err := d.ResolveID(TableWorkouts, idOrPrefix)
	if err != nil {
		return "", err
	}
	if err := d.Delete(TableWorkouts, id); err != nil {
		return "", fmt.Errorf("delete workout: %w", err)
	}
	return id, nil
}
