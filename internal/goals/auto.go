// ABOUTME: Auto-updater that recomputes auto-sourced goals from logged data.
// ABOUTME: Runs after mutating commands so goal progress tracks the log.
package goals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// Recompute re-evaluates every active auto-sourced goal for the user and
// records a progress point where the computed value moved. It returns the
// goals that changed.
func Recompute(db *storage.DB, userID string) ([]*models.Goal, error) {
	all, err := db.ListGoals(userID, true)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	var updated []*models.Goal
	for _, g := range all {
		if g.DataSource != models.SourceAuto || g.AutoRule == nil {
			continue
		}
		value, ok, err := evaluate(db, userID, g.AutoRule)
		if err != nil {
			return updated, fmt.Errorf("goal %s: %w", g.ID, err)
		}
		if !ok || value == g.CurrentValue {
			continue
		}
		g.RecordProgress(value, "auto")
		if err := db.SaveGoal(g); err != nil {
			return updated, fmt.Errorf("save goal %s: %w", g.ID, err)
		}
		updated = append(updated, g)
	}
	return updated, nil
}

// evaluate computes one rule's current value. ok is false when the data the
// rule needs does not exist yet, which is not an error.
func evaluate(db *storage.DB, userID string, rule *models.AutoRule) (float64, bool, error) {
	switch rule.Aggregation {
	case models.AggMaxWeight:
		return maxWeight(db, userID, rule.Exercise)
	case models.AggSessionCount:
		return sessionCount(db, userID)
	case models.AggBodyWeight:
		return bodyWeight(db, userID)
	default:
		return 0, false, fmt.Errorf("unknown aggregation %q", rule.Aggregation)
	}
}

// maxWeight finds the heaviest set ever logged for the exercise, sub-sets
// included. Exercise names compare case-insensitively.
func maxWeight(db *storage.DB, userID, exercise string) (float64, bool, error) {
	sessions, err := db.ListWorkouts(userID, 0)
	if err != nil {
		return 0, false, err
	}

	best := 0.0
	found := false
	for _, w := range sessions {
		for _, ex := range w.Exercises {
			if !strings.EqualFold(ex.Name, exercise) {
				continue
			}
			for _, set := range ex.Sets {
				if set.Weight > best {
					best = set.Weight
				}
				for _, sub := range set.SubSets {
					if sub.Weight > best {
						best = sub.Weight
					}
				}
				found = true
			}
		}
	}
	return best, found, nil
}

// sessionCount counts sessions dated in the current calendar month.
func sessionCount(db *storage.DB, userID string) (float64, bool, error) {
	sessions, err := db.ListWorkouts(userID, 0)
	if err != nil {
		return 0, false, err
	}

	now := time.Now()
	count := 0
	for _, w := range sessions {
		if w.Date.Year() == now.Year() && w.Date.Month() == now.Month() {
			count++
		}
	}
	return float64(count), true, nil
}

// bodyWeight reads the most recent weight entry.
func bodyWeight(db *storage.DB, userID string) (float64, bool, error) {
	current, err := db.CurrentWeight(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return current.Weight, true, nil
}
