// ABOUTME: Typed Goal operations over the goals document table.
// ABOUTME: Active goals sort before completed ones, newest start date first.
package storage

import (
	"fmt"
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

// SaveGoal upserts a goal.
func (d *DB) SaveGoal(g *models.Goal) error {
	return Put(d, TableGoals, g.ID, g.UserID, g)
}

// GetGoal retrieves a goal by ID or ID prefix.
func (d *DB) GetGoal(idOrPrefix string) (*models.Goal, error) {
	id, err := d.ResolveID(TableGoals, idOrPrefix)
	if err != nil {
		return nil, err
	}
	return Get[models.Goal](d, TableGoals, id)
}

// ListGoals retrieves a user's goals. With activeOnly set, archived goals
// are filtered out.
func (d *DB) ListGoals(userID string, activeOnly bool) ([]*models.Goal, error) {
	all, err := List[models.Goal](d, TableGoals, userID)
	if err != nil {
		return nil, err
	}

	var goals []*models.Goal
	for _, g := range all {
		if activeOnly && !g.Active() {
			continue
		}
		goals = append(goals, g)
	}

	sort.Slice(goals, func(i, j int) bool {
		gi, gj := goals[i], goals[j]
		if gi.Active() != gj.Active() {
			return gi.Active()
		}
		return gi.StartDate.After(gj.StartDate)
	})
	return goals, nil
}

// DeleteGoal removes a goal by ID or prefix, returning the full id.
//
// Note: goal deletion is local-only; the sync engine does not issue a remote
// delete for goals, so a deleted goal can reappear after the next sync if
// another device still has it. Completing a goal instead of deleting it is
// the supported flow.
func (d *DB) DeleteGoal(idOrPrefix string) (string, error) {
	id, err := d.ResolveID(TableGoals, idOrPrefix)
	if err != nil {
		return "", err
	}
	if err := d.Delete(TableGoals, id); err != nil {
		return "", fmt.Errorf("delete goal: %w", err)
	}
	return id, nil
}
