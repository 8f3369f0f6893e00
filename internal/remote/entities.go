// ABOUTME: Per-entity-type cloud operations: fetch-all, upsert-many, delete.
// ABOUTME: All operations are scoped to one user id; empty upserts are no-ops.
package remote

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// fetchAll lists every record under "<prefix><userID>:" and converts each
// wire record to its model. Records that fail to decode are skipped; one
// corrupt cloud row must not block the rest of the entity type.
func fetchAll[R, T any](c *Client, prefix, userID string, conv func(*R) *T) ([]*T, error) {
	raw, err := c.listByPrefix(prefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", prefix, err)
	}

	var out []*T
	for _, data := range raw {
		rec, err := unmarshalJSON[R](data)
		if err != nil {
			continue
		}
		out = append(out, conv(rec))
	}
	return out, nil
}

// upsertMany writes a batch of records and pushes once at the end. An empty
// batch is a no-op, including the push.
func upsertMany[T, R any](c *Client, prefix string, items []*T, userID func(*T) string, id func(*T) string, conv func(*T) *R) error {
	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		data, err := marshalJSON(conv(item))
		if err != nil {
			return fmt.Errorf("encode record %s: %w", id(item), err)
		}
		if err := c.set(scopedKey(prefix, userID(item), id(item)), data); err != nil {
			return fmt.Errorf("store record %s: %w", id(item), err)
		}
	}
	return c.Push()
}

// FetchWorkouts returns every cloud workout belonging to userID. Callers
// Refresh first to pull the latest cloud state.
func (c *Client) FetchWorkouts(userID string) ([]*models.WorkoutSession, error) {
	return fetchAll(c, WorkoutPrefix, userID, fromWorkoutRecord)
}

// UpsertWorkouts uploads a batch of workouts.
func (c *Client) UpsertWorkouts(userID string, workouts []*models.WorkoutSession) error {
	return upsertMany(c, WorkoutPrefix, workouts,
		func(w *models.WorkoutSession) string { return w.UserID },
		func(w *models.WorkoutSession) string { return w.ID },
		toWorkoutRecord)
}

// DeleteWorkout removes one cloud workout owned by userID.
func (c *Client) DeleteWorkout(userID, id string) error {
	return c.delete(scopedKey(WorkoutPrefix, userID, id))
}

// FetchWeightEntries returns every cloud weight entry belonging to userID.
func (c *Client) FetchWeightEntries(userID string) ([]*models.WeightEntry, error) {
	return fetchAll(c, WeightPrefix, userID, fromWeightRecord)
}

// UpsertWeightEntries uploads a batch of weight entries.
func (c *Client) UpsertWeightEntries(userID string, entries []*models.WeightEntry) error {
	return upsertMany(c, WeightPrefix, entries,
		func(e *models.WeightEntry) string { return e.UserID },
		func(e *models.WeightEntry) string { return e.ID },
		toWeightRecord)
}

// DeleteWeightEntry removes one cloud weight entry owned by userID.
func (c *Client) DeleteWeightEntry(userID, id string) error {
	return c.delete(scopedKey(WeightPrefix, userID, id))
}

// FetchMeasurements returns every cloud measurement belonging to userID.
func (c *Client) FetchMeasurements(userID string) ([]*models.Measurement, error) {
	return fetchAll(c, MeasurementPrefix, userID, fromMeasurementRecord)
}

// UpsertMeasurements uploads a batch of measurements.
func (c *Client) UpsertMeasurements(userID string, measurements []*models.Measurement) error {
	return upsertMany(c, MeasurementPrefix, measurements,
		func(m *models.Measurement) string { return m.UserID },
		func(m *models.Measurement) string { return m.ID },
		toMeasurementRecord)
}

// DeleteMeasurement removes one cloud measurement owned by userID.
func (c *Client) DeleteMeasurement(userID, id string) error {
	return c.delete(scopedKey(MeasurementPrefix, userID, id))
}

// FetchGoals returns every cloud goal belonging to userID.
func (c *Client) FetchGoals(userID string) ([]*models.Goal, error) {
	return fetchAll(c, GoalPrefix, userID, fromGoalRecord)
}

// UpsertGoals uploads a batch of goals.
func (c *Client) UpsertGoals(userID string, goals []*models.Goal) error {
	return upsertMany(c, GoalPrefix, goals,
		func(g *models.Goal) string { return g.UserID },
		func(g *models.Goal) string { return g.ID },
		toGoalRecord)
}

// FetchUserConfig returns the user's cloud config bundle, or ErrNotFound if
// the user has never uploaded one.
func (c *Client) FetchUserConfig(userID string) (*models.UserConfigBundle, error) {
	data, err := c.get(userConfigKey(userID))
	if err != nil {
		return nil, err
	}
	rec, err := unmarshalJSON[userConfigRecord](data)
	if err != nil {
		return nil, fmt.Errorf("decode user config: %w", err)
	}
	return fromUserConfigRecord(rec), nil
}

// PutUserConfig uploads the user's config bundle (single row per user).
func (c *Client) PutUserConfig(b *models.UserConfigBundle) error {
	data, err := marshalJSON(toUserConfigRecord(b))
	if err != nil {
		return fmt.Errorf("encode user config: %w", err)
	}
	if err := c.set(userConfigKey(b.UserID), data); err != nil {
		return fmt.Errorf("store user config: %w", err)
	}
	return c.Push()
}
