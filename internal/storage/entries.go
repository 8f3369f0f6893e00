// ABOUTME: Typed WeightEntry and Measurement operations over document tables.
// ABOUTME: Includes latest-value queries used by goals and the CLI.
package storage

import (
	"fmt"
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

// SaveWeightEntry upserts a weight entry.
func (d *DB) SaveWeightEntry(e *models.WeightEntry) error {
	return Put(d, TableWeightEntries, e.ID, e.UserID, e)
}

// ListWeightEntries retrieves all of a user's weight entries, newest first.
func (d *DB) ListWeightEntries(userID string, limit int) ([]*models.WeightEntry, error) {
	entries, err := List[models.WeightEntry](d, TableWeightEntries, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// CurrentWeight returns the entry with the maximum date, or ErrNotFound if
// the user has no entries.
func (d *DB) CurrentWeight(userID string) (*models.WeightEntry, error) {
	entries, err := List[models.WeightEntry](d, TableWeightEntries, userID)
	if err != nil {
		return nil, err
	}
	latest := models.LatestWeight(entries)
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// DeleteWeightEntry removes an entry by ID or prefix, returning the full id.
func (d *DB) DeleteWeightEntry(idOrPrefix string) (string, error) {
	id, err := d.ResolveID(TableWeightEntries, idOrPrefix)
	if err != nil {
		return "", err
	}
	if err := d.Delete(TableWeightEntries, id); err != nil {
		return "", fmt.Errorf("delete weight entry: %w", err)
	}
	return id, nil
}

// SaveMeasurement upserts a custom body-metric measurement.
func (d *DB) SaveMeasurement(m *models.Measurement) error {
	return Put(d, TableMeasurements, m.ID, m.UserID, m)
}

// ListMeasurements retrieves a user's measurements, newest first, optionally
// filtered by metric name.
func (d *DB) ListMeasurements(userID, name string, limit int) ([]*models.Measurement, error) {
	all, err := List[models.Measurement](d, TableMeasurements, userID)
	if err != nil {
		return nil, err
	}

	var entries []*models.Measurement
	for _, m := range all {
		if name != "" && m.Name != name {
			continue
		}
		entries = append(entries, m)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// LatestMeasurements returns the newest entry per distinct metric name.
func (d *DB) LatestMeasurements(userID string) (map[string]*models.Measurement, error) {
	all, err := List[models.Measurement](d, TableMeasurements, userID)
	if err != nil {
		return nil, err
	}
	return models.LatestMeasurements(all), nil
}

// DeleteMeasurement removes a measurement by ID or prefix, returning the
// full id.
func (d *DB) DeleteMeasurement(idOrPrefix string) (string, error) {
	id, err := d.ResolveID(TableMeasurements, idOrPrefix)
	if err != nil {
		return "", err
	}
	if err := d.Delete(TableMeasurements, id); err != nil {
		return "", fmt.Errorf("delete measurement: %w", err)
	}
	return id, nil
}
