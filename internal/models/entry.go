// ABOUTME: WeightEntry and Measurement models for body-metric tracking.
// ABOUTME: Both are append-style time series keyed by id, scoped by user.
package models

import "time"

// WeightEntry is one logged body-weight measurement. Weight is stored in
// kilograms regardless of the display unit; Unit records what the user typed
// so the original reading can be shown back.
type WeightEntry struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
	Unit   string    `json:"unit"`
}

// NewWeightEntry creates an entry dated now. weightKg must already be in
// the canonical unit.
func NewWeightEntry(userID string, weightKg float64, unit string) *WeightEntry {
	return &WeightEntry{
		ID:     NewID(),
		UserID: userID,
		Weight: weightKg,
		Date:   time.Now(),
		Unit:   unit,
	}
}

const lbsPerKg = 2.2046226218

// ToKilograms converts a weight in the given unit to the canonical unit.
// Unknown units are treated as kilograms.
func ToKilograms(value float64, unit string) float64 {
	if unit == "lb" || unit == "lbs" {
		return value / lbsPerKg
	}
	return value
}

// FromKilograms converts a canonical weight into the given display unit.
func FromKilograms(kg float64, unit string) float64 {
	if unit == "lb" || unit == "lbs" {
		return kg * lbsPerKg
	}
	return kg
}

// Measurement is one entry of a user-defined body metric. Name acts as the
// grouping key: all entries sharing a name form that metric's time series.
type Measurement struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Value  float64   `json:"value"`
	Unit   string    `json:"unit,omitempty"`
	Date   time.Time `json:"date"`
}

// NewMeasurement creates a measurement entry dated now.
func NewMeasurement(userID, name string, value float64, unit string) *Measurement {
	return &Measurement{
		ID:     NewID(),
		UserID: userID,
		Name:   name,
		Value:  value,
		Unit:   unit,
		Date:   time.Now(),
	}
}

// LatestWeight returns the entry with the maximum date, or nil if entries is
// empty. The newest entry defines the user's current weight.
func LatestWeight(entries []*WeightEntry) *WeightEntry {
	var latest *WeightEntry
	for _, e := range entries {
		if latest == nil || e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest
}

// LatestMeasurements returns the max-by-date entry per distinct name.
func LatestMeasurements(entries []*Measurement) map[string]*Measurement {
	latest := make(map[string]*Measurement)
	for _, m := range entries {
		if cur, ok := latest[m.Name]; !ok || m.Date.After(cur.Date) {
			latest[m.Name] = m
		}
	}
	return latest
}
