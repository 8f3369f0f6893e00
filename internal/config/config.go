// ABOUTME: Local preference storage as independently-keyed JSON blobs.
// ABOUTME: Each key is its own file; corrupt blobs fall back to defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// Preference keys. One file per key under the config dir; every mutation
// rewrites just its own blob.
const (
	keyDevice            = "device"
	keyUnitSystem        = "unit_system"
	keyLanguage          = "language"
	keyTags              = "tags"
	keyCustomExercises   = "custom_exercises"
	keyExerciseNotes     = "exercise_notes"
	keyRestPrefs         = "rest_prefs"
	keyStarred           = "starred"
	keyExerciseOverrides = "exercise_overrides"
	keyMetricDimensions  = "metric_dimensions"
	keyMetricDimsUpdated = "metric_dimensions_updated_at"
)

// DefaultDebounceMs is the sync debounce window applied when the device
// blob carries no override.
const DefaultDebounceMs = 2000

// Device holds per-device (not per-user) settings.
type Device struct {
	DeviceID       string `json:"deviceId"`
	SyncDebounceMs int    `json:"syncDebounceMs,omitempty"`
}

// Prefs reads and writes the preference blobs in one directory.
type Prefs struct {
	dir string
}

// Dir returns the default config directory following XDG spec.
func Dir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack")
}

// Open returns a Prefs rooted at dir, creating it if needed.
func Open(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &Prefs{dir: dir}, nil
}

// OpenDefault opens the prefs at the default XDG path.
func OpenDefault() (*Prefs, error) {
	return Open(Dir())
}

func (p *Prefs) path(key string) string {
	return filepath.Join(p.dir, key+".json")
}

// readKey decodes one blob. A missing or corrupt blob yields the default:
// a preference that cannot be parsed must not crash startup, and the bad
// value stays on disk until the next write replaces it.
func readKey[T any](p *Prefs, key string, def T) T {
	data, err := os.ReadFile(p.path(key))
	if err != nil {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def
	}
	return v
}

func writeKey[T any](p *Prefs, key string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path(key), data, 0600)
}

// Device returns the device blob, minting a device id on first use.
func (p *Prefs) Device() (Device, error) {
	d := readKey(p, keyDevice, Device{})
	if d.DeviceID == "" {
		d.DeviceID = uuid.NewString()
		if err := writeKey(p, keyDevice, d); err != nil {
			return d, err
		}
	}
	return d, nil
}

// DebounceInterval returns the configured sync debounce window.
func (p *Prefs) DebounceInterval() time.Duration {
	d := readKey(p, keyDevice, Device{})
	if d.SyncDebounceMs <= 0 {
		return DefaultDebounceMs * time.Millisecond
	}
	return time.Duration(d.SyncDebounceMs) * time.Millisecond
}

// UnitSystem returns "metric" or "imperial", defaulting to metric.
func (p *Prefs) UnitSystem() string {
	return readKey(p, keyUnitSystem, "metric")
}

// SetUnitSystem stores the display unit system.
func (p *Prefs) SetUnitSystem(system string) error {
	return writeKey(p, keyUnitSystem, system)
}

// Language returns the display language code, defaulting to "en".
func (p *Prefs) Language() string {
	return readKey(p, keyLanguage, "en")
}

// SetLanguage stores the display language code.
func (p *Prefs) SetLanguage(lang string) error {
	return writeKey(p, keyLanguage, lang)
}

// Tags returns the user-defined exercise tags.
func (p *Prefs) Tags() []models.ExerciseTag {
	return readKey(p, keyTags, []models.ExerciseTag(nil))
}

// SetTags replaces the tag list.
func (p *Prefs) SetTags(tags []models.ExerciseTag) error {
	return writeKey(p, keyTags, tags)
}

// CustomExercises returns the user-defined exercise definitions.
func (p *Prefs) CustomExercises() []models.CustomExercise {
	return readKey(p, keyCustomExercises, []models.CustomExercise(nil))
}

// SetCustomExercises replaces the custom exercise list.
func (p *Prefs) SetCustomExercises(exercises []models.CustomExercise) error {
	return writeKey(p, keyCustomExercises, exercises)
}

// ExerciseNotes returns the per-exercise note map.
func (p *Prefs) ExerciseNotes() map[string]string {
	return readKey(p, keyExerciseNotes, map[string]string{})
}

// SetExerciseNote stores (or clears, when note is empty) one exercise note.
func (p *Prefs) SetExerciseNote(exercise, note string) error {
	notes := p.ExerciseNotes()
	if note == "" {
		delete(notes, exercise)
	} else {
		notes[exercise] = note
	}
	return writeKey(p, keyExerciseNotes, notes)
}

// RestPrefs returns the per-exercise rest duration map (seconds).
func (p *Prefs) RestPrefs() map[string]int {
	return readKey(p, keyRestPrefs, map[string]int{})
}

// SetRestPref stores one exercise's preferred rest duration in seconds.
func (p *Prefs) SetRestPref(exercise string, seconds int) error {
	prefs := p.RestPrefs()
	if seconds <= 0 {
		delete(prefs, exercise)
	} else {
		prefs[exercise] = seconds
	}
	return writeKey(p, keyRestPrefs, prefs)
}

// Starred returns the per-exercise starred map.
func (p *Prefs) Starred() map[string]bool {
	return readKey(p, keyStarred, map[string]bool{})
}

// SetStarred stores one exercise's starred flag.
func (p *Prefs) SetStarred(exercise string, starred bool) error {
	star := p.Starred()
	if starred {
		star[exercise] = true
	} else {
		delete(star, exercise)
	}
	return writeKey(p, keyStarred, star)
}

// ExerciseOverrides returns the per-exercise default instance configs.
func (p *Prefs) ExerciseOverrides() map[string]models.InstanceConfig {
	return readKey(p, keyExerciseOverrides, map[string]models.InstanceConfig{})
}

// SetExerciseOverride stores one exercise's default instance config.
func (p *Prefs) SetExerciseOverride(exercise string, cfg models.InstanceConfig) error {
	overrides := p.ExerciseOverrides()
	overrides[exercise] = cfg
	return writeKey(p, keyExerciseOverrides, overrides)
}

// MetricDimensions returns the per-exercise selected metric dimensions.
func (p *Prefs) MetricDimensions() map[string][]string {
	return readKey(p, keyMetricDimensions, map[string][]string{})
}

// MetricDimensionsUpdatedAt returns when a dimension was last toggled on
// this device. The sync engine uses it to arbitrate dimension conflicts.
func (p *Prefs) MetricDimensionsUpdatedAt() time.Time {
	return readKey(p, keyMetricDimsUpdated, time.Time{})
}

// ToggleMetricDimension flips one dimension for an exercise and advances
// the last-update timestamp that guards this key during merges.
func (p *Prefs) ToggleMetricDimension(exercise, dimension string) error {
	dims := p.MetricDimensions()
	current := dims[exercise]

	found := false
	next := current[:0]
	for _, d := range current {
		if d == dimension {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		next = append(next, dimension)
	}
	if len(next) == 0 {
		delete(dims, exercise)
	} else {
		dims[exercise] = next
	}

	if err := writeKey(p, keyMetricDimensions, dims); err != nil {
		return err
	}
	return writeKey(p, keyMetricDimsUpdated, time.Now())
}

// setMetricDimensions replaces the dimension map and timestamp together;
// used when a merged bundle is applied.
func (p *Prefs) setMetricDimensions(dims map[string][]string, updatedAt time.Time) error {
	if err := writeKey(p, keyMetricDimensions, dims); err != nil {
		return err
	}
	return writeKey(p, keyMetricDimsUpdated, updatedAt)
}

// Bundle assembles the full user-config bundle for sync upload.
func (p *Prefs) Bundle(userID string) *models.UserConfigBundle {
	return &models.UserConfigBundle{
		UserID:                    userID,
		Tags:                      p.Tags(),
		CustomExercises:           p.CustomExercises(),
		ExerciseNotes:             p.ExerciseNotes(),
		RestPrefs:                 p.RestPrefs(),
		Starred:                   p.Starred(),
		ExerciseOverrides:         p.ExerciseOverrides(),
		MetricDimensions:          p.MetricDimensions(),
		MetricDimensionsUpdatedAt: p.MetricDimensionsUpdatedAt(),
		UpdatedAt:                 time.Now(),
	}
}

// ApplyBundle writes a merged bundle back into the preference blobs.
func (p *Prefs) ApplyBundle(b *models.UserConfigBundle) error {
	if err := writeKey(p, keyTags, b.Tags); err != nil {
		return err
	}
	if err := writeKey(p, keyCustomExercises, b.CustomExercises); err != nil {
		return err
	}
	if err := writeKey(p, keyExerciseNotes, b.ExerciseNotes); err != nil {
		return err
	}
	if err := writeKey(p, keyRestPrefs, b.RestPrefs); err != nil {
		return err
	}
	if err := writeKey(p, keyStarred, b.Starred); err != nil {
		return err
	}
	if err := writeKey(p, keyExerciseOverrides, b.ExerciseOverrides); err != nil {
		return err
	}
	return p.setMetricDimensions(b.MetricDimensions, b.MetricDimensionsUpdatedAt)
}
