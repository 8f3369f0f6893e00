// ABOUTME: WorkoutSession, Exercise, SetLog and SubSetLog models.
// ABOUTME: A session holds an ordered list of exercises, each with set logs.
package models

import "time"

// Bodyweight modes for an exercise instance.
const (
	BodyweightNone     = "none"
	BodyweightFull     = "full"
	BodyweightAssisted = "assisted"
)

// Pyramid modes for an exercise instance.
const (
	PyramidDecreasing = "decreasing"
	PyramidIncreasing = "increasing"
)

// WorkoutSession is one logged training session.
type WorkoutSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes,omitempty"`
}

// Exercise is one exercise performed within a session. The name is
// denormalized on purpose: sessions stay readable even if the exercise
// definition it came from is later renamed or removed.
type Exercise struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Sets     []SetLog        `json:"sets"`
	LoggedAt *time.Time      `json:"loggedAt,omitempty"`
	Config   *InstanceConfig `json:"instanceConfig,omitempty"`
}

// InstanceConfig holds per-exercise-instance mode flags.
type InstanceConfig struct {
	EnablePyramid        bool   `json:"enablePyramid"`
	BodyweightMode       string `json:"bodyweightMode"`
	PyramidMode          string `json:"pyramidMode"`
	AutoCalculateSubSets bool   `json:"autoCalculateSubSets"`
}

// DefaultInstanceConfig returns the config assumed for exercises logged
// before instance configs existed.
func DefaultInstanceConfig() *InstanceConfig {
	return &InstanceConfig{
		EnablePyramid:        false,
		BodyweightMode:       BodyweightNone,
		PyramidMode:          PyramidDecreasing,
		AutoCalculateSubSets: false,
	}
}

// SetLog is one logged set. Which numeric fields are meaningful depends on
// the exercise's metric dimensions; unused fields stay zero.
type SetLog struct {
	ID       string             `json:"id"`
	Weight   float64            `json:"weight,omitempty"`
	Reps     int                `json:"reps,omitempty"`
	Distance float64            `json:"distance,omitempty"`
	Duration float64            `json:"duration,omitempty"`
	Speed    float64            `json:"speed,omitempty"`
	Custom   map[string]float64 `json:"custom,omitempty"`
	SubSets  []SubSetLog        `json:"subSets,omitempty"`
}

// SubSetLog is a drop-set or pyramid sub-set within a set.
type SubSetLog struct {
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	RestSeconds int     `json:"restSeconds,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// NewWorkoutSession creates a session for the given user dated now.
func NewWorkoutSession(userID, title string) *WorkoutSession {
	return &WorkoutSession{
		ID:     NewID(),
		UserID: userID,
		Date:   time.Now(),
		Title:  title,
	}
}

// WithDate sets a custom session date.
func (w *WorkoutSession) WithDate(t time.Time) *WorkoutSession {
	w.Date = t
	return w
}

// WithNotes sets free-text notes on the session.
func (w *WorkoutSession) WithNotes(notes string) *WorkoutSession {
	w.Notes = notes
	return w
}

// AddExercise appends an exercise and returns it for set logging.
func (w *WorkoutSession) AddExercise(name, category string) *Exercise {
	now := time.Now()
	w.Exercises = append(w.Exercises, Exercise{
		ID:       NewID(),
		Name:     name,
		Category: category,
		LoggedAt: &now,
		Config:   DefaultInstanceConfig(),
	})
	return &w.Exercises[len(w.Exercises)-1]
}

// AddSet appends a set log to the exercise.
func (e *Exercise) AddSet(s SetLog) {
	if s.ID == "" {
		s.ID = NewID()
	}
	e.Sets = append(e.Sets, s)
}

// IsComplete reports whether the session has at least one exercise with at
// least one logged set. Incomplete sessions are not persisted as finished
// workouts; that rule is enforced by the calling surface, not the engine.
func (w *WorkoutSession) IsComplete() bool {
	for _, e := range w.Exercises {
		if len(e.Sets) > 0 {
			return true
		}
	}
	return false
}

// TotalSets counts logged sets across all exercises.
func (w *WorkoutSession) TotalSets() int {
	n := 0
	for _, e := range w.Exercises {
		n += len(e.Sets)
	}
	return n
}
