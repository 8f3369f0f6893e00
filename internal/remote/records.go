// ABOUTME: Wire shapes for cloud records and their model conversions.
// ABOUTME: Remote fields are snake_case; every field is mapped, both ways.
package remote

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// The cloud rows predate this client and use snake_case field names. The
// conversions below must stay exhaustive: a field silently dropped here is a
// field silently erased on the next sync upload.

type workoutRecord struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Date      time.Time        `json:"date"`
	Title     string           `json:"title"`
	Exercises []exerciseRecord `json:"exercises"`
	Notes     string           `json:"notes,omitempty"`
}

type exerciseRecord struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Category string                `json:"category,omitempty"`
	Sets     []setRecord           `json:"sets"`
	LoggedAt *time.Time            `json:"logged_at,omitempty"`
	Config   *instanceConfigRecord `json:"instance_config,omitempty"`
}

type instanceConfigRecord struct {
	EnablePyramid        bool   `json:"enable_pyramid"`
	BodyweightMode       string `json:"bodyweight_mode"`
	PyramidMode          string `json:"pyramid_mode"`
	AutoCalculateSubSets bool   `json:"auto_calculate_sub_sets"`
}

type setRecord struct {
	ID       string             `json:"id"`
	Weight   float64            `json:"weight,omitempty"`
	Reps     int                `json:"reps,omitempty"`
	Distance float64            `json:"distance,omitempty"`
	Duration float64            `json:"duration,omitempty"`
	Speed    float64            `json:"speed,omitempty"`
	Custom   map[string]float64 `json:"custom,omitempty"`
	SubSets  []subSetRecord     `json:"sub_sets,omitempty"`
}

type subSetRecord struct {
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	RestSeconds int     `json:"rest_seconds,omitempty"`
	Note        string  `json:"note,omitempty"`
}

func toWorkoutRecord(w *models.WorkoutSession) *workoutRecord {
	rec := &workoutRecord{
		ID:     w.ID,
		UserID: w.UserID,
		Date:   w.Date,
		Title:  w.Title,
		Notes:  w.Notes,
	}
	for _, e := range w.Exercises {
		er := exerciseRecord{
			ID:       e.ID,
			Name:     e.Name,
			Category: e.Category,
			LoggedAt: e.LoggedAt,
		}
		if e.Config != nil {
			er.Config = &instanceConfigRecord{
				EnablePyramid:        e.Config.EnablePyramid,
				BodyweightMode:       e.Config.BodyweightMode,
				PyramidMode:          e.Config.PyramidMode,
				AutoCalculateSubSets: e.Config.AutoCalculateSubSets,
			}
		}
		for _, s := range e.Sets {
			sr := setRecord{
				ID:       s.ID,
				Weight:   s.Weight,
				Reps:     s.Reps,
				Distance: s.Distance,
				Duration: s.Duration,
				Speed:    s.Speed,
				Custom:   s.Custom,
			}
			for _, ss := range s.SubSets {
				sr.SubSets = append(sr.SubSets, subSetRecord{
					Weight:      ss.Weight,
					Reps:        ss.Reps,
					RestSeconds: ss.RestSeconds,
					Note:        ss.Note,
				})
			}
			er.Sets = append(er.Sets, sr)
		}
		rec.Exercises = append(rec.Exercises, er)
	}
	return rec
}

func fromWorkoutRecord(r *workoutRecord) *models.WorkoutSession {
	w := &models.WorkoutSession{
		ID:     r.ID,
		UserID: r.UserID,
		Date:   r.Date,
		Title:  r.Title,
		Notes:  r.Notes,
	}
	for _, er := range r.Exercises {
		e := models.Exercise{
			ID:       er.ID,
			Name:     er.Name,
			Category: er.Category,
			LoggedAt: er.LoggedAt,
		}
		if er.Config != nil {
			e.Config = &models.InstanceConfig{
				EnablePyramid:        er.Config.EnablePyramid,
				BodyweightMode:       er.Config.BodyweightMode,
				PyramidMode:          er.Config.PyramidMode,
				AutoCalculateSubSets: er.Config.AutoCalculateSubSets,
			}
		}
		for _, sr := range er.Sets {
			s := models.SetLog{
				ID:       sr.ID,
				Weight:   sr.Weight,
				Reps:     sr.Reps,
				Distance: sr.Distance,
				Duration: sr.Duration,
				Speed:    sr.Speed,
				Custom:   sr.Custom,
			}
			for _, ssr := range sr.SubSets {
				s.SubSets = append(s.SubSets, models.SubSetLog{
					Weight:      ssr.Weight,
					Reps:        ssr.Reps,
					RestSeconds: ssr.RestSeconds,
					Note:        ssr.Note,
				})
			}
			e.Sets = append(e.Sets, s)
		}
		w.Exercises = append(w.Exercises, e)
	}
	return w
}

type weightRecord struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
	Unit   string    `json:"unit"`
}

func toWeightRecord(e *models.WeightEntry) *weightRecord {
	return &weightRecord{ID: e.ID, UserID: e.UserID, Weight: e.Weight, Date: e.Date, Unit: e.Unit}
}

func fromWeightRecord(r *weightRecord) *models.WeightEntry {
	return &models.WeightEntry{ID: r.ID, UserID: r.UserID, Weight: r.Weight, Date: r.Date, Unit: r.Unit}
}

type measurementRecord struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Name   string    `json:"name"`
	Value  float64   `json:"value"`
	Unit   string    `json:"unit,omitempty"`
	Date   time.Time `json:"date"`
}

func toMeasurementRecord(m *models.Measurement) *measurementRecord {
	return &measurementRecord{ID: m.ID, UserID: m.UserID, Name: m.Name, Value: m.Value, Unit: m.Unit, Date: m.Date}
}

func fromMeasurementRecord(r *measurementRecord) *models.Measurement {
	return &models.Measurement{ID: r.ID, UserID: r.UserID, Name: r.Name, Value: r.Value, Unit: r.Unit, Date: r.Date}
}

type goalRecord struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Type         string           `json:"type"`
	Category     string           `json:"category,omitempty"`
	Title        string           `json:"title,omitempty"`
	Label        string           `json:"label,omitempty"`
	TargetValue  float64          `json:"target_value"`
	CurrentValue float64          `json:"current_value"`
	Unit         string           `json:"unit,omitempty"`
	StartDate    time.Time        `json:"start_date,omitempty"`
	TargetDate   time.Time        `json:"target_date,omitempty"`
	DataSource   string           `json:"data_source,omitempty"`
	AutoRule     *autoRuleRecord  `json:"auto_rule,omitempty"`
	Progress     []progressRecord `json:"progress_history,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type autoRuleRecord struct {
	Exercise    string `json:"exercise,omitempty"`
	Aggregation string `json:"aggregation"`
}

type progressRecord struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Note  string    `json:"note,omitempty"`
}

func toGoalRecord(g *models.Goal) *goalRecord {
	rec := &goalRecord{
		ID:           g.ID,
		UserID:       g.UserID,
		Type:         string(g.Type),
		Category:     g.Category,
		Title:        g.Title,
		Label:        g.Label,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate,
		TargetDate:   g.TargetDate,
		DataSource:   string(g.DataSource),
		IsActive:     g.IsActive,
		CompletedAt:  g.CompletedAt,
		CreatedAt:    g.CreatedAt,
	}
	if g.AutoRule != nil {
		rec.AutoRule = &autoRuleRecord{Exercise: g.AutoRule.Exercise, Aggregation: g.AutoRule.Aggregation}
	}
	for _, p := range g.Progress {
		rec.Progress = append(rec.Progress, progressRecord{Date: p.Date, Value: p.Value, Note: p.Note})
	}
	return rec
}

func fromGoalRecord(r *goalRecord) *models.Goal {
	g := &models.Goal{
		ID:           r.ID,
		UserID:       r.UserID,
		Type:         models.GoalType(r.Type),
		Category:     r.Category,
		Title:        r.Title,
		Label:        r.Label,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		StartDate:    r.StartDate,
		TargetDate:   r.TargetDate,
		DataSource:   models.DataSource(r.DataSource),
		IsActive:     r.IsActive,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
	}
	if r.AutoRule != nil {
		g.AutoRule = &models.AutoRule{Exercise: r.AutoRule.Exercise, Aggregation: r.AutoRule.Aggregation}
	}
	for _, p := range r.Progress {
		g.Progress = append(g.Progress, models.ProgressEntry{Date: p.Date, Value: p.Value, Note: p.Note})
	}
	return g
}

type userConfigRecord struct {
	UserID                    string                              `json:"user_id"`
	Tags                      []tagRecord                         `json:"tags,omitempty"`
	CustomExercises           []customExerciseRecord              `json:"custom_exercises,omitempty"`
	ExerciseNotes             map[string]string                   `json:"exercise_notes,omitempty"`
	RestPrefs                 map[string]int                      `json:"rest_prefs,omitempty"`
	Starred                   map[string]bool                     `json:"starred,omitempty"`
	ExerciseOverrides         map[string]instanceConfigRecord     `json:"exercise_overrides,omitempty"`
	MetricDimensions          map[string][]string                 `json:"metric_dimensions,omitempty"`
	MetricDimensionsUpdatedAt time.Time                           `json:"metric_dimensions_updated_at"`
	UpdatedAt                 time.Time                           `json:"updated_at"`
}

type tagRecord struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type customExerciseRecord struct {
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
}

func toUserConfigRecord(b *models.UserConfigBundle) *userConfigRecord {
	rec := &userConfigRecord{
		UserID:                    b.UserID,
		ExerciseNotes:             b.ExerciseNotes,
		RestPrefs:                 b.RestPrefs,
		Starred:                   b.Starred,
		MetricDimensions:          b.MetricDimensions,
		MetricDimensionsUpdatedAt: b.MetricDimensionsUpdatedAt,
		UpdatedAt:                 b.UpdatedAt,
	}
	for _, t := range b.Tags {
		rec.Tags = append(rec.Tags, tagRecord{Name: t.Name, Color: t.Color})
	}
	for _, ce := range b.CustomExercises {
		rec.CustomExercises = append(rec.CustomExercises, customExerciseRecord{
			Name: ce.Name, Category: ce.Category, Dimensions: ce.Dimensions,
		})
	}
	if b.ExerciseOverrides != nil {
		rec.ExerciseOverrides = make(map[string]instanceConfigRecord, len(b.ExerciseOverrides))
		for name, ic := range b.ExerciseOverrides {
			rec.ExerciseOverrides[name] = instanceConfigRecord{
				EnablePyramid:        ic.EnablePyramid,
				BodyweightMode:       ic.BodyweightMode,
				PyramidMode:          ic.PyramidMode,
				AutoCalculateSubSets: ic.AutoCalculateSubSets,
			}
		}
	}
	return rec
}

func fromUserConfigRecord(r *userConfigRecord) *models.UserConfigBundle {
	b := &models.UserConfigBundle{
		UserID:                    r.UserID,
		ExerciseNotes:             r.ExerciseNotes,
		RestPrefs:                 r.RestPrefs,
		Starred:                   r.Starred,
		MetricDimensions:          r.MetricDimensions,
		MetricDimensionsUpdatedAt: r.MetricDimensionsUpdatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
	for _, t := range r.Tags {
		b.Tags = append(b.Tags, models.ExerciseTag{Name: t.Name, Color: t.Color})
	}
	for _, ce := range r.CustomExercises {
		b.CustomExercises = append(b.CustomExercises, models.CustomExercise{
			Name: ce.Name, Category: ce.Category, Dimensions: ce.Dimensions,
		})
	}
	if r.ExerciseOverrides != nil {
		b.ExerciseOverrides = make(map[string]models.InstanceConfig, len(r.ExerciseOverrides))
		for name, ic := range r.ExerciseOverrides {
			b.ExerciseOverrides[name] = models.InstanceConfig{
				EnablePyramid:        ic.EnablePyramid,
				BodyweightMode:       ic.BodyweightMode,
				PyramidMode:          ic.PyramidMode,
				AutoCalculateSubSets: ic.AutoCalculateSubSets,
			}
		}
	}
	return b
}
