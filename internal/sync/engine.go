// ABOUTME: Bidirectional sync engine between the local store and the cloud.
// ABOUTME: One pass runs all entity types in parallel under a single-flight lock.
package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/merge"
	"github.com/harperreed/fittrack/internal/migrate"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/remote"
	"github.com/harperreed/fittrack/internal/storage"
)

// ErrSyncInProgress is returned when a pass is requested while another pass
// holds the lock. The request is dropped, not queued.
var ErrSyncInProgress = errors.New("sync already in progress")

// State is the engine's activity indicator.
type State int32

const (
	StateIdle State = iota
	StateSyncing
	StateError
)

func (s State) String() string {
	switch s {
	case StateSyncing:
		return "syncing"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Remote is the cloud surface the engine drives. *remote.Client satisfies it;
// tests substitute an in-memory implementation.
type Remote interface {
	Refresh() error
	FetchWorkouts(userID string) ([]*models.WorkoutSession, error)
	UpsertWorkouts(userID string, workouts []*models.WorkoutSession) error
	DeleteWorkout(userID, id string) error
	FetchWeightEntries(userID string) ([]*models.WeightEntry, error)
	UpsertWeightEntries(userID string, entries []*models.WeightEntry) error
	DeleteWeightEntry(userID, id string) error
	FetchMeasurements(userID string) ([]*models.Measurement, error)
	UpsertMeasurements(userID string, measurements []*models.Measurement) error
	DeleteMeasurement(userID, id string) error
	FetchGoals(userID string) ([]*models.Goal, error)
	UpsertGoals(userID string, goals []*models.Goal) error
	FetchUserConfig(userID string) (*models.UserConfigBundle, error)
	PutUserConfig(b *models.UserConfigBundle) error
}

// Report summarizes one sync pass. Each entity type syncs independently, so
// a pass can partially succeed; Errors maps entity name to its failure.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Errors     map[string]error
}

// Failed reports whether any entity type failed during the pass.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Err joins the per-entity failures into one error, or nil on full success.
func (r *Report) Err() error {
	if !r.Failed() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for name, err := range r.Errors {
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return errors.Join(errs...)
}

// Engine coordinates sync passes. Mutating commands call SyncNow directly;
// preference edits go through RequestSync, which debounces bursts into one
// pass.
type Engine struct {
	db     *storage.DB
	remote Remote
	prefs  *config.Prefs
	userID string
	logger *log.Logger

	syncing  atomic.Bool
	state    atomic.Int32
	debounce *Debouncer

	mu         sync.Mutex
	lastReport *Report

	// onReload runs after every completed pass so open views can re-read
	// freshly merged data.
	onReload func()
}

// New builds an engine for one user. A nil logger falls back to the default.
func New(db *storage.DB, rem Remote, prefs *config.Prefs, userID string, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		db:     db,
		remote: rem,
		prefs:  prefs,
		userID: userID,
		logger: logger.With("component", "sync"),
	}
	interval := time.Duration(config.DefaultDebounceMs) * time.Millisecond
	if prefs != nil {
		interval = prefs.DebounceInterval()
	}
	e.debounce = NewDebouncer(interval, func() {
		if _, err := e.SyncNow(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			e.logger.Error("background sync failed", "err", err)
		}
	})
	return e
}

// OnReload registers the callback invoked after each completed pass.
func (e *Engine) OnReload(fn func()) {
	e.mu.Lock()
	e.onReload = fn
	e.mu.Unlock()
}

// State returns the engine's current activity state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// LastReport returns the most recent pass report, or nil before the first
// pass.
func (e *Engine) LastReport() *Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastReport
}

// RequestSync schedules a debounced pass. Rapid calls collapse into a single
// pass that runs once the burst goes quiet.
func (e *Engine) RequestSync() {
	e.debounce.Trigger()
}

// Stop cancels any pending debounced pass. When one was pending it runs
// immediately instead, so changes made just before shutdown still sync.
func (e *Engine) Stop() {
	if e.debounce.Stop() {
		if _, err := e.SyncNow(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			e.logger.Error("final sync failed", "err", err)
		}
	}
}

// SyncNow runs one full pass: refresh the cloud snapshot, then reconcile all
// entity types in parallel. A pass already in flight makes this return
// ErrSyncInProgress immediately; the caller's changes ride along on the next
// pass. The returned Report carries per-entity failures.
func (e *Engine) SyncNow(ctx context.Context) (*Report, error) {
	if !e.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer e.syncing.Store(false)

	e.state.Store(int32(StateSyncing))
	report := &Report{StartedAt: time.Now(), Errors: map[string]error{}}
	e.logger.Debug("sync pass started", "user", e.userID)

	// One refresh up front so every entity task reconciles against the same
	// cloud snapshot.
	if err := e.remote.Refresh(); err != nil {
		report.Errors["refresh"] = err
		e.finish(report)
		return report, report.Err()
	}

	var (
		wg      sync.WaitGroup
		errMu   sync.Mutex
		collect = func(name string, err error) {
			if err == nil {
				return
			}
			errMu.Lock()
			report.Errors[name] = err
			errMu.Unlock()
			e.logger.Warn("entity sync failed", "entity", name, "err", err)
		}
	)

	tasks := []struct {
		name string
		run  func(context.Context) error
	}{
		{"workouts", e.syncWorkouts},
		{"weight", e.syncWeightEntries},
		{"measurements", e.syncMeasurements},
		{"goals", e.syncGoals},
		{"userconfig", e.syncUserConfig},
	}
	for _, task := range tasks {
		wg.Add(1)
		go func(name string, run func(context.Context) error) {
			defer wg.Done()
			collect(name, run(ctx))
		}(task.name, task.run)
	}
	wg.Wait()

	e.finish(report)
	e.logger.Debug("sync pass finished", "failed", report.Failed(),
		"took", report.FinishedAt.Sub(report.StartedAt))
	return report, report.Err()
}

func (e *Engine) finish(report *Report) {
	report.FinishedAt = time.Now()
	if report.Failed() {
		e.state.Store(int32(StateError))
	} else {
		e.state.Store(int32(StateIdle))
	}
	e.mu.Lock()
	e.lastReport = report
	reload := e.onReload
	e.mu.Unlock()
	if reload != nil {
		reload()
	}
}

// syncEntity reconciles one entity type: list both sides, normalize legacy
// records, merge under the type's policy, write the merged-in remote rows
// locally, and upload the full merged set.
func syncEntity[T any](ctx context.Context, e *Engine, table string, policy merge.Policy,
	fetch func(string) ([]*T, error),
	upload func(string, []*T) error,
	id func(*T) string,
	normalize func(*T) bool,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	local, err := storage.List[T](e.db, table, e.userID)
	if err != nil {
		return fmt.Errorf("list local: %w", err)
	}
	cloud, err := fetch(e.userID)
	if err != nil {
		return fmt.Errorf("fetch cloud: %w", err)
	}

	// Legacy records are normalized in place before the merge so both sides
	// compare on the current shape. Changed local rows are rewritten even if
	// the merge itself leaves them alone.
	changed := map[string]bool{}
	if normalize != nil {
		for _, item := range local {
			if normalize(item) {
				changed[id(item)] = true
			}
		}
		for _, item := range cloud {
			normalize(item)
		}
	}

	res := merge.Reconcile(policy, local, cloud, id)
	for _, item := range res.ToWrite {
		changed[id(item)] = false
		if err := storage.Put(e.db, table, id(item), e.userID, item); err != nil {
			return fmt.Errorf("write local: %w", err)
		}
	}
	for _, item := range res.Merged {
		if changed[id(item)] {
			if err := storage.Put(e.db, table, id(item), e.userID, item); err != nil {
				return fmt.Errorf("rewrite migrated: %w", err)
			}
		}
	}

	if err := upload(e.userID, res.Merged); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	return nil
}

func (e *Engine) syncWorkouts(ctx context.Context) error {
	return syncEntity(ctx, e, storage.TableWorkouts, merge.RemoteOverwrite,
		e.remote.FetchWorkouts, e.remote.UpsertWorkouts,
		func(w *models.WorkoutSession) string { return w.ID },
		migrate.Workout)
}

func (e *Engine) syncWeightEntries(ctx context.Context) error {
	return syncEntity(ctx, e, storage.TableWeightEntries, merge.InsertOnlyIfMissing,
		e.remote.FetchWeightEntries, e.remote.UpsertWeightEntries,
		func(en *models.WeightEntry) string { return en.ID },
		migrate.WeightEntry)
}

func (e *Engine) syncMeasurements(ctx context.Context) error {
	return syncEntity(ctx, e, storage.TableMeasurements, merge.InsertOnlyIfMissing,
		e.remote.FetchMeasurements, e.remote.UpsertMeasurements,
		func(m *models.Measurement) string { return m.ID },
		nil)
}

func (e *Engine) syncGoals(ctx context.Context) error {
	return syncEntity(ctx, e, storage.TableGoals, merge.RemoteOverwrite,
		e.remote.FetchGoals, e.remote.UpsertGoals,
		func(g *models.Goal) string { return g.ID },
		migrate.Goal)
}

// syncUserConfig merges the single preference bundle. A user who has never
// uploaded one gets their local bundle pushed as-is.
func (e *Engine) syncUserConfig(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	local := e.prefs.Bundle(e.userID)
	cloud, err := e.remote.FetchUserConfig(e.userID)
	if err != nil && !errors.Is(err, remote.ErrNotFound) {
		return fmt.Errorf("fetch cloud: %w", err)
	}

	merged := merge.Bundles(local, cloud)
	if err := e.prefs.ApplyBundle(merged); err != nil {
		return fmt.Errorf("apply merged bundle: %w", err)
	}
	// A fresh install with no preferences has nothing worth claiming the
	// cloud slot for.
	if cloud == nil && merged.IsEmpty() {
		return nil
	}
	if err := e.remote.PutUserConfig(merged); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	return nil
}

// DeleteWorkout removes a workout locally and mirrors the delete to the
// cloud. A failed cloud delete is logged, not rolled back; the row will
// reappear locally on the next pass.
func (e *Engine) DeleteWorkout(idOrPrefix string) error {
	id, err := e.db.DeleteWorkout(idOrPrefix)
	if err != nil {
		return err
	}
	if err := e.remote.DeleteWorkout(e.userID, id); err != nil {
		e.logger.Warn("cloud delete failed, record may resurface", "entity", "workout", "id", id, "err", err)
	}
	return nil
}

// DeleteWeightEntry removes a weight entry locally and mirrors the delete to
// the cloud.
func (e *Engine) DeleteWeightEntry(idOrPrefix string) error {
	id, err := e.db.DeleteWeightEntry(idOrPrefix)
	if err != nil {
		return err
	}
	if err := e.remote.DeleteWeightEntry(e.userID, id); err != nil {
		e.logger.Warn("cloud delete failed, record may resurface", "entity", "weight", "id", id, "err", err)
	}
	return nil
}

// DeleteMeasurement removes a measurement locally and mirrors the delete to
// the cloud.
func (e *Engine) DeleteMeasurement(idOrPrefix string) error {
	id, err := e.db.DeleteMeasurement(idOrPrefix)
	if err != nil {
		return err
	}
	if err := e.remote.DeleteMeasurement(e.userID, id); err != nil {
		e.logger.Warn("cloud delete failed, record may resurface", "entity", "measurement", "id", id, "err", err)
	}
	return nil
}

// DeleteGoal removes a goal locally only. The cloud copy is left in place,
// so a later pass restores the goal under the remote-overwrite policy.
func (e *Engine) DeleteGoal(idOrPrefix string) error {
	_, err := e.db.DeleteGoal(idOrPrefix)
	return err
}
