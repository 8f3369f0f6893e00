// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One JSON-document table per synced entity type.
package storage

// Table names for the synced entity types. Records are stored as JSON
// documents: the merge engine and the CLI both read whole records, so there
// is nothing to gain from exploding them into columns.
const (
	TableWorkouts      = "workouts"
	TableWeightEntries = "weight_logs"
	TableMeasurements  = "custom_metrics"
	TableGoals         = "goals"
)

// Tables lists every document table, in no particular order.
var Tables = []string{TableWorkouts, TableWeightEntries, TableMeasurements, TableGoals}

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS weight_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS custom_metrics (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id);
	CREATE INDEX IF NOT EXISTS idx_weight_logs_user ON weight_logs(user_id);
	CREATE INDEX IF NOT EXISTS idx_custom_metrics_user ON custom_metrics(user_id);
	CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
