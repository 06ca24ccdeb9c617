// Package history keeps a local SQLite record of the artifacts nomoject has
// generated and the startup-task actions taken with them.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB is the history database.
type DB struct {
	conn *sql.DB
	path string
}

// New opens the history database at path, creating its directory and
// bringing the schema up to date.
func New(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA journal_mode = WAL"} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to configure history (%s): %w", pragma, err)
		}
	}

	d := &DB{conn: conn, path: path}
	if err := d.upgrade(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to upgrade history schema: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) Path() string {
	return d.path
}

// NewRunID returns an identifier tying one generate invocation's artifact
// to the task actions that followed it.
func NewRunID() string {
	return uuid.NewString()
}

// schema lists the migrations in order; schema[i] brings the database to
// version i+1.
var schema = []string{
	migrationV1,
	migrationV2,
}

// upgrade applies every migration newer than the recorded schema version,
// each in its own transaction.
func (d *DB) upgrade() error {
	const versions = `CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := d.conn.Exec(versions); err != nil {
		return err
	}

	var current int
	if err := d.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return err
	}

	for v := current + 1; v <= len(schema); v++ {
		if err := d.apply(v, schema[v-1]); err != nil {
			return fmt.Errorf("migration v%d failed: %w", v, err)
		}
	}
	return nil
}

func (d *DB) apply(version int, stmt string) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// migrationV1 creates the artifact tables
const migrationV1 = `
-- Every .reg file written
CREATE TABLE IF NOT EXISTS artifacts (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL,
    path TEXT NOT NULL,
    device_count INTEGER NOT NULL,
    size_bytes INTEGER,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_artifacts_run ON artifacts(run_id);
CREATE INDEX IF NOT EXISTS idx_artifacts_time ON artifacts(created_at);

-- Device keys written into each artifact, in file order
CREATE TABLE IF NOT EXISTS artifact_devices (
    id INTEGER PRIMARY KEY,
    artifact_id INTEGER NOT NULL REFERENCES artifacts(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    key_path TEXT NOT NULL,
    description TEXT
);

CREATE INDEX IF NOT EXISTS idx_artifact_devices_artifact ON artifact_devices(artifact_id);
`

// migrationV2 adds startup-task action tracking
const migrationV2 = `
CREATE TABLE IF NOT EXISTS task_events (
    id INTEGER PRIMARY KEY,
    run_id TEXT,
    task_name TEXT NOT NULL,
    action TEXT NOT NULL,
    status TEXT NOT NULL,
    artifact_path TEXT,
    detail TEXT,
    timestamp TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_task_events_run ON task_events(run_id);
CREATE INDEX IF NOT EXISTS idx_task_events_time ON task_events(timestamp);
`

// Artifact is a generated registry file
type Artifact struct {
	ID          int64            `json:"id"`
	RunID       string           `json:"run_id"`
	Path        string           `json:"path"`
	DeviceCount int              `json:"device_count"`
	SizeBytes   int64            `json:"size_bytes"`
	CreatedAt   time.Time        `json:"created_at"`
	Devices     []ArtifactDevice `json:"devices,omitempty"`
}

// ArtifactDevice is one device key written into an artifact
type ArtifactDevice struct {
	Position    int    `json:"position"`
	KeyPath     string `json:"key_path"`
	Description string `json:"description"`
}

// TaskEvent records an action taken on the startup task or an artifact
type TaskEvent struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id,omitempty"`
	TaskName     string    `json:"task_name"`
	Action       string    `json:"action"`
	Status       string    `json:"status"`
	ArtifactPath string    `json:"artifact_path,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Task actions
const (
	ActionInstall = "install"
	ActionRun     = "run"
	ActionRemove  = "remove"
	ActionApply   = "apply"
)

// Action outcomes
const (
	StatusOK      = "ok"
	StatusStarted = "started"
	StatusFailed  = "failed"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
