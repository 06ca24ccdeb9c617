package history

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordTaskEvent logs a startup-task or apply action
func (d *DB) RecordTaskEvent(e *TaskEvent) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	result, err := d.conn.Exec(`
		INSERT INTO task_events (run_id, task_name, action, status, artifact_path, detail, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, nullString(e.RunID), e.TaskName, e.Action, e.Status,
		nullString(e.ArtifactPath), nullString(e.Detail), e.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to record task event: %w", err)
	}

	id, _ := result.LastInsertId()
	e.ID = id
	return nil
}

// RecentTaskEvents returns the most recent task events, newest first
func (d *DB) RecentTaskEvents(limit int) ([]*TaskEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := d.conn.Query(`
		SELECT id, run_id, task_name, action, status, artifact_path, detail, timestamp
		FROM task_events
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query task events: %w", err)
	}
	defer rows.Close()

	return scanTaskEvents(rows)
}

// TaskEventsByRun returns the task events of one generate run, oldest first
func (d *DB) TaskEventsByRun(runID string) ([]*TaskEvent, error) {
	rows, err := d.conn.Query(`
		SELECT id, run_id, task_name, action, status, artifact_path, detail, timestamp
		FROM task_events
		WHERE run_id = ?
		ORDER BY timestamp, id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task events: %w", err)
	}
	defer rows.Close()

	return scanTaskEvents(rows)
}

func scanTaskEvents(rows *sql.Rows) ([]*TaskEvent, error) {
	var events []*TaskEvent
	for rows.Next() {
		var e TaskEvent
		var runID, artifactPath, detail sql.NullString

		err := rows.Scan(
			&e.ID, &runID, &e.TaskName, &e.Action, &e.Status,
			&artifactPath, &detail, &e.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task event: %w", err)
		}

		e.RunID = runID.String
		e.ArtifactPath = artifactPath.String
		e.Detail = detail.String
		events = append(events, &e)
	}

	return events, rows.Err()
}
