package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/junglivre/nomoject/internal/device"
)

// NewArtifact describes an artifact written for records.
func NewArtifact(runID, path string, size int64, records []device.Record) *Artifact {
	a := &Artifact{
		RunID:       runID,
		Path:        path,
		DeviceCount: len(records),
		SizeBytes:   size,
	}
	for i, r := range records {
		a.Devices = append(a.Devices, ArtifactDevice{
			Position:    i,
			KeyPath:     r.Path,
			Description: r.Description,
		})
	}
	return a
}

// RecordArtifact stores an artifact and its devices, filling in ID and
// CreatedAt.
func (d *DB) RecordArtifact(a *Artifact) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO artifacts (run_id, path, device_count, size_bytes, created_at) VALUES (?, ?, ?, ?, ?)",
		a.RunID, a.Path, a.DeviceCount, a.SizeBytes, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}

	for _, dev := range a.Devices {
		if _, err := tx.Exec(
			"INSERT INTO artifact_devices (artifact_id, position, key_path, description) VALUES (?, ?, ?, ?)",
			id, dev.Position, dev.KeyPath, nullString(dev.Description)); err != nil {
			return fmt.Errorf("failed to record device %s: %w", dev.KeyPath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}
	a.ID = id
	return nil
}

// GetArtifact returns an artifact with its devices, or nil if not found
func (d *DB) GetArtifact(id int64) (*Artifact, error) {
	var a Artifact
	var size sql.NullInt64
	err := d.conn.QueryRow(`
		SELECT id, run_id, path, device_count, size_bytes, created_at
		FROM artifacts WHERE id = ?
	`, id).Scan(&a.ID, &a.RunID, &a.Path, &a.DeviceCount, &size, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query artifact: %w", err)
	}
	a.SizeBytes = size.Int64

	rows, err := d.conn.Query(`
		SELECT position, key_path, description
		FROM artifact_devices
		WHERE artifact_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifact devices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dev ArtifactDevice
		var desc sql.NullString
		if err := rows.Scan(&dev.Position, &dev.KeyPath, &desc); err != nil {
			return nil, fmt.Errorf("failed to scan artifact device: %w", err)
		}
		dev.Description = desc.String
		a.Devices = append(a.Devices, dev)
	}

	return &a, rows.Err()
}

// RecentArtifacts returns the most recent artifacts, newest first, without
// their device lists
func (d *DB) RecentArtifacts(limit int) ([]*Artifact, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := d.conn.Query(`
		SELECT id, run_id, path, device_count, size_bytes, created_at
		FROM artifacts
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*Artifact
	for rows.Next() {
		var a Artifact
		var size sql.NullInt64
		if err := rows.Scan(&a.ID, &a.RunID, &a.Path, &a.DeviceCount, &size, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		a.SizeBytes = size.Int64
		artifacts = append(artifacts, &a)
	}

	return artifacts, rows.Err()
}
