package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-zone-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the tables used by the API and the importer.
const Schema = `
	CREATE TABLE IF NOT EXISTS districts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);

	CREATE TABLE IF NOT EXISTS zone_checks (
		id UUID PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		source VARCHAR(32) NOT NULL,
		in_zone BOOLEAN NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		checked_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS zone_checks_checked_at_idx ON zone_checks (checked_at DESC);
`

// Repository implements district and zone-check storage on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates missing tables.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListDistricts returns every district ordered by id
func (r *Repository) ListDistricts(ctx context.Context) ([]models.District, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, latitude, longitude FROM districts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query districts: %w", err)
	}
	defer rows.Close()

	var districts []models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name, &d.Latitude, &d.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan district: %w", err)
		}
		districts = append(districts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return districts, nil
}

// RecordCheck stores one zone-check audit row
func (r *Repository) RecordCheck(ctx context.Context, check models.ZoneCheck) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO zone_checks (id, latitude, longitude, source, in_zone, distance_km, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		check.ID, check.Latitude, check.Longitude, check.Source, check.InZone, check.DistanceKm, check.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert zone check: %w", err)
	}
	return nil
}

// ListRecentChecks returns the newest checks first
func (r *Repository) ListRecentChecks(ctx context.Context, limit int) ([]models.ZoneCheck, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, latitude, longitude, source, in_zone, distance_km, checked_at
		FROM zone_checks
		ORDER BY checked_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query zone checks: %w", err)
	}
	defer rows.Close()

	checks := []models.ZoneCheck{}
	for rows.Next() {
		var c models.ZoneCheck
		if err := rows.Scan(&c.ID, &c.Latitude, &c.Longitude, &c.Source, &c.InZone, &c.DistanceKm, &c.CheckedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan zone check: %w", err)
		}
		checks = append(checks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return checks, nil
}

// GetCheck returns a single check, or nil when it does not exist
func (r *Repository) GetCheck(ctx context.Context, id uuid.UUID) (*models.ZoneCheck, error) {
	var c models.ZoneCheck
	err := r.db.QueryRow(ctx, `
		SELECT id, latitude, longitude, source, in_zone, distance_km, checked_at
		FROM zone_checks
		WHERE id = $1`, id,
	).Scan(&c.ID, &c.Latitude, &c.Longitude, &c.Source, &c.InZone, &c.DistanceKm, &c.CheckedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query zone check: %w", err)
	}
	return &c, nil
}
