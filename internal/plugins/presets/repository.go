package presets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/forgelabs/pluginforge/internal/plugins/workbench"
)

// Repository stores presets. A missing preset is (nil, nil), not an error.
type Repository interface {
	List(ctx context.Context) ([]Preset, error)
	GetBySlug(ctx context.Context, slug string) (*Preset, error)
	Create(ctx context.Context, preset *Preset) error
	Delete(ctx context.Context, slug string) error
}

type mariadbRepository struct {
	db *sql.DB
}

// NewMariaDBRepository creates a MariaDB-backed preset repository.
func NewMariaDBRepository(db *sql.DB) Repository {
	return &mariadbRepository{db: db}
}

// List returns all presets ordered by name. State snapshots are included;
// the catalog is expected to stay small.
func (r *mariadbRepository) List(ctx context.Context) ([]Preset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slug, name, description, state_json, created_at, updated_at
		FROM presets
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}
	return presets, nil
}

// GetBySlug fetches one preset, or (nil, nil) if absent.
func (r *mariadbRepository) GetBySlug(ctx context.Context, slug string) (*Preset, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, slug, name, description, state_json, created_at, updated_at
		FROM presets
		WHERE slug = ?`, slug)

	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return preset, nil
}

// Create inserts a preset and fills in its generated ID and timestamps.
func (r *mariadbRepository) Create(ctx context.Context, preset *Preset) error {
	stateJSON, err := json.Marshal(preset.State)
	if err != nil {
		return fmt.Errorf("encoding preset state: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO presets (slug, name, description, state_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		preset.Slug, preset.Name, preset.Description, stateJSON, now, now)
	if err != nil {
		return fmt.Errorf("inserting preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading preset id: %w", err)
	}

	preset.ID = id
	preset.CreatedAt = now
	preset.UpdatedAt = now
	return nil
}

// Delete removes the preset with the given slug. Deleting a missing preset
// is not an error.
func (r *mariadbRepository) Delete(ctx context.Context, slug string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE slug = ?`, slug); err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*Preset, error) {
	var (
		preset    Preset
		stateJSON []byte
	)
	err := row.Scan(&preset.ID, &preset.Slug, &preset.Name, &preset.Description,
		&stateJSON, &preset.CreatedAt, &preset.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning preset: %w", err)
	}

	var state workbench.State
	if err := json.Unmarshal(stateJSON, &state); err != nil {
		return nil, fmt.Errorf("decoding preset state: %w", err)
	}
	preset.State = &state
	return &preset, nil
}
