package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/dberrors"
)

// OrgRepository handles database operations for the organizational structure:
// tracks, groups and modules
type OrgRepository struct {
	db *pgxpool.Pool
}

// NewOrgRepository creates a new org repository
func NewOrgRepository(db *pgxpool.Pool) *OrgRepository {
	return &OrgRepository{
		db: db,
	}
}

// GetAllTracks retrieves all study tracks ordered by name
func (r *OrgRepository) GetAllTracks(ctx context.Context) ([]*models.Track, error) {
	query := `SELECT id, name FROM tracks ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tracks = append(tracks, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tracks, nil
}

// GetTrackByName retrieves a track by its name
func (r *OrgRepository) GetTrackByName(ctx context.Context, name string) (*models.Track, error) {
	query := `SELECT id, name FROM tracks WHERE name = $1`

	var t models.Track
	err := r.db.QueryRow(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("error retrieving track: %w", err)
	}

	return &t, nil
}

// GetGroupByID retrieves a group with its track
func (r *OrgRepository) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.track_id, t.id, t.name
		FROM groups g
		JOIN tracks t ON t.id = g.track_id
		WHERE g.id = $1
	`

	var g models.Group
	var t models.Track
	err := r.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.TrackID, &t.ID, &t.Name)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	g.Track = &t

	return &g, nil
}

// GetGroupsByTrack retrieves the groups of one track ordered by name
func (r *OrgRepository) GetGroupsByTrack(ctx context.Context, trackID int64) ([]*models.Group, error) {
	query := `SELECT id, name, track_id FROM groups WHERE track_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, trackID)
	if err != nil {
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.TrackID); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// GetAllGroups retrieves all groups with their tracks, ordered by track then name
func (r *OrgRepository) GetAllGroups(ctx context.Context) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.track_id, t.id, t.name
		FROM groups g
		JOIN tracks t ON t.id = g.track_id
		ORDER BY t.name, g.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var g models.Group
		var t models.Track
		if err := rows.Scan(&g.ID, &g.Name, &g.TrackID, &t.ID, &t.Name); err != nil {
			return nil, err
		}
		g.Track = &t
		groups = append(groups, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// GetModuleByID retrieves a module by id
func (r *OrgRepository) GetModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	query := `SELECT id, name, track_id FROM modules WHERE id = $1`

	var m models.Module
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.TrackID)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}

	return &m, nil
}

// GetModulesByTrack retrieves the modules taught in one track
func (r *OrgRepository) GetModulesByTrack(ctx context.Context, trackID int64) ([]*models.Module, error) {
	query := `SELECT id, name, track_id FROM modules WHERE track_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, trackID)
	if err != nil {
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.Name, &m.TrackID); err != nil {
			return nil, err
		}
		modules = append(modules, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}

// GetModulesByGroup retrieves the modules of the track a group belongs to
func (r *OrgRepository) GetModulesByGroup(ctx context.Context, groupID int64) ([]*models.Module, error) {
	query := `
		SELECT m.id, m.name, m.track_id
		FROM modules m
		JOIN groups g ON g.track_id = m.track_id
		WHERE g.id = $1
		ORDER BY m.name
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.Name, &m.TrackID); err != nil {
			return nil, err
		}
		modules = append(modules, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}
