package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
)

// SessionRepository handles database operations for attendance sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

// ResolveOrCreate returns the id of the session for the given
// instructor/group/module/day, creating it when absent. The no-op
// DO UPDATE makes RETURNING yield the existing id on conflict, so the
// whole resolution is a single atomic round trip — two concurrent calls
// for the same class and day always land on the same row.
func (r *SessionRepository) ResolveOrCreate(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) (int64, error) {
	startAt := time.Date(date.Year(), date.Month(), date.Day(),
		models.DefaultSessionStartHour, 0, 0, 0, date.Location())
	endAt := startAt.Add(models.DefaultSessionDuration)

	query := `
		INSERT INTO sessions (start_at, end_at, room, module_id, instructor_id, group_id, session_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT sessions_natural_key
		DO UPDATE SET session_date = sessions.session_date
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		startAt, endAt, models.DefaultSessionRoom,
		moduleID, instructorID, groupID, startAt.Format("2006-01-02"),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error resolving session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a session by id
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query := `
		SELECT id, start_at, end_at, room, module_id, instructor_id, group_id, session_date
		FROM sessions
		WHERE id = $1
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.StartAt,
		&session.EndAt,
		&session.Room,
		&session.ModuleID,
		&session.InstructorID,
		&session.GroupID,
		&session.SessionDate,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	return &session, nil
}

// CountInScope counts sessions, optionally narrowed to one instructor
func (r *SessionRepository) CountInScope(ctx context.Context, scope models.Scope) (int64, error) {
	query := `SELECT COUNT(*) FROM sessions`
	args := []any{}
	if !scope.All() {
		query += ` WHERE instructor_id = $1`
		args = append(args, scope.InstructorID())
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sessions: %w", err)
	}
	return count, nil
}
