package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
)

// PresenceRepository handles database operations for presence records
type PresenceRepository struct {
	db *pgxpool.Pool
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(db *pgxpool.Pool) *PresenceRepository {
	return &PresenceRepository{
		db: db,
	}
}

// upsertQuery is the single write path for presence marking. The native
// ON CONFLICT upsert replaces the legacy update-then-insert-on-miss pair:
// one row per (session, student), last write wins.
const upsertQuery = `
	INSERT INTO presences (session_id, student_id, status, marked_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT ON CONSTRAINT presences_session_student_key
	DO UPDATE SET status = EXCLUDED.status, marked_at = NOW()
`

// Upsert marks one student for one session, creating or updating the record
func (r *PresenceRepository) Upsert(ctx context.Context, sessionID, studentID int64, status models.PresenceStatus) error {
	if _, err := r.db.Exec(ctx, upsertQuery, sessionID, studentID, status); err != nil {
		return fmt.Errorf("error upserting presence: %w", err)
	}
	return nil
}

// UpsertTx is Upsert running on a caller-owned transaction; the bulk
// reconciler uses it so a batch commits or rolls back as a whole
func (r *PresenceRepository) UpsertTx(ctx context.Context, tx pgx.Tx, sessionID, studentID int64, status models.PresenceStatus) error {
	if _, err := tx.Exec(ctx, upsertQuery, sessionID, studentID, status); err != nil {
		return fmt.Errorf("error upserting presence: %w", err)
	}
	return nil
}

// GetBySession retrieves all presence records of a session
func (r *PresenceRepository) GetBySession(ctx context.Context, sessionID int64) ([]*models.Presence, error) {
	query := `
		SELECT id, session_id, student_id, status, marked_at
		FROM presences
		WHERE session_id = $1
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presences []*models.Presence
	for rows.Next() {
		var p models.Presence
		if err := rows.Scan(&p.ID, &p.SessionID, &p.StudentID, &p.Status, &p.MarkedAt); err != nil {
			return nil, err
		}
		presences = append(presences, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return presences, nil
}

// RosterRow is one student of a group with the status recorded for a
// particular class day, "Pending" when nothing was recorded
type RosterRow struct {
	StudentID int64
	Name      string
	CNE       string
	Status    models.PresenceStatus
}

// GetRoster lists a group's students with their status for the session
// matching (instructor, group, module, date), if any exists yet
func (r *PresenceRepository) GetRoster(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) ([]RosterRow, error) {
	query := `
		SELECT st.user_id, u.last_name || ' ' || u.first_name, st.cne,
		       COALESCE(p.status, 'Pending')
		FROM students st
		JOIN users u ON u.id = st.user_id
		LEFT JOIN sessions s ON s.group_id = st.group_id
		     AND s.module_id = $3 AND s.instructor_id = $1 AND s.session_date = $4
		LEFT JOIN presences p ON p.session_id = s.id AND p.student_id = st.user_id
		WHERE st.group_id = $2
		ORDER BY u.last_name, u.first_name
	`

	rows, err := r.db.Query(ctx, query, instructorID, groupID, moduleID, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []RosterRow
	for rows.Next() {
		var row RosterRow
		if err := rows.Scan(&row.StudentID, &row.Name, &row.CNE, &row.Status); err != nil {
			return nil, err
		}
		roster = append(roster, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
