package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
)

// AnalyticsRepository runs the read-only aggregation queries behind the
// attendance reports. It returns raw grouped counts; rate math stays in the
// service layer.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
	}
}

// SessionStatRow is one (day, group, module) bucket with its raw counts
type SessionStatRow struct {
	Date    time.Time
	Group   string
	Module  string
	Present int64
	Total   int64
}

// GetSessionStats groups presence records by (session date, group, module).
// Sessions without any presence rows still appear, with zero counts.
func (r *AnalyticsRepository) GetSessionStats(ctx context.Context, scope models.Scope) ([]SessionStatRow, error) {
	query := `
		SELECT s.session_date, g.name, m.name,
		       COUNT(p.id) FILTER (WHERE p.status = 'Present') AS present,
		       COUNT(p.id) AS total
		FROM sessions s
		JOIN groups g ON g.id = s.group_id
		JOIN modules m ON m.id = s.module_id
		LEFT JOIN presences p ON p.session_id = s.id
	`
	args := []any{}
	if !scope.All() {
		query += ` WHERE s.instructor_id = $1`
		args = append(args, scope.InstructorID())
	}
	query += `
		GROUP BY s.session_date, g.name, m.name
		ORDER BY s.session_date ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying session stats: %w", err)
	}
	defer rows.Close()

	var stats []SessionStatRow
	for rows.Next() {
		var row SessionStatRow
		if err := rows.Scan(&row.Date, &row.Group, &row.Module, &row.Present, &row.Total); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountPresences returns (present, total) over all presence rows in scope
func (r *AnalyticsRepository) CountPresences(ctx context.Context, scope models.Scope) (present, total int64, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE p.status = 'Present'), COUNT(*)
		FROM presences p
		JOIN sessions s ON s.id = p.session_id
	`
	args := []any{}
	if !scope.All() {
		query += ` WHERE s.instructor_id = $1`
		args = append(args, scope.InstructorID())
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&present, &total); err != nil {
		return 0, 0, fmt.Errorf("error counting presences: %w", err)
	}
	return present, total, nil
}

// AbsenceRow is one raw absence with its reporting metadata
type AbsenceRow struct {
	Name   string
	CNE    string
	Group  string
	Module string
	Date   time.Time
}

// GetAbsences lists every absence in scope with student/group/module
// metadata, ordered by (name, module, date desc). The per-student-per-module
// grouping and the count ranking happen in the service.
func (r *AnalyticsRepository) GetAbsences(ctx context.Context, scope models.Scope) ([]AbsenceRow, error) {
	query := `
		SELECT u.last_name || ' ' || u.first_name AS name, st.cne, g.name, m.name, s.session_date
		FROM presences p
		JOIN sessions s ON s.id = p.session_id
		JOIN students st ON st.user_id = p.student_id
		JOIN users u ON u.id = st.user_id
		JOIN groups g ON g.id = st.group_id
		JOIN modules m ON m.id = s.module_id
		WHERE p.status = 'Absent'
	`
	args := []any{}
	if !scope.All() {
		query += ` AND s.instructor_id = $1`
		args = append(args, scope.InstructorID())
	}
	query += ` ORDER BY name, m.name, s.session_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying absences: %w", err)
	}
	defer rows.Close()

	var absences []AbsenceRow
	for rows.Next() {
		var row AbsenceRow
		if err := rows.Scan(&row.Name, &row.CNE, &row.Group, &row.Module, &row.Date); err != nil {
			return nil, err
		}
		absences = append(absences, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}
