package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/dberrors"
)

// SubmissionRepository handles database operations for student report links
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

// Upsert records a student's report link for an assignment. Re-submitting
// replaces the previous link and refreshes the timestamp.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, link, submitted_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT ON CONSTRAINT submissions_assignment_student_key
		DO UPDATE SET link = EXCLUDED.link, submitted_at = NOW()
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		submission.AssignmentID, submission.StudentID, submission.Link,
	).Scan(&submission.ID, &submission.SubmittedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("error upserting submission: %w", err)
	}

	return nil
}

// GetByAssignmentAndStudent retrieves one student's submission for an assignment
func (r *SubmissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID int64) (*models.Submission, error) {
	query := `
		SELECT id, assignment_id, student_id, link, submitted_at
		FROM submissions
		WHERE assignment_id = $1 AND student_id = $2
	`

	var s models.Submission
	err := r.db.QueryRow(ctx, query, assignmentID, studentID).Scan(
		&s.ID, &s.AssignmentID, &s.StudentID, &s.Link, &s.SubmittedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &s, nil
}

// ListByAssignment retrieves all submissions of an assignment with the
// submitting students, ordered by submission time
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	query := `
		SELECT s.id, s.assignment_id, s.student_id, s.link, s.submitted_at,
		       st.user_id, st.cne, st.group_id,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.created_at
		FROM submissions s
		JOIN students st ON st.user_id = s.student_id
		JOIN users u ON u.id = st.user_id
		WHERE s.assignment_id = $1
		ORDER BY s.submitted_at
	`

	rows, err := r.db.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("error querying submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		var s models.Submission
		var st models.Student
		var u models.User
		err := rows.Scan(
			&s.ID, &s.AssignmentID, &s.StudentID, &s.Link, &s.SubmittedAt,
			&st.UserID, &st.CNE, &st.GroupID,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		st.User = &u
		s.Student = &st
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
