package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/dberrors"
)

// AssignmentRepository handles database operations for practical works and
// their subject attachments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create inserts an assignment and its optional attachment on a caller-owned
// transaction, so a failed BLOB write never leaves a dangling assignment
func (r *AssignmentRepository) Create(ctx context.Context, tx pgx.Tx, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (title, description, deadline, module_id, instructor_id, group_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, published_at
	`

	err := tx.QueryRow(ctx, query,
		assignment.Title, assignment.Description, assignment.Deadline,
		assignment.ModuleID, assignment.InstructorID, assignment.GroupID,
	).Scan(&assignment.ID, &assignment.PublishedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("unknown module, group or instructor")
		}
		return fmt.Errorf("error creating assignment: %w", err)
	}

	if assignment.Attachment != nil {
		assignment.Attachment.AssignmentID = assignment.ID
		if err := r.createAttachment(ctx, tx, assignment.Attachment); err != nil {
			return err
		}
	}

	return nil
}

func (r *AssignmentRepository) createAttachment(ctx context.Context, tx pgx.Tx, att *models.Attachment) error {
	query := `
		INSERT INTO attachments (file_name, content_type, size_bytes, content, assignment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		att.FileName, att.ContentType, att.SizeBytes, att.Content, att.AssignmentID,
	).Scan(&att.ID)
	if err != nil {
		return fmt.Errorf("error storing attachment: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment with its attachment metadata (no content)
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.description, a.deadline,
		       a.module_id, a.instructor_id, a.group_id, a.published_at,
		       att.id, att.file_name, att.content_type, att.size_bytes
		FROM assignments a
		LEFT JOIN attachments att ON att.assignment_id = a.id
		WHERE a.id = $1
	`

	var a models.Assignment
	var attID *int64
	var attName, attType *string
	var attSize *int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.Deadline,
		&a.ModuleID, &a.InstructorID, &a.GroupID, &a.PublishedAt,
		&attID, &attName, &attType, &attSize,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	if attID != nil {
		a.Attachment = &models.Attachment{
			ID:           *attID,
			FileName:     *attName,
			ContentType:  *attType,
			SizeBytes:    *attSize,
			AssignmentID: a.ID,
		}
	}

	return &a, nil
}

// ListByGroup retrieves the assignments published for a group, newest first
func (r *AssignmentRepository) ListByGroup(ctx context.Context, groupID int64) ([]*models.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.description, a.deadline,
		       a.module_id, a.instructor_id, a.group_id, a.published_at,
		       att.id, att.file_name, att.content_type, att.size_bytes
		FROM assignments a
		LEFT JOIN attachments att ON att.assignment_id = a.id
		WHERE a.group_id = $1
		ORDER BY a.published_at DESC
	`
	return r.list(ctx, query, groupID)
}

// ListByInstructor retrieves the assignments an instructor published, newest first
func (r *AssignmentRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.description, a.deadline,
		       a.module_id, a.instructor_id, a.group_id, a.published_at,
		       att.id, att.file_name, att.content_type, att.size_bytes
		FROM assignments a
		LEFT JOIN attachments att ON att.assignment_id = a.id
		WHERE a.instructor_id = $1
		ORDER BY a.published_at DESC
	`
	return r.list(ctx, query, instructorID)
}

func (r *AssignmentRepository) list(ctx context.Context, query string, arg any) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var a models.Assignment
		var attID *int64
		var attName, attType *string
		var attSize *int64
		err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Deadline,
			&a.ModuleID, &a.InstructorID, &a.GroupID, &a.PublishedAt,
			&attID, &attName, &attType, &attSize,
		)
		if err != nil {
			return nil, err
		}
		if attID != nil {
			a.Attachment = &models.Attachment{
				ID:           *attID,
				FileName:     *attName,
				ContentType:  *attType,
				SizeBytes:    *attSize,
				AssignmentID: a.ID,
			}
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetAttachmentContent loads the full attachment, BLOB included, for streaming
func (r *AssignmentRepository) GetAttachmentContent(ctx context.Context, assignmentID int64) (*models.Attachment, error) {
	query := `
		SELECT id, file_name, content_type, size_bytes, content, assignment_id
		FROM attachments
		WHERE assignment_id = $1
	`

	var att models.Attachment
	err := r.db.QueryRow(ctx, query, assignmentID).Scan(
		&att.ID, &att.FileName, &att.ContentType, &att.SizeBytes, &att.Content, &att.AssignmentID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("error retrieving attachment: %w", err)
	}

	return &att, nil
}

// Delete removes an assignment; attachment and submissions cascade
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assignments WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// ListHistoryByInstructor projects an instructor's assignments into history
// items, tagged as practical works
func (r *AssignmentRepository) ListHistoryByInstructor(ctx context.Context, instructorID int64) ([]models.HistoryItem, error) {
	query := `
		SELECT id, title, published_at, group_id, module_id
		FROM assignments
		WHERE instructor_id = $1
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error querying assignment history: %w", err)
	}
	defer rows.Close()

	var items []models.HistoryItem
	for rows.Next() {
		item := models.HistoryItem{Kind: models.HistoryAssignment}
		if err := rows.Scan(&item.ID, &item.Title, &item.Date, &item.GroupID, &item.ModuleID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
