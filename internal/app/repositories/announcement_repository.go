package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/dberrors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

// Create inserts an announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, body, instructor_id, group_id, module_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, published_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Body,
		announcement.InstructorID, announcement.GroupID, announcement.ModuleID,
	).Scan(&announcement.ID, &announcement.PublishedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("unknown module, group or instructor")
		}
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement by id
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `
		SELECT id, title, body, instructor_id, group_id, module_id, published_at
		FROM announcements
		WHERE id = $1
	`

	var a models.Announcement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Body, &a.InstructorID, &a.GroupID, &a.ModuleID, &a.PublishedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return &a, nil
}

// ListByGroup retrieves the announcements published for a group, newest first
func (r *AnnouncementRepository) ListByGroup(ctx context.Context, groupID int64) ([]*models.Announcement, error) {
	query := `
		SELECT id, title, body, instructor_id, group_id, module_id, published_at
		FROM announcements
		WHERE group_id = $1
		ORDER BY published_at DESC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.InstructorID, &a.GroupID, &a.ModuleID, &a.PublishedAt)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM announcements WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}

// ListHistoryByInstructor projects an instructor's announcements into history
// items, tagged as announcements
func (r *AnnouncementRepository) ListHistoryByInstructor(ctx context.Context, instructorID int64) ([]models.HistoryItem, error) {
	query := `
		SELECT id, title, published_at, group_id, module_id
		FROM announcements
		WHERE instructor_id = $1
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error querying announcement history: %w", err)
	}
	defer rows.Close()

	var items []models.HistoryItem
	for rows.Next() {
		item := models.HistoryItem{Kind: models.HistoryAnnouncement}
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
