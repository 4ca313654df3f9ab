package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/db"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/logger"
)

// sessionResolver resolves the session row for a class coordinate tuple
type sessionResolver interface {
	ResolveOrCreate(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) (int64, error)
}

// presenceWriter is the single write path for presence records
type presenceWriter interface {
	UpsertTx(ctx context.Context, tx pgx.Tx, sessionID, studentID int64, status models.PresenceStatus) error
}

// rosterReader lists a group with the statuses recorded for one class day
type rosterReader interface {
	GetRoster(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) ([]repositories.RosterRow, error)
}

// txRunner runs fn inside a transaction boundary
type txRunner func(ctx context.Context, fn db.TransactionFn) error

// AttendanceService implements attendance taking: resolving the session for
// a class day and reconciling a batch of presence statuses against it
type AttendanceService struct {
	sessions  sessionResolver
	presences presenceWriter
	roster    rosterReader
	runTx     txRunner
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repos *repositories.Repositories, pool *pgxpool.Pool) *AttendanceService {
	return &AttendanceService{
		sessions:  repos.SessionRepository,
		presences: repos.PresenceRepository,
		roster:    repos.PresenceRepository,
		runTx: func(ctx context.Context, fn db.TransactionFn) error {
			return db.WithTransaction(ctx, pool, fn)
		},
	}
}

// ApplyPresenceBatch resolves the session for (instructor, group, module,
// date) and upserts every entry in one transaction. Statuses are validated
// up front; any failure rolls the whole batch back. Re-marking a student is
// last write wins.
func (s *AttendanceService) ApplyPresenceBatch(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time, entries []models.PresenceEntry) (sessionID int64, applied int, err error) {
	if len(entries) == 0 {
		return 0, 0, apperrors.ErrEmptyBatch
	}
	for _, e := range entries {
		if !models.ValidMarkStatus(e.Status) {
			return 0, 0, &apperrors.CustomError{
				Err:     apperrors.ErrInvalidStatus,
				Message: fmt.Sprintf("invalid presence status %q for student %d", e.Status, e.StudentID),
			}
		}
	}

	sessionID, err = s.sessions.ResolveOrCreate(ctx, instructorID, groupID, moduleID, date)
	if err != nil {
		return 0, 0, err
	}

	err = s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, e := range entries {
			if err := s.presences.UpsertTx(ctx, tx, sessionID, e.StudentID, e.Status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	logger.Info().
		Int64("sessionId", sessionID).
		Int64("instructorId", instructorID).
		Int("entries", len(entries)).
		Msg("Presence batch applied")

	return sessionID, len(entries), nil
}

// MarkPresence records one student's status, resolving the session first.
// Used by the legacy socket protocol, which marks students one at a time.
func (s *AttendanceService) MarkPresence(ctx context.Context, instructorID, groupID, moduleID, studentID int64, status models.PresenceStatus, date time.Time) (int64, error) {
	sessionID, _, err := s.ApplyPresenceBatch(ctx, instructorID, groupID, moduleID, date,
		[]models.PresenceEntry{{StudentID: studentID, Status: status}})
	return sessionID, err
}

// GetRoster returns a group's students with the status each one has for the
// session at (instructor, group, module, date); students without a record
// show as Pending
func (s *AttendanceService) GetRoster(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) ([]repositories.RosterRow, error) {
	return s.roster.GetRoster(ctx, instructorID, groupID, moduleID, date)
}
