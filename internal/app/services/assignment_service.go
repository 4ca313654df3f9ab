package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/db"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/logger"
)

// MaxAttachmentSize caps subject files; they live in the database as BLOBs
const MaxAttachmentSize = 10 << 20 // 10 MiB

// AttachmentUpload carries an uploaded subject file into the service
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// AssignmentService handles practical work publication and report collection
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	userRepo       *repositories.UserRepository
	orgRepo        *repositories.OrgRepository
	pool           *pgxpool.Pool
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repos *repositories.Repositories, pool *pgxpool.Pool) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: repos.AssignmentRepository,
		submissionRepo: repos.SubmissionRepository,
		userRepo:       repos.UserRepository,
		orgRepo:        repos.OrgRepository,
		pool:           pool,
	}
}

// Create publishes a practical work for a group, optionally with a subject
// file. The assignment and its attachment are written in one transaction.
func (s *AssignmentService) Create(ctx context.Context, instructorID int64, req *dto.CreateAssignmentRequest, upload *AttachmentUpload) (*models.Assignment, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid deadline format")
	}

	if _, err := s.orgRepo.GetGroupByID(ctx, req.GroupID); err != nil {
		return nil, err
	}
	if _, err := s.orgRepo.GetModuleByID(ctx, req.ModuleID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     deadline,
		ModuleID:     req.ModuleID,
		InstructorID: instructorID,
		GroupID:      req.GroupID,
	}

	if upload != nil {
		if len(upload.Content) > MaxAttachmentSize {
			return nil, apperrors.NewBadRequestError("attachment exceeds the size limit")
		}
		assignment.Attachment = &models.Attachment{
			FileName:    upload.FileName,
			ContentType: upload.ContentType,
			SizeBytes:   int64(len(upload.Content)),
			Content:     upload.Content,
		}
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.assignmentRepo.Create(ctx, tx, assignment)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("assignmentId", assignment.ID).
		Int64("instructorId", instructorID).
		Int64("groupId", req.GroupID).
		Msg("Assignment published")

	return assignment, nil
}

// parseDeadline accepts RFC 3339 or a plain calendar date; a bare date means
// end of that day
func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Second), nil
}

// GetByID retrieves an assignment
func (s *AssignmentService) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// ListForGroup lists the assignments published for a group, newest first
func (s *AssignmentService) ListForGroup(ctx context.Context, groupID int64) ([]*models.Assignment, error) {
	return s.assignmentRepo.ListByGroup(ctx, groupID)
}

// ListForStudent lists the assignments published for a student's group
func (s *AssignmentService) ListForStudent(ctx context.Context, studentUserID int64) ([]*models.Assignment, error) {
	student, err := s.userRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByGroup(ctx, student.GroupID)
}

// ListForInstructor lists the assignments an instructor published
func (s *AssignmentService) ListForInstructor(ctx context.Context, instructorID int64) ([]*models.Assignment, error) {
	return s.assignmentRepo.ListByInstructor(ctx, instructorID)
}

// GetAttachment loads an assignment's subject file, content included
func (s *AssignmentService) GetAttachment(ctx context.Context, assignmentID int64) (*models.Attachment, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetAttachmentContent(ctx, assignmentID)
}

// Delete removes an assignment; only its publisher may delete it
func (s *AssignmentService) Delete(ctx context.Context, assignmentID, instructorID int64) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment.InstructorID != instructorID {
		return apperrors.NewForbiddenError("only the publisher can delete an assignment")
	}
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

// SubmitReport records a student's report link for an assignment.
// Re-submission replaces the previous link. The assignment must be published
// for the student's group.
func (s *AssignmentService) SubmitReport(ctx context.Context, assignmentID, studentUserID int64, link string) (*models.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	if student.GroupID != assignment.GroupID {
		return nil, apperrors.NewForbiddenError("assignment is not published for this student's group")
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentUserID,
		Link:         link,
	}
	if err := s.submissionRepo.Upsert(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("assignmentId", assignmentID).
		Int64("studentId", studentUserID).
		Msg("Report submitted")

	return submission, nil
}

// ListSubmissions lists the reports received for an assignment; only its
// publisher may read them
func (s *AssignmentService) ListSubmissions(ctx context.Context, assignmentID, instructorID int64) ([]*models.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.InstructorID != instructorID {
		return nil, apperrors.NewForbiddenError("only the publisher can list submissions")
	}
	return s.submissionRepo.ListByAssignment(ctx, assignmentID)
}
