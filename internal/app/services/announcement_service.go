package services

import (
	"context"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/logger"
)

// AnnouncementService handles instructor announcements
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
	userRepo         *repositories.UserRepository
	orgRepo          *repositories.OrgRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repos *repositories.Repositories) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: repos.AnnouncementRepository,
		userRepo:         repos.UserRepository,
		orgRepo:          repos.OrgRepository,
	}
}

// Create publishes an announcement for a group
func (s *AnnouncementService) Create(ctx context.Context, instructorID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if _, err := s.orgRepo.GetGroupByID(ctx, req.GroupID); err != nil {
		return nil, err
	}
	if _, err := s.orgRepo.GetModuleByID(ctx, req.ModuleID); err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		Title:        req.Title,
		Body:         req.Body,
		InstructorID: instructorID,
		GroupID:      req.GroupID,
		ModuleID:     req.ModuleID,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("announcementId", announcement.ID).
		Int64("instructorId", instructorID).
		Int64("groupId", req.GroupID).
		Msg("Announcement published")

	return announcement, nil
}

// ListForGroup lists the announcements published for a group, newest first
func (s *AnnouncementService) ListForGroup(ctx context.Context, groupID int64) ([]*models.Announcement, error) {
	return s.announcementRepo.ListByGroup(ctx, groupID)
}

// ListForStudent lists the announcements published for a student's group
func (s *AnnouncementService) ListForStudent(ctx context.Context, studentUserID int64) ([]*models.Announcement, error) {
	student, err := s.userRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.announcementRepo.ListByGroup(ctx, student.GroupID)
}

// Delete removes an announcement; only its publisher may delete it
func (s *AnnouncementService) Delete(ctx context.Context, announcementID, instructorID int64) error {
	announcement, err := s.announcementRepo.GetByID(ctx, announcementID)
	if err != nil {
		return err
	}
	if announcement.InstructorID != instructorID {
		return apperrors.NewForbiddenError("only the publisher can delete an announcement")
	}
	return s.announcementRepo.Delete(ctx, announcementID)
}
