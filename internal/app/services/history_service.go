package services

import (
	"context"
	"sort"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/repositories"
)

// historySource lists one publication feed of an instructor
type historySource interface {
	ListHistoryByInstructor(ctx context.Context, instructorID int64) ([]models.HistoryItem, error)
}

// HistoryService merges an instructor's published practical works and
// announcements into one feed
type HistoryService struct {
	assignments   historySource
	announcements historySource
}

// NewHistoryService creates a new history service
func NewHistoryService(repos *repositories.Repositories) *HistoryService {
	return &HistoryService{
		assignments:   repos.AssignmentRepository,
		announcements: repos.AnnouncementRepository,
	}
}

// GetInstructorHistory returns the merged feed, newest first. Items sharing
// a timestamp keep assignments before announcements; the stable sort
// preserves the source order within each feed.
func (s *HistoryService) GetInstructorHistory(ctx context.Context, instructorID int64) ([]models.HistoryItem, error) {
	assignments, err := s.assignments.ListHistoryByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	announcements, err := s.announcements.ListHistoryByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	items := make([]models.HistoryItem, 0, len(assignments)+len(announcements))
	items = append(items, assignments...)
	items = append(items, announcements...)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	return items, nil
}
