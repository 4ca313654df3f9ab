package services

import (
	"context"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/repositories"
)

// OrgService exposes the organizational structure: tracks, groups, modules
type OrgService struct {
	orgRepo *repositories.OrgRepository
}

// NewOrgService creates a new org service
func NewOrgService(repos *repositories.Repositories) *OrgService {
	return &OrgService{
		orgRepo: repos.OrgRepository,
	}
}

// ListTracksWithGroups returns every track with its groups
func (s *OrgService) ListTracksWithGroups(ctx context.Context) ([]dto.TrackGroupsResponse, error) {
	tracks, err := s.orgRepo.GetAllTracks(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TrackGroupsResponse, 0, len(tracks))
	for _, track := range tracks {
		groups, err := s.orgRepo.GetGroupsByTrack(ctx, track.ID)
		if err != nil {
			return nil, err
		}

		entry := dto.TrackGroupsResponse{Track: *track}
		for _, g := range groups {
			entry.Groups = append(entry.Groups, *g)
		}
		result = append(result, entry)
	}

	return result, nil
}

// GetGroup retrieves one group with its track
func (s *OrgService) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	return s.orgRepo.GetGroupByID(ctx, groupID)
}

// ListGroups returns all groups with their tracks
func (s *OrgService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.orgRepo.GetAllGroups(ctx)
}

// ListModulesForGroup returns the modules taught to a group's track
func (s *OrgService) ListModulesForGroup(ctx context.Context, groupID int64) ([]*models.Module, error) {
	if _, err := s.orgRepo.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.orgRepo.GetModulesByGroup(ctx, groupID)
}
