package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all data access objects
type Repositories struct {
	UserRepository         *UserRepository
	OrgRepository          *OrgRepository
	TokenRepository        *TokenRepository
	SessionRepository      *SessionRepository
	PresenceRepository     *PresenceRepository
	AnalyticsRepository    *AnalyticsRepository
	AssignmentRepository   *AssignmentRepository
	SubmissionRepository   *SubmissionRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		OrgRepository:          NewOrgRepository(db),
		TokenRepository:        NewTokenRepository(db),
		SessionRepository:      NewSessionRepository(db),
		PresenceRepository:     NewPresenceRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		SubmissionRepository:   NewSubmissionRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
