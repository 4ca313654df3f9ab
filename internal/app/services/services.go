package services

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/pkg/auth"
	"github.com/aymanebt/tptrack/internal/pkg/cache"
)

// Services is the container for all business logic services
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	OrgService          *OrgService
	AttendanceService   *AttendanceService
	AnalyticsService    *AnalyticsService
	HistoryService      *HistoryService
	AssignmentService   *AssignmentService
	AnnouncementService *AnnouncementService
}

// NewServices creates all services. The cache may be nil when Redis is
// disabled.
func NewServices(repos *repositories.Repositories, pool *pgxpool.Pool, jwtService *auth.JWTService, c *cache.Cache) *Services {
	return &Services{
		AuthService:         NewAuthService(repos, jwtService),
		UserService:         NewUserService(repos, pool),
		OrgService:          NewOrgService(repos),
		AttendanceService:   NewAttendanceService(repos, pool),
		AnalyticsService:    NewAnalyticsService(repos, c),
		HistoryService:      NewHistoryService(repos),
		AssignmentService:   NewAssignmentService(repos, pool),
		AnnouncementService: NewAnnouncementService(repos),
	}
}
