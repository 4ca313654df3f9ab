package controllers

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/services"
)

// Controllers is the container for all HTTP controllers
type Controllers struct {
	AuthController         *AuthController
	UserController         *UserController
	OrgController          *OrgController
	AttendanceController   *AttendanceController
	AnalyticsController    *AnalyticsController
	HistoryController      *HistoryController
	AssignmentController   *AssignmentController
	AnnouncementController *AnnouncementController
}

// NewControllers creates all controllers
func NewControllers(svcs *services.Services, logger zerolog.Logger) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svcs.AuthService, logger),
		UserController:         NewUserController(svcs.UserService, logger),
		OrgController:          NewOrgController(svcs.OrgService, svcs.UserService, logger),
		AttendanceController:   NewAttendanceController(svcs.AttendanceService, svcs.AnalyticsService, logger),
		AnalyticsController:    NewAnalyticsController(svcs.AnalyticsService, logger),
		HistoryController:      NewHistoryController(svcs.HistoryService, logger),
		AssignmentController:   NewAssignmentController(svcs.AssignmentService, logger),
		AnnouncementController: NewAnnouncementController(svcs.AnnouncementService, logger),
	}
}

// parsePositiveInt parses a strictly positive int64
func parsePositiveInt(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("identifier must be positive, got %d", id)
	}
	return id, nil
}
