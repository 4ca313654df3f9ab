package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/middleware"
	"github.com/aymanebt/tptrack/internal/pkg/helpers"
)

// AttendanceController handles attendance taking
type AttendanceController struct {
	attendanceService *services.AttendanceService
	analyticsService  *services.AnalyticsService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, analyticsService *services.AnalyticsService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		analyticsService:  analyticsService,
		logger:            logger,
	}
}

// ApplyBatch applies a presence batch
// @Summary Mark attendance for a class day
// @Description Resolves the session for (instructor, group, module, date) and applies every presence entry in one transaction. Re-marking a student replaces the previous status.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AttendanceBatchRequest true "Class coordinates and per-student statuses"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceBatchResponse} "Batch applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid status, empty batch or bad date"
// @Router /attendance [post]
func (c *AttendanceController) ApplyBatch(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.AttendanceBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date format, expected YYYY-MM-DD")
		errorDetail = errorDetail.WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entries := make([]models.PresenceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, models.PresenceEntry{
			StudentID: e.StudentID,
			Status:    models.PresenceStatus(e.Status),
		})
	}

	sessionID, applied, err := c.attendanceService.ApplyPresenceBatch(
		ctx.Request.Context(), instructorID, req.GroupID, req.ModuleID, date, entries)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("instructorId", instructorID).
			Int64("groupId", req.GroupID).
			Msg("Presence batch rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.CountPresenceMarks(applied)
	c.analyticsService.InvalidateKPIs(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AttendanceBatchResponse{
		SessionID: sessionID,
		Applied:   applied,
	}))
}

// GetRoster returns the attendance-taking view for a group and date
// @Summary Get a group roster with statuses
// @Description Lists the group's students with the status each one holds for the session at the given coordinates; students without a record show as Pending
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param groupId query int true "Group ID"
// @Param moduleId query int true "Module ID"
// @Param date query string true "Class day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse} "Roster"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Router /attendance/roster [get]
func (c *AttendanceController) GetRoster(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	groupID, ok := parseQueryID(ctx, "groupId")
	if !ok {
		return
	}
	moduleID, ok := parseQueryID(ctx, "moduleId")
	if !ok {
		return
	}

	date, err := helpers.ParseDate(ctx.Query("date"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date format, expected YYYY-MM-DD")
		errorDetail = errorDetail.WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	roster, err := c.attendanceService.GetRoster(ctx.Request.Context(), instructorID, groupID, moduleID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.RosterResponse{
		GroupID:  groupID,
		ModuleID: moduleID,
		Date:     helpers.FormatDate(date),
	}
	for _, row := range roster {
		resp.Students = append(resp.Students, dto.RosterEntry{
			StudentID: row.StudentID,
			Name:      row.Name,
			CNE:       row.CNE,
			Status:    row.Status,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// parseQueryID reads a positive int64 query parameter, writing the 400
// response itself on failure
func parseQueryID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	id, err := parsePositiveInt(raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
