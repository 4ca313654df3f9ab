package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/middleware"
)

// AnalyticsController serves the attendance reports. The direction role sees
// system-wide numbers; instructors see their own sessions only.
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
	logger           zerolog.Logger
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService, logger zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// scopeFromContext derives the aggregation scope from the caller's role
func scopeFromContext(ctx *gin.Context) (models.Scope, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return models.Scope{}, false
	}

	role, _ := middleware.GetRole(ctx)
	if role == models.RoleDirection {
		return models.AllInstructors(), true
	}
	return models.ForInstructor(userID), true
}

// GetSessionStats returns per-session attendance rates
// @Summary Per-session attendance rates
// @Description One rate row per (day, group, module), oldest first. Sessions without presence records report a 0 rate.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SessionStatResponse} "Session stats"
// @Router /analytics/sessions [get]
func (c *AnalyticsController) GetSessionStats(ctx *gin.Context) {
	scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	stats, err := c.analyticsService.GetSessionStats(ctx.Request.Context(), scope)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// GetKPIs returns the global indicators
// @Summary Attendance KPIs
// @Description Session count and overall presence rate for the caller's scope
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.KPIResponse} "KPIs"
// @Router /analytics/kpis [get]
func (c *AnalyticsController) GetKPIs(ctx *gin.Context) {
	scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	kpis, err := c.analyticsService.GetKPIs(ctx.Request.Context(), scope)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(kpis))
}

// GetAbsenceReport returns the ranked absence report
// @Summary Absence report
// @Description Absences aggregated per (student, module), ranked by descending count with the dates most recent first
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AbsenceRecordResponse} "Absence report"
// @Router /analytics/absences [get]
func (c *AnalyticsController) GetAbsenceReport(ctx *gin.Context) {
	scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	report, err := c.analyticsService.GetAbsenceReport(ctx.Request.Context(), scope)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}
