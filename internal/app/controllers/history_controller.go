package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/middleware"
)

// HistoryController serves the instructor publication feed
type HistoryController struct {
	historyService *services.HistoryService
	logger         zerolog.Logger
}

// NewHistoryController creates a new HistoryController
func NewHistoryController(historyService *services.HistoryService, logger zerolog.Logger) *HistoryController {
	return &HistoryController{
		historyService: historyService,
		logger:         logger,
	}
}

// GetHistory returns the caller's merged publication feed
// @Summary Instructor publication history
// @Description Published practical works and announcements merged into one feed, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.HistoryItem} "History feed"
// @Router /history [get]
func (c *HistoryController) GetHistory(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	items, err := c.historyService.GetInstructorHistory(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}
