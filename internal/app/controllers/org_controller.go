package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/middleware"
)

// OrgController exposes the organizational structure
type OrgController struct {
	orgService  *services.OrgService
	userService *services.UserService
	logger      zerolog.Logger
}

// NewOrgController creates a new OrgController
func NewOrgController(orgService *services.OrgService, userService *services.UserService, logger zerolog.Logger) *OrgController {
	return &OrgController{
		orgService:  orgService,
		userService: userService,
		logger:      logger,
	}
}

// ListTracks lists every track with its groups
// @Summary List tracks
// @Tags org
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TrackGroupsResponse} "Tracks with groups"
// @Router /tracks [get]
func (c *OrgController) ListTracks(ctx *gin.Context) {
	tracks, err := c.orgService.ListTracksWithGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tracks))
}

// ListGroups lists all groups
// @Summary List groups
// @Tags org
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Group} "Groups"
// @Router /groups [get]
func (c *OrgController) ListGroups(ctx *gin.Context) {
	groups, err := c.orgService.ListGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(groups))
}

// ListGroupStudents lists the students of a group
// @Summary List a group's students
// @Tags org
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/students [get]
func (c *OrgController) ListGroupStudents(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.userService.ListStudentsByGroup(ctx.Request.Context(), groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ListGroupModules lists the modules taught to a group
// @Summary List a group's modules
// @Tags org
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Module} "Modules"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/modules [get]
func (c *OrgController) ListGroupModules(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	modules, err := c.orgService.ListModulesForGroup(ctx.Request.Context(), groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(modules))
}
