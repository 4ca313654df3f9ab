package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/middleware"
)

// AssignmentController handles practical work publication, subject downloads
// and report collection
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// Create publishes a practical work
// @Summary Publish a practical work
// @Description Publishes a TP for a group. The subject file, if any, arrives as the "file" multipart part and is stored in the database.
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param deadline formData string true "Deadline (RFC 3339 or YYYY-MM-DD)"
// @Param moduleId formData int true "Module ID"
// @Param groupId formData int true "Group ID"
// @Param file formData file false "Subject file"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentResponse} "Assignment published"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var upload *services.AttachmentUpload
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		if fileHeader.Size > services.MaxAttachmentSize {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Attachment exceeds the size limit")
			errorDetail = errorDetail.WithField("file")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		upload = &services.AttachmentUpload{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			Content:     content,
		}
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), instructorID, &req, upload)
	if err != nil {
		c.logger.Warn().Err(err).Int64("instructorId", instructorID).Msg("Assignment publication failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(toAssignmentResponse(assignment)))
}

// List lists assignments for the caller
// @Summary List assignments
// @Description Students see the TPs published for their group; instructors see the TPs they published
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse} "Assignments"
// @Router /assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	role, _ := middleware.GetRole(ctx)

	var (
		assignments []*models.Assignment
		err         error
	)
	if role == models.RoleStudent {
		assignments, err = c.assignmentService.ListForStudent(ctx.Request.Context(), userID)
	} else {
		assignments, err = c.assignmentService.ListForInstructor(ctx.Request.Context(), userID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, toAssignmentResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DownloadAttachment streams an assignment's subject file
// @Summary Download a subject file
// @Tags assignments
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {file} binary "Subject file"
// @Failure 404 {object} dto.ErrorResponse "Assignment or attachment not found"
// @Router /assignments/{id}/attachment [get]
func (c *AssignmentController) DownloadAttachment(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	attachment, err := c.assignmentService.GetAttachment(ctx.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	ctx.Data(http.StatusOK, attachment.ContentType, attachment.Content)
}

// Delete removes an assignment
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the publisher"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assignmentService.Delete(ctx.Request.Context(), assignmentID, instructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Assignment deleted"}))
}

// SubmitReport records the caller's report link
// @Summary Submit a report
// @Description Records a cloud link to the student's report. Re-submitting replaces the previous link.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.SubmitReportRequest true "Report link"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse} "Report recorded"
// @Failure 403 {object} dto.ErrorResponse "Assignment not published for this student's group"
// @Router /assignments/{id}/submissions [post]
func (c *AssignmentController) SubmitReport(ctx *gin.Context) {
	studentID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.assignmentService.SubmitReport(ctx.Request.Context(), assignmentID, studentID, req.Link)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SubmissionResponse{
		ID:          submission.ID,
		StudentID:   submission.StudentID,
		Link:        submission.Link,
		SubmittedAt: submission.SubmittedAt,
	}))
}

// ListSubmissions lists the reports received for an assignment
// @Summary List an assignment's submissions
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubmissionResponse} "Submissions"
// @Failure 403 {object} dto.ErrorResponse "Not the publisher"
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	instructorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.assignmentService.ListSubmissions(ctx.Request.Context(), assignmentID, instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, s := range submissions {
		entry := dto.SubmissionResponse{
			ID:          s.ID,
			StudentID:   s.StudentID,
			Link:        s.Link,
			SubmittedAt: s.SubmittedAt,
		}
		if s.Student != nil {
			entry.CNE = s.Student.CNE
			if s.Student.User != nil {
				entry.StudentName = s.Student.User.FullName()
			}
		}
		resp = append(resp, entry)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

func toAssignmentResponse(a *models.Assignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Deadline:    a.Deadline,
		ModuleID:    a.ModuleID,
		GroupID:     a.GroupID,
		PublishedAt: a.PublishedAt,
	}
	if a.Attachment != nil {
		resp.HasFile = true
		resp.FileName = a.Attachment.FileName
	}
	return resp
}
