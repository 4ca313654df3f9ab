package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aymanebt/tptrack/internal/app/controllers"
	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(middleware.Metrics())

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrls.AuthController.Login)
		auth.POST("/refresh", ctrls.AuthController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrls.AuthController.Logout)
		authenticated.GET("/users/me", ctrls.UserController.GetProfile)

		// Org structure, readable by every authenticated role
		authenticated.GET("/tracks", ctrls.OrgController.ListTracks)
		authenticated.GET("/groups", ctrls.OrgController.ListGroups)
		authenticated.GET("/groups/:id/students", ctrls.OrgController.ListGroupStudents)
		authenticated.GET("/groups/:id/modules", ctrls.OrgController.ListGroupModules)

		// Account management, direction only
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleDirection))
		{
			users.POST("", ctrls.UserController.CreateUser)
			users.GET("", ctrls.UserController.ListUsers)
			users.GET("/:id", ctrls.UserController.GetUser)
			users.PUT("/:id", ctrls.UserController.UpdateUser)
			users.DELETE("/:id", ctrls.UserController.DeleteUser)
		}

		// Attendance taking, instructors only
		attendance := authenticated.Group("/attendance")
		attendance.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			attendance.POST("", ctrls.AttendanceController.ApplyBatch)
			attendance.GET("/roster", ctrls.AttendanceController.GetRoster)
		}

		// Reports; the service narrows the scope per role
		analytics := authenticated.Group("/analytics")
		analytics.Use(authMiddleware.RoleRequired(models.RoleDirection, models.RoleInstructor))
		{
			analytics.GET("/sessions", ctrls.AnalyticsController.GetSessionStats)
			analytics.GET("/kpis", ctrls.AnalyticsController.GetKPIs)
			analytics.GET("/absences", ctrls.AnalyticsController.GetAbsenceReport)
		}

		// Publication history, instructors only
		history := authenticated.Group("/history")
		history.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			history.GET("", ctrls.HistoryController.GetHistory)
		}

		// Practical works
		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", ctrls.AssignmentController.List)
			assignments.GET("/:id/attachment", ctrls.AssignmentController.DownloadAttachment)

			assignmentsInstructor := assignments.Group("")
			assignmentsInstructor.Use(authMiddleware.RoleRequired(models.RoleInstructor))
			{
				assignmentsInstructor.POST("", ctrls.AssignmentController.Create)
				assignmentsInstructor.DELETE("/:id", ctrls.AssignmentController.Delete)
				assignmentsInstructor.GET("/:id/submissions", ctrls.AssignmentController.ListSubmissions)
			}

			assignmentsStudent := assignments.Group("")
			assignmentsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				assignmentsStudent.POST("/:id/submissions", ctrls.AssignmentController.SubmitReport)
			}
		}

		// Announcements
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", ctrls.AnnouncementController.List)

			announcementsInstructor := announcements.Group("")
			announcementsInstructor.Use(authMiddleware.RoleRequired(models.RoleInstructor))
			{
				announcementsInstructor.POST("", ctrls.AnnouncementController.Create)
				announcementsInstructor.DELETE("/:id", ctrls.AnnouncementController.Delete)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Prometheus scrape endpoint (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger routes are set up in bootstrap.go already
}
