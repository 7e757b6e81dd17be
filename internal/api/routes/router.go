package routes

import (
	"github.com/crewtrack/crewtime/internal/api/handlers"
	"github.com/crewtrack/crewtime/internal/api/middleware"
	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/config/db"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, repos, r)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.POST("", middleware.Admin(), h.Project.CreateProject)
			projects.PUT("/:id", middleware.Admin(), h.Project.UpdateProject)
		}

		crews := auth.Group("/crews")
		{
			crews.GET("", h.Project.GetCrews)
			crews.POST("", middleware.Admin(), h.Project.CreateCrew)
			crews.PUT("/:id/members", middleware.Admin(), h.Project.SetCrewMembers)
		}

		costCodes := auth.Group("/cost-codes")
		{
			costCodes.GET("", h.Project.GetCostCodes)
			costCodes.POST("", middleware.Admin(), h.Project.CreateCostCode)
			costCodes.PUT("/:id", middleware.Admin(), h.Project.UpdateCostCode)
		}

		timesheets := auth.Group("/timesheets")
		{
			timesheets.POST("", middleware.RequireRole(user.RoleCrewAdmin), h.Timesheet.Create)
			timesheets.GET("", h.Timesheet.List)
			timesheets.GET("/:id", h.Timesheet.GetByID)
			timesheets.PUT("/:id/entries", middleware.RequireRole(user.RoleCrewAdmin), h.Timesheet.Edit)
			timesheets.POST("/:id/entries", middleware.RequireRole(user.RoleCrewAdmin), h.Timesheet.AddEntry)

			// Workflow transitions; the transition table decides which role
			// may act on which status, so approve is open to all approvers.
			timesheets.POST("/:id/submit", middleware.RequireRole(user.RoleCrewAdmin), h.Timesheet.Submit)
			timesheets.POST("/:id/approve", middleware.Approver(), h.Timesheet.Approve)
			timesheets.POST("/:id/reopen", middleware.Admin(), h.Timesheet.Reopen)

			timesheets.POST("/submit-all", middleware.RequireRole(user.RoleCrewAdmin), h.Timesheet.SubmitAll)
			timesheets.POST("/bulk-approve", middleware.Approver(), h.Timesheet.BulkApprove)

			timesheets.GET("/:id/approvals", h.Timesheet.ListApprovals)
			timesheets.GET("/:id/versions/:version", h.Timesheet.GetVersion)
		}

		reports := auth.Group("/reports")
		{
			reports.GET("/labor-summary", h.Summary.LaborSummary)
		}

		imports := auth.Group("/imports")
		{
			imports.POST("/timesheets", middleware.RequireRole(user.RoleCrewAdmin), h.Import.ImportCSV)
		}
	}
}
