package handlers

import (
	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/importer"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User      *UserHandler
	Project   *ProjectHandler
	Timesheet *TimesheetHandler
	Summary   *SummaryHandler
	Import    *ImportHandler
	Router    *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svc.User),
		Project:   NewProjectHandler(svc.Project),
		Timesheet: NewTimesheetHandler(svc.Timesheet, svc.Workflow, svc.Bulk),
		Summary:   NewSummaryHandler(svc.Summary),
		Import:    NewImportHandler(importer.NewService(repos, svc.Workflow)),
		Router:    router,
	}
}
