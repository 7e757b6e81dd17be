package application

import (
	"github.com/crewtrack/crewtime/internal/repository"
)

type Services struct {
	User      *UserService
	Project   *ProjectService
	Timesheet *TimesheetService
	Workflow  *WorkflowService
	Bulk      *BulkService
	Summary   *SummaryService
}

func New(repos *repository.Repos) *Services {
	workflow := NewWorkflowService(repos)
	return &Services{
		User:      NewUserService(repos),
		Project:   NewProjectService(repos),
		Timesheet: NewTimesheetService(repos),
		Workflow:  workflow,
		Bulk:      NewBulkService(repos, workflow),
		Summary:   NewSummaryService(repos),
	}
}
