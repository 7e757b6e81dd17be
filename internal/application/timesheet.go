package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"gorm.io/gorm"
)

// TimesheetService covers creation and read queries. Workflow transitions
// live in WorkflowService.
type TimesheetService struct {
	Repos *repository.Repos
}

func NewTimesheetService(repos *repository.Repos) *TimesheetService {
	return &TimesheetService{Repos: repos}
}

// CreateTimesheet creates an empty draft. At most one timesheet may exist per
// (project, crew, date); the unique index backs this check.
func (s *TimesheetService) CreateTimesheet(actor user.Actor, input timesheet.CreateTimesheetInput) (*timesheet.Timesheet, error) {
	date, err := time.Parse(time.DateOnly, input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}

	_, err = s.Repos.Timesheet.FindByKey(input.ProjectID, input.CrewID, date)
	if err == nil {
		return nil, fmt.Errorf("%w: timesheet already exists for this crew and date", ErrValidation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	submitter := actor.ID
	ts := timesheet.Timesheet{
		ProjectID:   input.ProjectID,
		CrewID:      input.CrewID,
		Date:        date,
		Status:      timesheet.StatusDraft,
		SubmittedBy: &submitter,
		Version:     1,
	}
	if err := s.Repos.Timesheet.CreateTimesheet(&ts); err != nil {
		// A racing create can slip past FindByKey; the unique index still
		// rejects it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: timesheet already exists for this crew and date", ErrValidation)
		}
		return nil, err
	}
	return &ts, nil
}

func (s *TimesheetService) GetTimesheet(id uint) (*timesheet.Timesheet, error) {
	ts, err := s.Repos.Timesheet.GetTimesheetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return ts, nil
}

// ListTimesheets applies the caller's filter. Workers only see timesheets
// for crews they belong to.
func (s *TimesheetService) ListTimesheets(actor user.Actor, filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	if actor.Role == user.RoleWorker {
		crewIDs, err := s.Repos.Crew.ListCrewIDsByUser(actor.ID)
		if err != nil {
			return nil, err
		}
		if crewIDs == nil {
			crewIDs = []uint{}
		}
		filter.CrewIDs = crewIDs
	}
	return s.Repos.Timesheet.ListTimesheets(filter)
}

func (s *TimesheetService) ListApprovals(timesheetID uint) ([]timesheet.Approval, error) {
	if _, err := s.Repos.Timesheet.GetTimesheetByID(timesheetID); err != nil {
		return nil, asNotFound(err)
	}
	return s.Repos.Approval.ListByTimesheet(timesheetID)
}

// GetVersion fetches the immutable snapshot stored for a submission.
func (s *TimesheetService) GetVersion(timesheetID uint, versionNumber int) (*timesheet.TimesheetVersion, error) {
	v, err := s.Repos.Version.GetVersion(timesheetID, versionNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no version %d", ErrNotFound, versionNumber)
		}
		return nil, err
	}
	return v, nil
}
