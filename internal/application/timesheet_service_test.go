package application_test

import (
	"testing"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTimesheet(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	ts, err := svc.Timesheet.CreateTimesheet(crewAdmin, timesheet.CreateTimesheetInput{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      "2026-08-03",
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusDraft, ts.Status)
	assert.Equal(t, 1, ts.Version)
	require.NotNil(t, ts.SubmittedBy)
	assert.Equal(t, crewAdmin.ID, *ts.SubmittedBy)
}

func TestCreateTimesheetBadDate(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	_, err := svc.Timesheet.CreateTimesheet(crewAdmin, timesheet.CreateTimesheetInput{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      "08/03/2026",
	})
	require.ErrorIs(t, err, application.ErrValidation)
}

func TestCreateTimesheetDuplicateKey(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	input := timesheet.CreateTimesheetInput{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      "2026-08-03",
	}
	_, err := svc.Timesheet.CreateTimesheet(crewAdmin, input)
	require.NoError(t, err)

	_, err = svc.Timesheet.CreateTimesheet(crewAdmin, input)
	require.ErrorIs(t, err, application.ErrValidation)
}

// blindFindTimesheetRepo hides existing rows from FindByKey, standing in for
// a second creator committing between the existence check and the insert.
type blindFindTimesheetRepo struct {
	repository.TimesheetRepo
}

func (r blindFindTimesheetRepo) FindByKey(projectID, crewID uint, date time.Time) (*timesheet.Timesheet, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r blindFindTimesheetRepo) WithTx(tx *gorm.DB) repository.TimesheetRepo {
	return blindFindTimesheetRepo{r.TimesheetRepo.WithTx(tx)}
}

func TestCreateTimesheetDuplicateKeyRace(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)
	seedTimesheet(t, repos, fx, date("2026-08-03"), 8)

	// the existence check misses, so the unique index is the last line
	repos.Timesheet = blindFindTimesheetRepo{repos.Timesheet}

	_, err := svc.Timesheet.CreateTimesheet(crewAdmin, timesheet.CreateTimesheetInput{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      "2026-08-03",
	})
	require.ErrorIs(t, err, application.ErrValidation)
}

func TestListTimesheetsWorkerRestricted(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	// a second crew the worker does not belong to
	otherCrew := project.Crew{Name: "Night Crew", ProjectID: fx.Project.ID, IsActive: true}
	require.NoError(t, repos.Crew.CreateCrew(&otherCrew))

	mine := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)

	other := timesheet.Timesheet{
		ProjectID: fx.Project.ID,
		CrewID:    otherCrew.ID,
		Date:      date("2026-08-03"),
		Status:    timesheet.StatusDraft,
		Version:   1,
	}
	require.NoError(t, repos.Timesheet.CreateTimesheet(&other))

	worker := user.Actor{ID: fx.Worker.ID, Role: user.RoleWorker}
	items, err := svc.Timesheet.ListTimesheets(worker, timesheet.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].ID)

	// a supervisor-level role sees both
	items, err = svc.Timesheet.ListTimesheets(superint, timesheet.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListTimesheetsStatusFilter(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	draft := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	submitted := seedTimesheet(t, repos, fx, date("2026-08-04"), 8)
	_, err := svc.Workflow.Submit(crewAdmin, submitted.ID)
	require.NoError(t, err)

	status := timesheet.StatusDraft
	items, err := svc.Timesheet.ListTimesheets(superint, timesheet.ListFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, draft.ID, items[0].ID)
}

func TestGetVersionNotFound(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)
	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)

	_, err := svc.Timesheet.GetVersion(ts.ID, 1)
	require.ErrorIs(t, err, application.ErrNotFound)

	_, err = svc.Workflow.Submit(crewAdmin, ts.ID)
	require.NoError(t, err)

	v, err := svc.Timesheet.GetVersion(ts.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v.VersionNumber)
}

func TestListApprovalsOrdered(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)
	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)

	_, err := svc.Workflow.Submit(crewAdmin, ts.ID)
	require.NoError(t, err)
	_, err = svc.Workflow.Approve(superint, ts.ID, "first")
	require.NoError(t, err)
	_, err = svc.Workflow.Approve(pm, ts.ID, "second")
	require.NoError(t, err)

	approvals, err := svc.Timesheet.ListApprovals(ts.ID)
	require.NoError(t, err)
	require.Len(t, approvals, 3)
	assert.Equal(t, timesheet.ActionSubmit, approvals[0].Action)
	assert.Equal(t, "first", approvals[1].Comments)
	assert.Equal(t, "second", approvals[2].Comments)
}
