package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/config/db"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/importer"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) (*importer.Service, *repository.Repos) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	repos := repository.NewRepositories(gdb)
	workflow := application.NewWorkflowService(repos)
	return importer.NewService(repos, workflow), repos
}

var actor = user.Actor{ID: 1, Role: user.RoleCrewAdmin}

const header = "date,project_id,crew_id,user_id,cost_code_id,hours,overtime_hours,description\n"

func TestImportCSVGroupsRowsIntoTimesheets(t *testing.T) {
	svc, repos := setup(t)

	csv := header +
		"2026-08-03,1,1,7,3,8,0,deck forms\n" +
		"2026-08-03,1,1,8,3,6,1.5,\n" +
		"2026-08-04,1,1,7,3,8,,\n"

	res, err := svc.ImportCSV(strings.NewReader(csv), actor, false)
	require.NoError(t, err)
	assert.NotEmpty(t, res.BatchID)
	assert.Equal(t, 3, res.RowsProcessed)
	assert.Equal(t, 2, res.TimesheetsCreated)
	assert.Equal(t, 0, res.TimesheetsUpdated)
	assert.Empty(t, res.Errors)

	day, _ := time.Parse(time.DateOnly, "2026-08-03")
	ts, err := repos.Timesheet.FindByKey(1, 1, day)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusDraft, ts.Status)
	require.Len(t, ts.Entries, 2)
	assert.Equal(t, 15.5, ts.TotalHours())
}

func TestImportCSVExtendsExistingDraft(t *testing.T) {
	svc, repos := setup(t)

	day, _ := time.Parse(time.DateOnly, "2026-08-03")
	existing := timesheet.Timesheet{ProjectID: 1, CrewID: 1, Date: day, Status: timesheet.StatusDraft, Version: 1}
	require.NoError(t, repos.Timesheet.CreateTimesheet(&existing))

	res, err := svc.ImportCSV(strings.NewReader(header+"2026-08-03,1,1,7,3,8,,\n"), actor, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TimesheetsCreated)
	assert.Equal(t, 1, res.TimesheetsUpdated)

	reloaded, err := repos.Timesheet.GetTimesheetByID(existing.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Entries, 1)
}

func TestImportCSVSkipsSubmittedTimesheets(t *testing.T) {
	svc, repos := setup(t)

	day, _ := time.Parse(time.DateOnly, "2026-08-03")
	locked := timesheet.Timesheet{ProjectID: 1, CrewID: 1, Date: day, Status: timesheet.StatusPendingSuperintendent, Version: 2}
	require.NoError(t, repos.Timesheet.CreateTimesheet(&locked))

	res, err := svc.ImportCSV(strings.NewReader(header+"2026-08-03,1,1,7,3,8,,\n"), actor, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TimesheetsCreated)
	assert.Equal(t, 0, res.TimesheetsUpdated)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Reason, "not draft")

	reloaded, err := repos.Timesheet.GetTimesheetByID(locked.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Entries)
}

func TestImportCSVReportsBadRows(t *testing.T) {
	svc, _ := setup(t)

	csv := header +
		"not-a-date,1,1,7,3,8,,\n" +
		"2026-08-03,1,1,0,3,8,,\n" +
		"2026-08-03,1,1,7,3,-4,,\n" +
		"2026-08-03,1,1,7,3,8,,\n"

	res, err := svc.ImportCSV(strings.NewReader(csv), actor, false)
	require.NoError(t, err)
	assert.Equal(t, 4, res.RowsProcessed)
	assert.Equal(t, 1, res.TimesheetsCreated)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, 2, res.Errors[0].Line)
	assert.Equal(t, 3, res.Errors[1].Line)
	assert.Equal(t, 4, res.Errors[2].Line)
}

func TestImportCSVRejectsWrongHeader(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.ImportCSV(strings.NewReader("foo,bar\n"), actor, false)
	require.ErrorIs(t, err, application.ErrValidation)
}

func TestImportCSVSubmitOnImport(t *testing.T) {
	svc, repos := setup(t)

	res, err := svc.ImportCSV(strings.NewReader(header+"2026-08-03,1,1,7,3,8,,\n"), actor, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Submitted)

	day, _ := time.Parse(time.DateOnly, "2026-08-03")
	ts, err := repos.Timesheet.FindByKey(1, 1, day)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPendingSuperintendent, ts.Status)
	assert.Equal(t, 2, ts.Version)
}
