package application_test

import (
	"os"
	"testing"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/crewtrack/crewtime/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflowAgainstPostgres runs the full approval chain on a real
// postgres instance. Skipped unless TEST_DB_DSN is set or RUN_PG_TESTS=1
// (the latter starts a throwaway container).
func TestWorkflowAgainstPostgres(t *testing.T) {
	if os.Getenv("TEST_DB_DSN") == "" && os.Getenv("RUN_PG_TESTS") == "" {
		t.Skip("set TEST_DB_DSN or RUN_PG_TESTS to run postgres integration tests")
	}

	gdb, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := repository.NewRepositories(gdb)
	svc := application.New(repos)

	fx := seedFixture(t, repos)
	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)

	out, err := svc.Workflow.Submit(crewAdmin, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPendingSuperintendent, out.Status)
	assert.Equal(t, 2, out.Version)

	_, err = svc.Workflow.Approve(superint, ts.ID, "")
	require.NoError(t, err)
	_, err = svc.Workflow.Approve(pm, ts.ID, "")
	require.NoError(t, err)
	final, err := svc.Workflow.Approve(payroll, ts.ID, "")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, final.Status)

	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 8.0, rows[0].ActualHours)
}
