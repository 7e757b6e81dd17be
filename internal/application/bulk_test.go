package application_test

import (
	"context"
	"testing"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAllMixedOutcomes(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	good := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	alsoGood := seedTimesheet(t, repos, fx, date("2026-08-04"), 6)

	// empty draft, will fail its submit
	empty, err := svc.Timesheet.CreateTimesheet(crewAdmin, timesheet.CreateTimesheetInput{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      "2026-08-05",
	})
	require.NoError(t, err)

	result, err := svc.Bulk.SubmitAll(context.Background(), crewAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, empty.ID, result.Failures[0].TimesheetID)

	for _, id := range []uint{good.ID, alsoGood.ID} {
		ts, err := repos.Timesheet.GetTimesheetByID(id)
		require.NoError(t, err)
		assert.Equal(t, timesheet.StatusPendingSuperintendent, ts.Status)
	}

	// the failed one stayed a draft
	ts, err := repos.Timesheet.GetTimesheetByID(empty.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusDraft, ts.Status)
}

func TestBulkApproveMixedOutcomes(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	pending := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	_, err := svc.Workflow.Submit(crewAdmin, pending.ID)
	require.NoError(t, err)

	stillDraft := seedTimesheet(t, repos, fx, date("2026-08-04"), 6)

	result, err := svc.Bulk.BulkApprove(context.Background(), superint, []uint{pending.ID, stillDraft.ID, 999}, "batch")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, stillDraft.ID, result.Failures[0].TimesheetID)
	assert.Equal(t, uint(999), result.Failures[1].TimesheetID)

	ts, err := repos.Timesheet.GetTimesheetByID(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPendingProjectManager, ts.Status)
}

func TestBulkApproveKeepsCompletedWorkOnCancel(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	_, err := svc.Workflow.Submit(crewAdmin, ts.ID)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Bulk.BulkApprove(ctx, superint, []uint{ts.ID}, "")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Succeeded)

	// nothing was processed after cancellation
	reloaded, err := repos.Timesheet.GetTimesheetByID(ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPendingSuperintendent, reloaded.Status)
}
