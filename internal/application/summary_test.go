package application_test

import (
	"testing"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approveChain drives a timesheet draft -> approved via the PM fast path.
func approveChain(t *testing.T, svc *application.Services, id uint) {
	t.Helper()
	_, err := svc.Workflow.Submit(crewAdmin, id)
	require.NoError(t, err)
	_, err = svc.Workflow.Approve(pm, id, "")
	require.NoError(t, err)
}

func TestLaborSummaryDefaultsToApproved(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	approved := seedTimesheet(t, repos, fx, date("2026-08-03"), 80)
	approveChain(t, svc, approved.ID)

	// drafts must not bleed into the payroll view
	seedTimesheet(t, repos, fx, date("2026-08-04"), 500)

	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, fx.CostCode.ID, row.CostCodeID)
	assert.Equal(t, "03-100 (Highway 12 Overpass)", row.CostCode)
	assert.Equal(t, 100.0, row.BudgetHours)
	assert.Equal(t, 80.0, row.ActualHours)
	assert.Equal(t, -20.0, row.Variance)
	assert.Equal(t, -20.0, row.VariancePercentage)
	assert.Equal(t, 80.0, row.Utilization)
}

func TestLaborSummaryIncludesOvertime(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	entry := timesheet.TimesheetEntry{
		TimesheetID:   ts.ID,
		UserID:        fx.Worker.ID,
		CostCodeID:    fx.CostCode.ID,
		Hours:         4,
		OvertimeHours: 2,
	}
	require.NoError(t, repos.Timesheet.CreateEntry(&entry))
	approveChain(t, svc, ts.ID)

	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 14.0, rows[0].ActualHours)
	assert.Equal(t, 2.0, rows[0].OvertimeHours)
}

func TestLaborSummaryZeroBudget(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	unbudgeted := project.CostCode{Code: "99-000", Description: "Unbudgeted", ProjectID: fx.Project.ID, IsActive: true}
	require.NoError(t, repos.CostCode.CreateCostCode(&unbudgeted))

	ts := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	entry := timesheet.TimesheetEntry{
		TimesheetID: ts.ID,
		UserID:      fx.Worker.ID,
		CostCodeID:  unbudgeted.ID,
		Hours:       5,
	}
	require.NoError(t, repos.Timesheet.CreateEntry(&entry))
	approveChain(t, svc, ts.ID)

	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		if row.CostCodeID != unbudgeted.ID {
			continue
		}
		// division by zero is defined away
		assert.Equal(t, 0.0, row.BudgetHours)
		assert.Equal(t, 5.0, row.Variance)
		assert.Equal(t, 0.0, row.VariancePercentage)
		assert.Equal(t, 0.0, row.Utilization)
	}
}

func TestLaborSummaryStatusFilter(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	pending := seedTimesheet(t, repos, fx, date("2026-08-03"), 12)
	_, err := svc.Workflow.Submit(crewAdmin, pending.ID)
	require.NoError(t, err)

	// default view sees nothing
	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	// explicit pending filter sees the in-flight hours
	rows, err = svc.Summary.LaborSummary(application.LaborSummaryFilter{
		Statuses: timesheet.PendingStatuses(),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 12.0, rows[0].ActualHours)
}

func TestLaborSummaryRejectsUnknownStatus(t *testing.T) {
	svc, repos := testServices(t)
	seedFixture(t, repos)

	_, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{
		Statuses: []timesheet.TimesheetStatus{"bogus"},
	})
	require.ErrorIs(t, err, application.ErrValidation)
}

func TestLaborSummaryDateAndProjectFilters(t *testing.T) {
	svc, repos := testServices(t)
	fx := seedFixture(t, repos)

	early := seedTimesheet(t, repos, fx, date("2026-08-03"), 8)
	approveChain(t, svc, early.ID)
	late := seedTimesheet(t, repos, fx, date("2026-08-20"), 16)
	approveChain(t, svc, late.ID)

	from := date("2026-08-10")
	rows, err := svc.Summary.LaborSummary(application.LaborSummaryFilter{DateFrom: &from})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 16.0, rows[0].ActualHours)

	other := uint(9999)
	rows, err = svc.Summary.LaborSummary(application.LaborSummaryFilter{ProjectID: &other})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
