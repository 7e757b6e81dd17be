package application

import (
	"fmt"
	"math"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/repository"
)

// SummaryService computes budget-vs-actual rollups. Read-only.
type SummaryService struct {
	Repos *repository.Repos
}

func NewSummaryService(repos *repository.Repos) *SummaryService {
	return &SummaryService{Repos: repos}
}

// LaborSummaryFilter restricts the rollup. An empty status set defaults to
// approved-only, the payroll-grade view.
type LaborSummaryFilter struct {
	ProjectID *uint
	DateFrom  *time.Time
	DateTo    *time.Time
	Statuses  []timesheet.TimesheetStatus
}

// LaborSummary groups approved (or otherwise qualifying) entry hours by cost
// code and derives variance and utilization against the budget.
func (s *SummaryService) LaborSummary(filter LaborSummaryFilter) ([]timesheet.LaborSummaryRow, error) {
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = []timesheet.TimesheetStatus{timesheet.StatusApproved}
	}
	for _, st := range statuses {
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, st)
		}
	}

	rows, err := s.Repos.Timesheet.SumHoursByCostCode(repository.SummaryParams{
		ProjectID: filter.ProjectID,
		DateFrom:  filter.DateFrom,
		DateTo:    filter.DateTo,
		Statuses:  statuses,
	})
	if err != nil {
		return nil, err
	}

	summary := make([]timesheet.LaborSummaryRow, 0, len(rows))
	for _, row := range rows {
		actual := row.RegularHours + row.OvertimeHours
		variance := actual - row.BudgetHours

		var variancePct, utilization float64
		if row.BudgetHours > 0 {
			variancePct = round2(variance / row.BudgetHours * 100)
			utilization = round2(actual / row.BudgetHours * 100)
		}

		summary = append(summary, timesheet.LaborSummaryRow{
			CostCodeID:         row.CostCodeID,
			CostCode:           fmt.Sprintf("%s (%s)", row.Code, row.ProjectName),
			Description:        row.Description,
			Phase:              row.Phase,
			ProjectName:        row.ProjectName,
			BudgetHours:        row.BudgetHours,
			ActualHours:        actual,
			OvertimeHours:      row.OvertimeHours,
			Variance:           variance,
			VariancePercentage: variancePct,
			Utilization:        utilization,
		})
	}
	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
