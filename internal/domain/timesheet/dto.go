package timesheet

import "time"

type CreateTimesheetInput struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	CrewID    uint   `json:"crew_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// EntryInput is the caller-supplied form of one entry. Edit resends the
// complete desired entry list; AddEntry appends a single one.
type EntryInput struct {
	UserID        uint    `json:"user_id" binding:"required"`
	CostCodeID    uint    `json:"cost_code_id" binding:"required"`
	Hours         float64 `json:"hours" binding:"gte=0"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0"`
	Description   string  `json:"description"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
}

type EditInput struct {
	Entries []EntryInput `json:"entries" binding:"required"`
}

type ApproveInput struct {
	Comments string `json:"comments"`
}

type BulkApproveInput struct {
	TimesheetIDs []uint `json:"timesheet_ids" binding:"required"`
	Comments     string `json:"comments"`
}

// ListFilter narrows timesheet queries. A nil field means "any".
// CrewIDs restricts to a membership set and is applied for workers.
type ListFilter struct {
	ProjectID *uint
	CrewIDs   []uint
	Date      *time.Time
	Status    *TimesheetStatus
}

type TimesheetDTO struct {
	ID          uint            `json:"id"`
	ProjectID   uint            `json:"project_id"`
	CrewID      uint            `json:"crew_id"`
	Date        string          `json:"date"`
	Status      TimesheetStatus `json:"status"`
	TotalHours  float64         `json:"total_hours"`
	EntryCount  int             `json:"entry_count"`
	SubmittedAt *time.Time      `json:"submitted_at"`
	Version     int             `json:"version"`
}

func ToDTO(ts Timesheet) TimesheetDTO {
	return TimesheetDTO{
		ID:          ts.ID,
		ProjectID:   ts.ProjectID,
		CrewID:      ts.CrewID,
		Date:        ts.Date.Format(time.DateOnly),
		Status:      ts.Status,
		TotalHours:  ts.TotalHours(),
		EntryCount:  ts.EntryCount(),
		SubmittedAt: ts.SubmittedAt,
		Version:     ts.Version,
	}
}

// LaborSummaryRow is one cost code's budget-vs-actual rollup.
type LaborSummaryRow struct {
	CostCodeID         uint    `json:"cost_code_id"`
	CostCode           string  `json:"cost_code"`
	Description        string  `json:"description"`
	Phase              string  `json:"phase"`
	ProjectName        string  `json:"project_name"`
	BudgetHours        float64 `json:"budget_hours"`
	ActualHours        float64 `json:"actual_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variance_percentage"`
	Utilization        float64 `json:"utilization"`
}
