package timesheet

import (
	"time"

	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"gorm.io/datatypes"
)

// TimesheetStatus is the workflow position of a timesheet.
type TimesheetStatus string

const (
	StatusDraft                 TimesheetStatus = "draft"
	StatusPendingSuperintendent TimesheetStatus = "pending_superintendent"
	StatusPendingProjectManager TimesheetStatus = "pending_pm"
	StatusPendingPayroll        TimesheetStatus = "pending_payroll"
	StatusApproved              TimesheetStatus = "approved"
	StatusReopened              TimesheetStatus = "reopened"
)

// Valid reports whether s is one of the known statuses.
func (s TimesheetStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingSuperintendent, StatusPendingProjectManager,
		StatusPendingPayroll, StatusApproved, StatusReopened:
		return true
	}
	return false
}

// PendingStatuses are the statuses awaiting someone's approval.
func PendingStatuses() []TimesheetStatus {
	return []TimesheetStatus{
		StatusPendingSuperintendent,
		StatusPendingProjectManager,
		StatusPendingPayroll,
	}
}

// NonDraftStatuses covers everything visible to in-flight reporting.
func NonDraftStatuses() []TimesheetStatus {
	return []TimesheetStatus{
		StatusPendingSuperintendent,
		StatusPendingProjectManager,
		StatusPendingPayroll,
		StatusApproved,
		StatusReopened,
	}
}

// ApprovalAction tags an audit record. Transitions are driven by the acting
// role and current status, not by the action tag.
type ApprovalAction string

const (
	ActionSubmit  ApprovalAction = "submit"
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
	ActionReopen  ApprovalAction = "reopen"
)

// Timesheet records one crew's work on one project for one calendar date.
// At most one exists per (project, crew, date).
type Timesheet struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProjectID   uint            `gorm:"not null;uniqueIndex:idx_timesheet_key" json:"project_id"`
	CrewID      uint            `gorm:"not null;uniqueIndex:idx_timesheet_key" json:"crew_id"`
	Date        time.Time       `gorm:"type:date;not null;uniqueIndex:idx_timesheet_key" json:"date"`
	Status      TimesheetStatus `gorm:"size:32;not null;default:'draft'" json:"status"`
	SubmittedBy *uint           `json:"submitted_by"`
	SubmittedAt *time.Time      `json:"submitted_at"`
	Version     int             `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Project   project.Project    `gorm:"foreignKey:ProjectID" json:"-"`
	Crew      project.Crew       `gorm:"foreignKey:CrewID" json:"-"`
	Entries   []TimesheetEntry   `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
	Approvals []Approval         `gorm:"foreignKey:TimesheetID" json:"approvals,omitempty"`
	Versions  []TimesheetVersion `gorm:"foreignKey:TimesheetID" json:"-"`
}

// TotalHours sums regular and overtime hours across entries.
func (t Timesheet) TotalHours() float64 {
	var total float64
	for _, e := range t.Entries {
		total += e.Hours + e.OvertimeHours
	}
	return total
}

func (t Timesheet) EntryCount() int {
	return len(t.Entries)
}

// TimesheetEntry is one worker's hours against one cost code. Entries are
// owned by their timesheet and replaced wholesale on edit.
type TimesheetEntry struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TimesheetID   uint       `gorm:"not null;index" json:"timesheet_id"`
	UserID        uint       `gorm:"not null" json:"user_id"`
	CostCodeID    uint       `gorm:"not null;index" json:"cost_code_id"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Hours         float64    `gorm:"not null" json:"hours"`
	OvertimeHours float64    `gorm:"not null;default:0" json:"overtime_hours"`
	Description   string     `gorm:"type:text" json:"description"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	User     user.User        `gorm:"foreignKey:UserID" json:"-"`
	CostCode project.CostCode `gorm:"foreignKey:CostCodeID" json:"-"`
}

// Approval is an append-only audit record. Never updated or deleted.
type Approval struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TimesheetID uint           `gorm:"not null;index" json:"timesheet_id"`
	ApproverID  uint           `gorm:"not null" json:"approver_id"`
	Action      ApprovalAction `gorm:"size:16;not null" json:"action"`
	Comments    string         `gorm:"type:text" json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`

	Approver user.User `gorm:"foreignKey:ApproverID" json:"-"`
}

// TimesheetVersion is an immutable snapshot of entries and status taken at
// submission time, tagged with the pre-increment version number.
type TimesheetVersion struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TimesheetID   uint           `gorm:"not null;index:idx_version_lookup" json:"timesheet_id"`
	VersionNumber int            `gorm:"not null;index:idx_version_lookup" json:"version_number"`
	DataSnapshot  datatypes.JSON `gorm:"not null" json:"data_snapshot"`
	CreatedBy     uint           `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
}
