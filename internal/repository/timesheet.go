package repository

import (
	"errors"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"gorm.io/gorm"
)

// ErrStaleTimesheet signals that a guarded status write matched no row: the
// timesheet's status or version moved under the caller. The operation must be
// retried from a fresh read.
var ErrStaleTimesheet = errors.New("timesheet was modified concurrently")

// CostCodeHours is one raw aggregation row before derived metrics are added.
type CostCodeHours struct {
	CostCodeID    uint
	Code          string
	Description   string
	Phase         string
	ProjectName   string
	BudgetHours   float64
	RegularHours  float64
	OvertimeHours float64
}

// SummaryParams restricts the hours rollup. Statuses is required; project and
// date bounds are optional.
type SummaryParams struct {
	ProjectID *uint
	DateFrom  *time.Time
	DateTo    *time.Time
	Statuses  []timesheet.TimesheetStatus
}

type TimesheetRepo interface {
	CreateTimesheet(ts *timesheet.Timesheet) error
	GetTimesheetByID(id uint) (*timesheet.Timesheet, error)
	FindByKey(projectID, crewID uint, date time.Time) (*timesheet.Timesheet, error)
	ListTimesheets(filter timesheet.ListFilter) ([]timesheet.Timesheet, error)
	ListByStatus(status timesheet.TimesheetStatus) ([]timesheet.Timesheet, error)
	UpdateStatusGuarded(id uint, fromStatus timesheet.TimesheetStatus, fromVersion int, updates map[string]interface{}) error
	CreateEntry(e *timesheet.TimesheetEntry) error
	ReplaceEntries(timesheetID uint, entries []timesheet.TimesheetEntry) error
	SumHoursByCostCode(params SummaryParams) ([]CostCodeHours, error)
	WithTx(tx *gorm.DB) TimesheetRepo
}

type DBTimesheetRepo struct {
	db *gorm.DB
}

func NewTimesheetRepo(db *gorm.DB) *DBTimesheetRepo {
	return &DBTimesheetRepo{db: db}
}

func (r *DBTimesheetRepo) CreateTimesheet(ts *timesheet.Timesheet) error {
	return r.db.Create(ts).Error
}

func (r *DBTimesheetRepo) GetTimesheetByID(id uint) (*timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := r.db.
		Preload("Entries").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		First(&ts, id).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *DBTimesheetRepo) FindByKey(projectID, crewID uint, date time.Time) (*timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := r.db.Preload("Entries").
		Where("project_id = ? AND crew_id = ? AND date = ?", projectID, crewID, date).
		First(&ts).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *DBTimesheetRepo) ListTimesheets(filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	var sheets []timesheet.Timesheet
	query := r.db.Preload("Entries").Order("date desc")
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.CrewIDs != nil {
		query = query.Where("crew_id IN ?", filter.CrewIDs)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	err := query.Find(&sheets).Error
	return sheets, err
}

func (r *DBTimesheetRepo) ListByStatus(status timesheet.TimesheetStatus) ([]timesheet.Timesheet, error) {
	var sheets []timesheet.Timesheet
	err := r.db.Preload("Entries").Where("status = ?", status).Find(&sheets).Error
	return sheets, err
}

// UpdateStatusGuarded applies updates only if the row still carries the
// status and version the caller read. Zero matched rows means a concurrent
// writer got there first.
func (r *DBTimesheetRepo) UpdateStatusGuarded(id uint, fromStatus timesheet.TimesheetStatus, fromVersion int, updates map[string]interface{}) error {
	res := r.db.Model(&timesheet.Timesheet{}).
		Where("id = ? AND status = ? AND version = ?", id, fromStatus, fromVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleTimesheet
	}
	return nil
}

func (r *DBTimesheetRepo) CreateEntry(e *timesheet.TimesheetEntry) error {
	return r.db.Create(e).Error
}

// ReplaceEntries deletes the timesheet's entry set and inserts the new one.
func (r *DBTimesheetRepo) ReplaceEntries(timesheetID uint, entries []timesheet.TimesheetEntry) error {
	if err := r.db.Where("timesheet_id = ?", timesheetID).Delete(&timesheet.TimesheetEntry{}).Error; err != nil {
		return err
	}
	for i := range entries {
		entries[i].TimesheetID = timesheetID
		if err := r.db.Create(&entries[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SumHoursByCostCode aggregates entry hours per cost code across timesheets
// in the given statuses. Cost codes with no matching entries do not appear.
func (r *DBTimesheetRepo) SumHoursByCostCode(params SummaryParams) ([]CostCodeHours, error) {
	query := r.db.Table("timesheet_entries").
		Select(`cost_codes.id AS cost_code_id,
			cost_codes.code AS code,
			cost_codes.description AS description,
			cost_codes.phase AS phase,
			projects.name AS project_name,
			cost_codes.budget_hours AS budget_hours,
			COALESCE(SUM(timesheet_entries.hours), 0) AS regular_hours,
			COALESCE(SUM(timesheet_entries.overtime_hours), 0) AS overtime_hours`).
		Joins("JOIN timesheets ON timesheets.id = timesheet_entries.timesheet_id").
		Joins("JOIN cost_codes ON cost_codes.id = timesheet_entries.cost_code_id").
		Joins("JOIN projects ON projects.id = cost_codes.project_id").
		Where("timesheets.status IN ?", params.Statuses)

	if params.ProjectID != nil {
		query = query.Where("cost_codes.project_id = ?", *params.ProjectID)
	}
	if params.DateFrom != nil {
		query = query.Where("timesheets.date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("timesheets.date <= ?", *params.DateTo)
	}

	var rows []CostCodeHours
	err := query.
		Group("cost_codes.id, cost_codes.code, cost_codes.description, cost_codes.phase, projects.name, cost_codes.budget_hours").
		Scan(&rows).Error
	return rows, err
}

func (r *DBTimesheetRepo) WithTx(tx *gorm.DB) TimesheetRepo {
	return &DBTimesheetRepo{db: tx}
}
