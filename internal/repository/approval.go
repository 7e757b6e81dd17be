package repository

import (
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"gorm.io/gorm"
)

// ApprovalRepo writes and reads the append-only audit trail. There are no
// update or delete methods on purpose.
type ApprovalRepo interface {
	CreateApproval(a *timesheet.Approval) error
	ListByTimesheet(timesheetID uint) ([]timesheet.Approval, error)
	WithTx(tx *gorm.DB) ApprovalRepo
}

type DBApprovalRepo struct {
	db *gorm.DB
}

func NewApprovalRepo(db *gorm.DB) *DBApprovalRepo {
	return &DBApprovalRepo{db: db}
}

func (r *DBApprovalRepo) CreateApproval(a *timesheet.Approval) error {
	return r.db.Create(a).Error
}

func (r *DBApprovalRepo) ListByTimesheet(timesheetID uint) ([]timesheet.Approval, error) {
	var approvals []timesheet.Approval
	err := r.db.Where("timesheet_id = ?", timesheetID).Order("created_at").Find(&approvals).Error
	return approvals, err
}

func (r *DBApprovalRepo) WithTx(tx *gorm.DB) ApprovalRepo {
	return &DBApprovalRepo{db: tx}
}
