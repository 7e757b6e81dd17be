package repository

import (
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"gorm.io/gorm"
)

type VersionRepo interface {
	CreateVersion(v *timesheet.TimesheetVersion) error
	GetVersion(timesheetID uint, versionNumber int) (*timesheet.TimesheetVersion, error)
	ListByTimesheet(timesheetID uint) ([]timesheet.TimesheetVersion, error)
	WithTx(tx *gorm.DB) VersionRepo
}

type DBVersionRepo struct {
	db *gorm.DB
}

func NewVersionRepo(db *gorm.DB) *DBVersionRepo {
	return &DBVersionRepo{db: db}
}

func (r *DBVersionRepo) CreateVersion(v *timesheet.TimesheetVersion) error {
	return r.db.Create(v).Error
}

func (r *DBVersionRepo) GetVersion(timesheetID uint, versionNumber int) (*timesheet.TimesheetVersion, error) {
	var v timesheet.TimesheetVersion
	err := r.db.Where("timesheet_id = ? AND version_number = ?", timesheetID, versionNumber).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *DBVersionRepo) ListByTimesheet(timesheetID uint) ([]timesheet.TimesheetVersion, error) {
	var versions []timesheet.TimesheetVersion
	err := r.db.Where("timesheet_id = ?", timesheetID).Order("version_number").Find(&versions).Error
	return versions, err
}

func (r *DBVersionRepo) WithTx(tx *gorm.DB) VersionRepo {
	return &DBVersionRepo{db: tx}
}
