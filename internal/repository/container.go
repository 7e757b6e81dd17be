package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Project   ProjectRepo
	Crew      CrewRepo
	CostCode  CostCodeRepo
	Timesheet TimesheetRepo
	Approval  ApprovalRepo
	Version   VersionRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Project:   NewProjectRepo(db),
		Crew:      NewCrewRepo(db),
		CostCode:  NewCostCodeRepo(db),
		Timesheet: NewTimesheetRepo(db),
		Approval:  NewApprovalRepo(db),
		Version:   NewVersionRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Project:   r.Project.WithTx(tx),
		Crew:      r.Crew.WithTx(tx),
		CostCode:  r.CostCode.WithTx(tx),
		Timesheet: r.Timesheet.WithTx(tx),
		Approval:  r.Approval.WithTx(tx),
		Version:   r.Version.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn inside one database transaction. Every workflow operation
// uses this so a status change, its audit record, and any version snapshot
// commit together or not at all.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
