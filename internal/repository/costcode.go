package repository

import (
	"github.com/crewtrack/crewtime/internal/domain/project"
	"gorm.io/gorm"
)

type CostCodeRepo interface {
	CreateCostCode(cc *project.CostCode) error
	GetCostCodeByID(id uint) (project.CostCode, error)
	UpdateCostCode(cc *project.CostCode) error
	ListCostCodes(projectID *uint, activeOnly bool) ([]project.CostCode, error)
	WithTx(tx *gorm.DB) CostCodeRepo
}

type DBCostCodeRepo struct {
	db *gorm.DB
}

func NewCostCodeRepo(db *gorm.DB) *DBCostCodeRepo {
	return &DBCostCodeRepo{db: db}
}

func (r *DBCostCodeRepo) CreateCostCode(cc *project.CostCode) error {
	return r.db.Create(cc).Error
}

func (r *DBCostCodeRepo) GetCostCodeByID(id uint) (project.CostCode, error) {
	var cc project.CostCode
	if err := r.db.First(&cc, id).Error; err != nil {
		return cc, err
	}
	return cc, nil
}

func (r *DBCostCodeRepo) UpdateCostCode(cc *project.CostCode) error {
	return r.db.Save(cc).Error
}

func (r *DBCostCodeRepo) ListCostCodes(projectID *uint, activeOnly bool) ([]project.CostCode, error) {
	var codes []project.CostCode
	query := r.db.Order("project_id, code")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&codes).Error
	return codes, err
}

func (r *DBCostCodeRepo) WithTx(tx *gorm.DB) CostCodeRepo {
	return &DBCostCodeRepo{db: tx}
}
