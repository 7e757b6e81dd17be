package repository

import (
	"github.com/crewtrack/crewtime/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uint) (project.Project, error)
	UpdateProject(p *project.Project) error
	ListProjects(activeOnly bool) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	if err := r.db.First(&p, id).Error; err != nil {
		return p, err
	}
	return p, nil
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) ListProjects(activeOnly bool) ([]project.Project, error) {
	var projects []project.Project
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	return &DBProjectRepo{db: tx}
}
