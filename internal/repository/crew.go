package repository

import (
	"github.com/crewtrack/crewtime/internal/domain/project"
	"gorm.io/gorm"
)

type CrewRepo interface {
	CreateCrew(c *project.Crew) error
	GetCrewByID(id uint) (project.Crew, error)
	UpdateCrew(c *project.Crew) error
	ListCrews(activeOnly bool) ([]project.Crew, error)
	ReplaceMembers(crewID uint, userIDs []uint) error
	ListCrewIDsByUser(userID uint) ([]uint, error)
	WithTx(tx *gorm.DB) CrewRepo
}

type DBCrewRepo struct {
	db *gorm.DB
}

func NewCrewRepo(db *gorm.DB) *DBCrewRepo {
	return &DBCrewRepo{db: db}
}

func (r *DBCrewRepo) CreateCrew(c *project.Crew) error {
	return r.db.Create(c).Error
}

func (r *DBCrewRepo) GetCrewByID(id uint) (project.Crew, error) {
	var c project.Crew
	if err := r.db.Preload("Members").First(&c, id).Error; err != nil {
		return c, err
	}
	return c, nil
}

func (r *DBCrewRepo) UpdateCrew(c *project.Crew) error {
	return r.db.Omit("Members").Save(c).Error
}

func (r *DBCrewRepo) ListCrews(activeOnly bool) ([]project.Crew, error) {
	var crews []project.Crew
	query := r.db.Preload("Members").Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&crews).Error
	return crews, err
}

// ReplaceMembers swaps the crew's membership set wholesale.
func (r *DBCrewRepo) ReplaceMembers(crewID uint, userIDs []uint) error {
	if err := r.db.Where("crew_id = ?", crewID).Delete(&project.CrewMember{}).Error; err != nil {
		return err
	}
	for _, uid := range userIDs {
		member := project.CrewMember{CrewID: crewID, UserID: uid, IsActive: true}
		if err := r.db.Create(&member).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListCrewIDsByUser returns the crews the user actively belongs to. Used to
// scope worker visibility.
func (r *DBCrewRepo) ListCrewIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&project.CrewMember{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("crew_id", &ids).Error
	return ids, err
}

func (r *DBCrewRepo) WithTx(tx *gorm.DB) CrewRepo {
	return &DBCrewRepo{db: tx}
}
