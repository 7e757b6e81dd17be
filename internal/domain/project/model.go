package project

import (
	"time"

	"github.com/crewtrack/crewtime/internal/domain/user"
)

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Code        string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	BudgetHours float64    `json:"budget_hours"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Crew struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:100;not null" json:"name"`
	ProjectID    uint         `gorm:"not null;index" json:"project_id"`
	SupervisorID *uint        `json:"supervisor_id"`
	IsActive     bool         `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	Project      Project      `gorm:"foreignKey:ProjectID" json:"-"`
	Supervisor   *user.User   `gorm:"foreignKey:SupervisorID" json:"-"`
	Members      []CrewMember `gorm:"foreignKey:CrewID" json:"members,omitempty"`
}

type CrewMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CrewID   uint      `gorm:"not null;index" json:"crew_id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	JoinDate time.Time `gorm:"type:date" json:"join_date"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
	User     user.User `gorm:"foreignKey:UserID" json:"-"`
}

// CostCode is the budget unit hours are charged against.
type CostCode struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"size:50;not null;index" json:"code"`
	Description string  `gorm:"size:200;not null" json:"description"`
	Phase       string  `gorm:"size:100" json:"phase"`
	Activity    string  `gorm:"size:100" json:"activity"`
	ProjectID   uint    `gorm:"not null;index" json:"project_id"`
	BudgetHours float64 `json:"budget_hours"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	Project     Project `gorm:"foreignKey:ProjectID" json:"-"`
}
