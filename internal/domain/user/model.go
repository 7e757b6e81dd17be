package user

import "time"

// Role determines which workflow transitions a user may drive.
type Role string

const (
	RoleWorker         Role = "worker"
	RoleCrewAdmin      Role = "crew_admin"
	RoleSuperintendent Role = "superintendent"
	RoleProjectManager Role = "project_manager"
	RolePayroll        Role = "payroll"
	RoleAdmin          Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleCrewAdmin, RoleSuperintendent, RoleProjectManager, RolePayroll, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Role      Role      `gorm:"size:32;not null;default:'worker'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Actor is the authenticated identity the auth layer injects into every
// workflow call.
type Actor struct {
	ID   uint
	Role Role
}
