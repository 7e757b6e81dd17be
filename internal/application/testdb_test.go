package application_test

import (
	"testing"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/config/db"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB creates an in-memory SQLite database with all required tables.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}

func testServices(t *testing.T) (*application.Services, *repository.Repos) {
	t.Helper()
	repos := repository.NewRepositories(testDB(t))
	return application.New(repos), repos
}

// fixture is the minimal world most workflow tests need: one project, one
// crew, one cost code, and a worker on the crew.
type fixture struct {
	Project  project.Project
	Crew     project.Crew
	CostCode project.CostCode
	Worker   user.User
}

func seedFixture(t *testing.T, repos *repository.Repos) fixture {
	t.Helper()

	w := user.User{
		Username:  "worker1",
		Email:     "worker1@example.com",
		Password:  "x",
		FirstName: "Will",
		LastName:  "Carter",
		Role:      user.RoleWorker,
		IsActive:  true,
	}
	if err := repos.User.SaveUser(&w); err != nil {
		t.Fatalf("seed worker: %v", err)
	}

	p := project.Project{Name: "Highway 12 Overpass", Code: "HW-2026-01", BudgetHours: 1000, IsActive: true}
	if err := repos.Project.CreateProject(&p); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	c := project.Crew{Name: "Deck Crew A", ProjectID: p.ID, IsActive: true}
	if err := repos.Crew.CreateCrew(&c); err != nil {
		t.Fatalf("seed crew: %v", err)
	}
	if err := repos.Crew.ReplaceMembers(c.ID, []uint{w.ID}); err != nil {
		t.Fatalf("seed crew members: %v", err)
	}

	cc := project.CostCode{Code: "03-100", Description: "Formwork", ProjectID: p.ID, BudgetHours: 100, IsActive: true}
	if err := repos.CostCode.CreateCostCode(&cc); err != nil {
		t.Fatalf("seed cost code: %v", err)
	}

	return fixture{Project: p, Crew: c, CostCode: cc, Worker: w}
}

func seedSecondWorker(t *testing.T, repos *repository.Repos) user.User {
	t.Helper()
	w := user.User{
		Username:  "worker2",
		Email:     "worker2@example.com",
		Password:  "x",
		FirstName: "Wendy",
		LastName:  "Alvarez",
		Role:      user.RoleWorker,
		IsActive:  true,
	}
	if err := repos.User.SaveUser(&w); err != nil {
		t.Fatalf("seed second worker: %v", err)
	}
	return w
}

// seedTimesheet creates a draft with one entry for the fixture's crew.
func seedTimesheet(t *testing.T, repos *repository.Repos, fx fixture, date time.Time, hours float64) *timesheet.Timesheet {
	t.Helper()

	ts := timesheet.Timesheet{
		ProjectID: fx.Project.ID,
		CrewID:    fx.Crew.ID,
		Date:      date,
		Status:    timesheet.StatusDraft,
		Version:   1,
	}
	if err := repos.Timesheet.CreateTimesheet(&ts); err != nil {
		t.Fatalf("seed timesheet: %v", err)
	}
	entry := timesheet.TimesheetEntry{
		TimesheetID: ts.ID,
		UserID:      fx.Worker.ID,
		CostCodeID:  fx.CostCode.ID,
		Hours:       hours,
	}
	if err := repos.Timesheet.CreateEntry(&entry); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	full, err := repos.Timesheet.GetTimesheetByID(ts.ID)
	if err != nil {
		t.Fatalf("reload timesheet: %v", err)
	}
	return full
}

var (
	crewAdmin = user.Actor{ID: 10, Role: user.RoleCrewAdmin}
	superint  = user.Actor{ID: 20, Role: user.RoleSuperintendent}
	pm        = user.Actor{ID: 30, Role: user.RoleProjectManager}
	payroll   = user.Actor{ID: 40, Role: user.RolePayroll}
	admin     = user.Actor{ID: 50, Role: user.RoleAdmin}
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}
