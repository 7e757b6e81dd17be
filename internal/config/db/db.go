package db

import (
	"fmt"
	"log"

	"github.com/crewtrack/crewtime/internal/config"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to postgres using the loaded config and migrates the schema.
func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps in an externally constructed DB (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Crew{},
		&project.CrewMember{},
		&project.CostCode{},
		&timesheet.Timesheet{},
		&timesheet.TimesheetEntry{},
		&timesheet.Approval{},
		&timesheet.TimesheetVersion{},
	)
}
