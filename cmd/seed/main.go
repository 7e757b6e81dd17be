package main

import (
	"flag"
	"log"
	"os"

	"github.com/crewtrack/crewtime/internal/config"
	"github.com/crewtrack/crewtime/internal/config/db"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

// Fixture mirrors the structure of seed.yaml: users first, then projects
// with their crews and cost codes nested underneath.
type Fixture struct {
	Users []struct {
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		Email     string `yaml:"email"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Role      string `yaml:"role"`
	} `yaml:"users"`
	Projects []struct {
		Code        string  `yaml:"code"`
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		BudgetHours float64 `yaml:"budget_hours"`
		CostCodes   []struct {
			Code        string  `yaml:"code"`
			Description string  `yaml:"description"`
			Phase       string  `yaml:"phase"`
			Activity    string  `yaml:"activity"`
			BudgetHours float64 `yaml:"budget_hours"`
		} `yaml:"cost_codes"`
		Crews []struct {
			Name       string   `yaml:"name"`
			Supervisor string   `yaml:"supervisor"`
			Members    []string `yaml:"members"`
		} `yaml:"crews"`
	} `yaml:"projects"`
}

func main() {
	path := flag.String("f", "seed.yaml", "fixture file")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	userIDs := make(map[string]uint)
	for _, u := range fx.Users {
		role := user.Role(u.Role)
		if !role.Valid() {
			log.Fatalf("user %s: unknown role %q", u.Username, u.Role)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", u.Username, err)
		}
		record := user.User{
			Username:  u.Username,
			Password:  string(hashed),
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      role,
			IsActive:  true,
		}
		var existing user.User
		if err := db.DB.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			userIDs[u.Username] = existing.ID
			continue
		}
		if err := db.DB.Create(&record).Error; err != nil {
			log.Fatalf("create user %s: %v", u.Username, err)
		}
		userIDs[u.Username] = record.ID
	}

	for _, p := range fx.Projects {
		record := project.Project{
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			BudgetHours: p.BudgetHours,
			IsActive:    true,
		}
		var existing project.Project
		if err := db.DB.Where("code = ?", p.Code).First(&existing).Error; err == nil {
			record = existing
		} else if err := db.DB.Create(&record).Error; err != nil {
			log.Fatalf("create project %s: %v", p.Code, err)
		}

		for _, cc := range p.CostCodes {
			var count int64
			db.DB.Model(&project.CostCode{}).
				Where("code = ? AND project_id = ?", cc.Code, record.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			code := project.CostCode{
				Code:        cc.Code,
				Description: cc.Description,
				Phase:       cc.Phase,
				Activity:    cc.Activity,
				ProjectID:   record.ID,
				BudgetHours: cc.BudgetHours,
				IsActive:    true,
			}
			if err := db.DB.Create(&code).Error; err != nil {
				log.Fatalf("create cost code %s: %v", cc.Code, err)
			}
		}

		for _, cr := range p.Crews {
			var count int64
			db.DB.Model(&project.Crew{}).
				Where("name = ? AND project_id = ?", cr.Name, record.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			crew := project.Crew{
				Name:      cr.Name,
				ProjectID: record.ID,
				IsActive:  true,
			}
			if cr.Supervisor != "" {
				id, ok := userIDs[cr.Supervisor]
				if !ok {
					log.Fatalf("crew %s: unknown supervisor %q", cr.Name, cr.Supervisor)
				}
				crew.SupervisorID = &id
			}
			if err := db.DB.Create(&crew).Error; err != nil {
				log.Fatalf("create crew %s: %v", cr.Name, err)
			}
			for _, m := range cr.Members {
				id, ok := userIDs[m]
				if !ok {
					log.Fatalf("crew %s: unknown member %q", cr.Name, m)
				}
				member := project.CrewMember{CrewID: crew.ID, UserID: id, IsActive: true}
				if err := db.DB.Create(&member).Error; err != nil {
					log.Fatalf("add member %s to crew %s: %v", m, cr.Name, err)
				}
			}
		}
	}

	log.Printf("seeded %d users, %d projects", len(fx.Users), len(fx.Projects))
}
