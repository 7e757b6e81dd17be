package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/internal/repository"
	"gorm.io/gorm"
)

// ProjectService manages projects, crews and cost codes. All mutating
// operations are admin-gated at the route layer.
type ProjectService struct {
	repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{repos: repos}
}

func (s *ProjectService) CreateProject(input project.CreateProjectInput) (*project.Project, error) {
	p := project.Project{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		BudgetHours: input.BudgetHours,
		IsActive:    true,
	}
	if input.StartDate != "" {
		d, err := time.Parse(time.DateOnly, input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrValidation)
		}
		p.StartDate = &d
	}
	if input.EndDate != "" {
		d, err := time.Parse(time.DateOnly, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrValidation)
		}
		p.EndDate = &d
	}
	if err := s.repos.Project.CreateProject(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) UpdateProject(id uint, input project.UpdateProjectInput) (*project.Project, error) {
	p, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, err
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.EndDate != nil {
		d, err := time.Parse(time.DateOnly, *input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrValidation)
		}
		p.EndDate = &d
	}
	if input.BudgetHours != nil {
		p.BudgetHours = *input.BudgetHours
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := s.repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) GetProject(id uint) (*project.Project, error) {
	p, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) ListProjects(activeOnly bool) ([]project.Project, error) {
	return s.repos.Project.ListProjects(activeOnly)
}

func (s *ProjectService) CreateCrew(input project.CreateCrewInput) (*project.Crew, error) {
	if _, err := s.repos.Project.GetProjectByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, input.ProjectID)
		}
		return nil, err
	}
	c := project.Crew{
		Name:         input.Name,
		ProjectID:    input.ProjectID,
		SupervisorID: input.SupervisorID,
		IsActive:     true,
	}
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Crew.CreateCrew(&c); err != nil {
			return err
		}
		if len(input.MemberIDs) > 0 {
			return tx.Crew.ReplaceMembers(c.ID, input.MemberIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getCrew(c.ID)
}

func (s *ProjectService) SetCrewMembers(crewID uint, memberIDs []uint) (*project.Crew, error) {
	if _, err := s.repos.Crew.GetCrewByID(crewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: crew %d", ErrNotFound, crewID)
		}
		return nil, err
	}
	if err := s.repos.Crew.ReplaceMembers(crewID, memberIDs); err != nil {
		return nil, err
	}
	return s.getCrew(crewID)
}

func (s *ProjectService) ListCrews(activeOnly bool) ([]project.Crew, error) {
	return s.repos.Crew.ListCrews(activeOnly)
}

func (s *ProjectService) getCrew(id uint) (*project.Crew, error) {
	c, err := s.repos.Crew.GetCrewByID(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ProjectService) CreateCostCode(input project.CreateCostCodeInput) (*project.CostCode, error) {
	if _, err := s.repos.Project.GetProjectByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, input.ProjectID)
		}
		return nil, err
	}
	cc := project.CostCode{
		Code:        input.Code,
		Description: input.Description,
		Phase:       input.Phase,
		Activity:    input.Activity,
		ProjectID:   input.ProjectID,
		BudgetHours: input.BudgetHours,
		IsActive:    true,
	}
	if err := s.repos.CostCode.CreateCostCode(&cc); err != nil {
		return nil, err
	}
	return &cc, nil
}

func (s *ProjectService) UpdateCostCode(id uint, input project.UpdateCostCodeInput) (*project.CostCode, error) {
	cc, err := s.repos.CostCode.GetCostCodeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cost code %d", ErrNotFound, id)
		}
		return nil, err
	}
	if input.Description != nil {
		cc.Description = *input.Description
	}
	if input.Phase != nil {
		cc.Phase = *input.Phase
	}
	if input.Activity != nil {
		cc.Activity = *input.Activity
	}
	if input.BudgetHours != nil {
		cc.BudgetHours = *input.BudgetHours
	}
	if input.IsActive != nil {
		cc.IsActive = *input.IsActive
	}
	if err := s.repos.CostCode.UpdateCostCode(&cc); err != nil {
		return nil, err
	}
	return &cc, nil
}

func (s *ProjectService) ListCostCodes(projectID *uint, activeOnly bool) ([]project.CostCode, error) {
	return s.repos.CostCode.ListCostCodes(projectID, activeOnly)
}
