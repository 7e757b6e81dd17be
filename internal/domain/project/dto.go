package project

type CreateProjectInput struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BudgetHours float64 `json:"budget_hours" binding:"omitempty,gte=0"`
}

type UpdateProjectInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	EndDate     *string  `json:"end_date"`
	BudgetHours *float64 `json:"budget_hours" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

type CreateCrewInput struct {
	Name         string `json:"name" binding:"required"`
	ProjectID    uint   `json:"project_id" binding:"required"`
	SupervisorID *uint  `json:"supervisor_id"`
	MemberIDs    []uint `json:"member_ids"`
}

type CreateCostCodeInput struct {
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Phase       string  `json:"phase"`
	Activity    string  `json:"activity"`
	ProjectID   uint    `json:"project_id" binding:"required"`
	BudgetHours float64 `json:"budget_hours" binding:"omitempty,gte=0"`
}

type UpdateCostCodeInput struct {
	Description *string  `json:"description"`
	Phase       *string  `json:"phase"`
	Activity    *string  `json:"activity"`
	BudgetHours *float64 `json:"budget_hours" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}
