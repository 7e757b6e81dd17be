package handlers

import (
	"net/http"
	"strconv"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/project"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/crewtrack/crewtime/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func activeOnly(c *gin.Context) bool {
	return c.DefaultQuery("active_only", "true") != "false"
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	p, err := h.svc.CreateProject(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input project.UpdateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	p, err := h.svc.UpdateProject(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.GetProject(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(activeOnly(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) CreateCrew(c *gin.Context) {
	var input project.CreateCrewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	crew, err := h.svc.CreateCrew(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crew)
}

func (h *ProjectHandler) SetCrewMembers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input struct {
		MemberIDs []uint `json:"member_ids" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	crew, err := h.svc.SetCrewMembers(id, input.MemberIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *ProjectHandler) GetCrews(c *gin.Context) {
	crews, err := h.svc.ListCrews(activeOnly(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crews)
}

func (h *ProjectHandler) CreateCostCode(c *gin.Context) {
	var input project.CreateCostCodeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	cc, err := h.svc.CreateCostCode(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cc)
}

func (h *ProjectHandler) UpdateCostCode(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input project.UpdateCostCodeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	cc, err := h.svc.UpdateCostCode(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cc)
}

func (h *ProjectHandler) GetCostCodes(c *gin.Context) {
	var projectID *uint
	if raw := c.Query("project_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project_id"})
			return
		}
		id := uint(v)
		projectID = &id
	}
	codes, err := h.svc.ListCostCodes(projectID, activeOnly(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}
