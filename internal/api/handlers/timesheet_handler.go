package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/crewtrack/crewtime/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TimesheetHandler struct {
	svc      *application.TimesheetService
	workflow *application.WorkflowService
	bulk     *application.BulkService
}

func NewTimesheetHandler(svc *application.TimesheetService, workflow *application.WorkflowService, bulk *application.BulkService) *TimesheetHandler {
	return &TimesheetHandler{svc: svc, workflow: workflow, bulk: bulk}
}

// Create godoc
// @Summary Create a draft timesheet for a crew and date
// @Tags timesheets
// @Accept json
// @Produce json
// @Param input body timesheet.CreateTimesheetInput true "Timesheet key"
// @Success 201 {object} timesheet.TimesheetDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input or duplicate"
// @Router /timesheets [post]
func (h *TimesheetHandler) Create(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input timesheet.CreateTimesheetInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	ts, err := h.svc.CreateTimesheet(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, timesheet.ToDTO(*ts))
}

// List godoc
// @Summary List timesheets, optionally filtered by project, date and status
// @Tags timesheets
// @Produce json
// @Success 200 {array} timesheet.TimesheetDTO
// @Router /timesheets [get]
func (h *TimesheetHandler) List(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var filter timesheet.ListFilter
	if raw := c.Query("project_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project_id"})
			return
		}
		id := uint(v)
		filter.ProjectID = &id
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		filter.Date = &d
	}
	if raw := c.Query("status"); raw != "" {
		st := timesheet.TimesheetStatus(raw)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unknown status"})
			return
		}
		filter.Status = &st
	}

	items, err := h.svc.ListTimesheets(actor, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]timesheet.TimesheetDTO, 0, len(items))
	for _, ts := range items {
		out = append(out, timesheet.ToDTO(ts))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TimesheetHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	ts, err := h.svc.GetTimesheet(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// Edit replaces the full entry list of a draft.
func (h *TimesheetHandler) Edit(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input timesheet.EditInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	ts, err := h.workflow.Edit(actor, id, input.Entries)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet.ToDTO(*ts))
}

// AddEntry appends one entry; allowed on any status except approved.
func (h *TimesheetHandler) AddEntry(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input timesheet.EntryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	entry, err := h.workflow.AddEntry(actor, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Submit godoc
// @Summary Submit a draft timesheet into the approval chain
// @Tags workflow
// @Produce json
// @Success 200 {object} timesheet.TimesheetDTO
// @Failure 400 {object} response.ErrorResponse "Not a draft, or no entries"
// @Failure 409 {object} response.ErrorResponse "Concurrent modification"
// @Router /timesheets/{id}/submit [post]
func (h *TimesheetHandler) Submit(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ts, err := h.workflow.Submit(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet.ToDTO(*ts))
}

// Approve godoc
// @Summary Advance a pending timesheet one workflow step
// @Tags workflow
// @Accept json
// @Produce json
// @Param input body timesheet.ApproveInput false "Optional comments"
// @Success 200 {object} timesheet.TimesheetDTO
// @Failure 403 {object} response.ErrorResponse "Role cannot act on this status"
// @Failure 409 {object} response.ErrorResponse "Concurrent modification"
// @Router /timesheets/{id}/approve [post]
func (h *TimesheetHandler) Approve(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input timesheet.ApproveInput
	_ = c.ShouldBind(&input)

	ts, err := h.workflow.Approve(actor, id, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet.ToDTO(*ts))
}

// Reopen sends an already-processed timesheet back to draft. Admin only.
func (h *TimesheetHandler) Reopen(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input timesheet.ApproveInput
	_ = c.ShouldBind(&input)

	ts, err := h.workflow.Reopen(actor, id, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, timesheet.ToDTO(*ts))
}

// SubmitAll submits every draft timesheet, reporting per-item outcomes.
func (h *TimesheetHandler) SubmitAll(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.bulk.SubmitAll(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BulkApprove approves a set of timesheets, reporting per-item outcomes.
func (h *TimesheetHandler) BulkApprove(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input timesheet.BulkApproveInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	result, err := h.bulk.BulkApprove(c.Request.Context(), actor, input.TimesheetIDs, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListApprovals returns the audit trail in creation order.
func (h *TimesheetHandler) ListApprovals(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	approvals, err := h.svc.ListApprovals(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, approvals)
}

// GetVersion returns one immutable submission snapshot.
func (h *TimesheetHandler) GetVersion(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	num, err := strconv.Atoi(c.Param("version"))
	if err != nil || num < 1 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid version parameter"})
		return
	}

	v, err := h.svc.GetVersion(id, num)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
