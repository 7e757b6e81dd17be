package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	svc *application.SummaryService
}

func NewSummaryHandler(svc *application.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// LaborSummary godoc
// @Summary Budget-vs-actual hours grouped by cost code
// @Tags reports
// @Produce json
// @Param project_id query int false "Restrict to one project"
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param statuses query string false "Comma-separated status filter, default approved"
// @Success 200 {array} timesheet.LaborSummaryRow
// @Router /reports/labor-summary [get]
func (h *SummaryHandler) LaborSummary(c *gin.Context) {
	var filter application.LaborSummaryFilter

	if raw := c.Query("project_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project_id"})
			return
		}
		id := uint(v)
		filter.ProjectID = &id
	}
	if raw := c.Query("date_from"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date_from must be YYYY-MM-DD"})
			return
		}
		filter.DateFrom = &d
	}
	if raw := c.Query("date_to"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date_to must be YYYY-MM-DD"})
			return
		}
		filter.DateTo = &d
	}
	if raw := c.Query("statuses"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, timesheet.TimesheetStatus(strings.TrimSpace(part)))
		}
	}

	rows, err := h.svc.LaborSummary(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
