package handlers

import (
	"net/http"

	"github.com/crewtrack/crewtime/internal/importer"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/crewtrack/crewtime/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	svc *importer.Service
}

func NewImportHandler(svc *importer.Service) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// ImportCSV godoc
// @Summary Bulk-load labor entries from a CSV file
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV with header date,project_id,crew_id,user_id,cost_code_id,hours[,overtime_hours,description]"
// @Param submit query bool false "Submit each touched timesheet after loading"
// @Success 200 {object} importer.Result
// @Failure 400 {object} response.ErrorResponse "Missing file or bad header"
// @Router /imports/timesheets [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot open uploaded file"})
		return
	}
	defer f.Close()

	submit := c.Query("submit") == "true"

	result, err := h.svc.ImportCSV(f, actor, submit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
