package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expected CSV header. overtime_hours and description are optional
// trailing columns.
var columns = []string{"date", "project_id", "crew_id", "user_id", "cost_code_id", "hours"}

type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type Result struct {
	BatchID           string     `json:"batch_id"`
	RowsProcessed     int        `json:"rows_processed"`
	TimesheetsCreated int        `json:"timesheets_created"`
	TimesheetsUpdated int        `json:"timesheets_updated"`
	Submitted         int        `json:"submitted"`
	Errors            []RowError `json:"errors"`
}

type Service struct {
	repos    *repository.Repos
	workflow *application.WorkflowService
}

func NewService(repos *repository.Repos, workflow *application.WorkflowService) *Service {
	return &Service{repos: repos, workflow: workflow}
}

type row struct {
	line      int
	date      time.Time
	projectID uint
	crewID    uint
	entry     timesheet.EntryInput
}

type sheetKey struct {
	date      string
	crewID    uint
	projectID uint
}

// ImportCSV reads labor rows and folds them into draft timesheets, one
// per (date, crew, project). Existing drafts are extended; rows hitting
// a timesheet that already left Draft are reported and skipped. When
// submit is true each touched timesheet is submitted afterwards.
func (s *Service) ImportCSV(r io.Reader, actor user.Actor, submit bool) (Result, error) {
	res := Result{BatchID: uuid.NewString()}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return res, fmt.Errorf("%w: missing header row", application.ErrValidation)
	}
	if len(header) < len(columns) {
		return res, fmt.Errorf("%w: header must start with %v", application.ErrValidation, columns)
	}
	for i, want := range columns {
		if header[i] != want {
			return res, fmt.Errorf("%w: column %d must be %q", application.ErrValidation, i+1, want)
		}
	}

	groups := make(map[sheetKey][]row)
	var order []sheetKey

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Errors = append(res.Errors, RowError{Line: line, Reason: "malformed row"})
			continue
		}
		res.RowsProcessed++

		rw, perr := parseRow(record)
		if perr != nil {
			res.Errors = append(res.Errors, RowError{Line: line, Reason: perr.Error()})
			continue
		}
		rw.line = line

		key := sheetKey{date: rw.date.Format(time.DateOnly), crewID: rw.crewID, projectID: rw.projectID}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rw)
	}

	for _, key := range order {
		rows := groups[key]
		id, created, err := s.applyGroup(key, rows)
		if err != nil {
			for _, rw := range rows {
				res.Errors = append(res.Errors, RowError{Line: rw.line, Reason: err.Error()})
			}
			continue
		}
		if created {
			res.TimesheetsCreated++
		} else {
			res.TimesheetsUpdated++
		}
		if submit {
			if _, err := s.workflow.Submit(actor, id); err != nil {
				res.Errors = append(res.Errors, RowError{Line: rows[0].line, Reason: "submit failed: " + err.Error()})
				continue
			}
			res.Submitted++
		}
	}

	return res, nil
}

func parseRow(record []string) (row, error) {
	var rw row
	if len(record) < len(columns) {
		return rw, errors.New("too few columns")
	}

	date, err := time.Parse(time.DateOnly, record[0])
	if err != nil {
		return rw, errors.New("date must be YYYY-MM-DD")
	}
	rw.date = date

	ids := make([]uint, 4)
	for i, col := range []int{1, 2, 3, 4} {
		v, err := strconv.ParseUint(record[col], 10, 32)
		if err != nil || v == 0 {
			return rw, fmt.Errorf("%s must be a positive integer", columns[col])
		}
		ids[i] = uint(v)
	}
	rw.projectID = ids[0]
	rw.crewID = ids[1]

	hours, err := strconv.ParseFloat(record[5], 64)
	if err != nil || hours < 0 {
		return rw, errors.New("hours must be a non-negative number")
	}

	rw.entry = timesheet.EntryInput{
		UserID:     ids[2],
		CostCodeID: ids[3],
		Hours:      hours,
	}
	if len(record) > 6 && record[6] != "" {
		ot, err := strconv.ParseFloat(record[6], 64)
		if err != nil || ot < 0 {
			return rw, errors.New("overtime_hours must be a non-negative number")
		}
		rw.entry.OvertimeHours = ot
	}
	if len(record) > 7 {
		rw.entry.Description = record[7]
	}
	return rw, nil
}

// applyGroup creates or extends the draft for one (date, crew, project)
// key inside a single transaction.
func (s *Service) applyGroup(key sheetKey, rows []row) (uint, bool, error) {
	var id uint
	var created bool

	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		date := rows[0].date
		ts, err := tx.Timesheet.FindByKey(key.projectID, key.crewID, date)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ts = &timesheet.Timesheet{
				ProjectID: key.projectID,
				CrewID:    key.crewID,
				Date:      date,
				Status:    timesheet.StatusDraft,
				Version:   1,
			}
			if err := tx.Timesheet.CreateTimesheet(ts); err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		case ts.Status != timesheet.StatusDraft:
			return fmt.Errorf("timesheet %d is %s, not draft", ts.ID, ts.Status)
		}

		for _, rw := range rows {
			e := timesheet.TimesheetEntry{
				TimesheetID:   ts.ID,
				UserID:        rw.entry.UserID,
				CostCodeID:    rw.entry.CostCodeID,
				Hours:         rw.entry.Hours,
				OvertimeHours: rw.entry.OvertimeHours,
				Description:   rw.entry.Description,
			}
			if err := tx.Timesheet.CreateEntry(&e); err != nil {
				return err
			}
		}
		id = ts.ID
		return nil
	})
	return id, created, err
}
