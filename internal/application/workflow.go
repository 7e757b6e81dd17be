package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
	"gorm.io/gorm"
)

// WorkflowService applies single-timesheet state transitions. Every operation
// runs inside one transaction; on any error nothing is written.
type WorkflowService struct {
	Repos *repository.Repos
}

func NewWorkflowService(repos *repository.Repos) *WorkflowService {
	return &WorkflowService{Repos: repos}
}

// Submit moves a draft timesheet into the approval pipeline. It snapshots the
// pre-transition entries under the current version number, then bumps the
// version and appends the audit record.
func (s *WorkflowService) Submit(actor user.Actor, timesheetID uint) (*timesheet.Timesheet, error) {
	var result *timesheet.Timesheet
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		ts, err := tx.Timesheet.GetTimesheetByID(timesheetID)
		if err != nil {
			return asNotFound(err)
		}
		if ts.Status != timesheet.StatusDraft {
			return fmt.Errorf("%w: only draft timesheets can be submitted", ErrInvalidState)
		}
		if len(ts.Entries) == 0 {
			return ErrEmptyTimesheet
		}

		now := time.Now().UTC()
		snapshot, err := timesheet.BuildSnapshot(ts, now)
		if err != nil {
			return err
		}

		if err := tx.Timesheet.UpdateStatusGuarded(ts.ID, ts.Status, ts.Version, map[string]interface{}{
			"status":       timesheet.StatusPendingSuperintendent,
			"submitted_at": now,
			"version":      ts.Version + 1,
			"updated_at":   now,
		}); err != nil {
			return asConflict(err)
		}

		version := timesheet.TimesheetVersion{
			TimesheetID:   ts.ID,
			VersionNumber: ts.Version,
			DataSnapshot:  snapshot,
			CreatedBy:     actor.ID,
		}
		if err := tx.Version.CreateVersion(&version); err != nil {
			return err
		}

		approval := timesheet.Approval{
			TimesheetID: ts.ID,
			ApproverID:  actor.ID,
			Action:      timesheet.ActionSubmit,
			Comments:    "Timesheet submitted for approval",
		}
		if err := tx.Approval.CreateApproval(&approval); err != nil {
			return err
		}

		ts.Status = timesheet.StatusPendingSuperintendent
		ts.SubmittedAt = &now
		ts.Version++
		result = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Approve advances the timesheet one stage according to the transition table.
func (s *WorkflowService) Approve(actor user.Actor, timesheetID uint, comments string) (*timesheet.Timesheet, error) {
	var result *timesheet.Timesheet
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		ts, err := tx.Timesheet.GetTimesheetByID(timesheetID)
		if err != nil {
			return asNotFound(err)
		}

		next, awaiting, allowed := timesheet.NextStatus(ts.Status, actor.Role)
		if !awaiting {
			return fmt.Errorf("%w: timesheet cannot be approved in status %q", ErrInvalidState, ts.Status)
		}
		if !allowed {
			return fmt.Errorf("%w: role %q cannot approve a timesheet in status %q", ErrForbidden, actor.Role, ts.Status)
		}

		if err := tx.Timesheet.UpdateStatusGuarded(ts.ID, ts.Status, ts.Version, map[string]interface{}{
			"status":     next,
			"updated_at": time.Now().UTC(),
		}); err != nil {
			return asConflict(err)
		}

		approval := timesheet.Approval{
			TimesheetID: ts.ID,
			ApproverID:  actor.ID,
			Action:      timesheet.ActionApprove,
			Comments:    comments,
		}
		if err := tx.Approval.CreateApproval(&approval); err != nil {
			return err
		}

		ts.Status = next
		result = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Edit replaces the timesheet's entry set wholesale. Callers resend the
// complete desired list; this is not a diff.
func (s *WorkflowService) Edit(actor user.Actor, timesheetID uint, inputs []timesheet.EntryInput) (*timesheet.Timesheet, error) {
	entries, err := buildEntries(inputs)
	if err != nil {
		return nil, err
	}

	var result *timesheet.Timesheet
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		ts, err := tx.Timesheet.GetTimesheetByID(timesheetID)
		if err != nil {
			return asNotFound(err)
		}
		if ts.Status != timesheet.StatusDraft {
			return fmt.Errorf("%w: only draft timesheets can be edited", ErrInvalidState)
		}
		if err := tx.Timesheet.ReplaceEntries(ts.ID, entries); err != nil {
			return err
		}
		ts.Entries = entries
		result = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddEntry appends a single entry. Unlike Edit this is allowed while the
// timesheet is pending review; only fully approved timesheets are closed.
func (s *WorkflowService) AddEntry(actor user.Actor, timesheetID uint, input timesheet.EntryInput) (*timesheet.TimesheetEntry, error) {
	entries, err := buildEntries([]timesheet.EntryInput{input})
	if err != nil {
		return nil, err
	}
	entry := entries[0]

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		ts, err := tx.Timesheet.GetTimesheetByID(timesheetID)
		if err != nil {
			return asNotFound(err)
		}
		if ts.Status == timesheet.StatusApproved {
			return fmt.Errorf("%w: cannot modify approved timesheet", ErrInvalidState)
		}
		entry.TimesheetID = ts.ID
		return tx.Timesheet.CreateEntry(&entry)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Reopen is the administrative escape hatch: force any non-draft timesheet
// back to draft so it can be corrected and resubmitted. No transition-table
// entry governs it.
func (s *WorkflowService) Reopen(actor user.Actor, timesheetID uint, comments string) (*timesheet.Timesheet, error) {
	if actor.Role != user.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can reopen timesheets", ErrForbidden)
	}

	var result *timesheet.Timesheet
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		ts, err := tx.Timesheet.GetTimesheetByID(timesheetID)
		if err != nil {
			return asNotFound(err)
		}
		if ts.Status == timesheet.StatusDraft {
			return fmt.Errorf("%w: timesheet is already a draft", ErrInvalidState)
		}

		if err := tx.Timesheet.UpdateStatusGuarded(ts.ID, ts.Status, ts.Version, map[string]interface{}{
			"status":       timesheet.StatusDraft,
			"submitted_at": nil,
			"updated_at":   time.Now().UTC(),
		}); err != nil {
			return asConflict(err)
		}

		approval := timesheet.Approval{
			TimesheetID: ts.ID,
			ApproverID:  actor.ID,
			Action:      timesheet.ActionReopen,
			Comments:    comments,
		}
		if err := tx.Approval.CreateApproval(&approval); err != nil {
			return err
		}

		ts.Status = timesheet.StatusDraft
		ts.SubmittedAt = nil
		result = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildEntries validates inputs before any store mutation.
func buildEntries(inputs []timesheet.EntryInput) ([]timesheet.TimesheetEntry, error) {
	entries := make([]timesheet.TimesheetEntry, 0, len(inputs))
	for i, in := range inputs {
		if in.UserID == 0 {
			return nil, fmt.Errorf("%w: entry %d is missing a worker reference", ErrValidation, i)
		}
		if in.CostCodeID == 0 {
			return nil, fmt.Errorf("%w: entry %d is missing a cost code reference", ErrValidation, i)
		}
		if in.Hours < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative hours", ErrValidation, i)
		}
		if in.OvertimeHours < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative overtime hours", ErrValidation, i)
		}

		entry := timesheet.TimesheetEntry{
			UserID:        in.UserID,
			CostCodeID:    in.CostCodeID,
			Hours:         in.Hours,
			OvertimeHours: in.OvertimeHours,
			Description:   in.Description,
		}
		if in.StartTime != nil {
			t, err := time.Parse(time.RFC3339, *in.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d has invalid start_time", ErrValidation, i)
			}
			entry.StartTime = &t
		}
		if in.EndTime != nil {
			t, err := time.Parse(time.RFC3339, *in.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d has invalid end_time", ErrValidation, i)
			}
			entry.EndTime = &t
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: timesheet", ErrNotFound)
	}
	return err
}

func asConflict(err error) error {
	if errors.Is(err, repository.ErrStaleTimesheet) {
		return ErrConcurrentModification
	}
	return err
}
