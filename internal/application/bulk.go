package application

import (
	"context"

	"github.com/crewtrack/crewtime/internal/domain/timesheet"
	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/internal/repository"
)

// BulkService fans one operation out over many timesheets. One item's failure
// never aborts the rest; items already committed stay committed when the
// context is cancelled mid-batch.
type BulkService struct {
	Repos    *repository.Repos
	Workflow *WorkflowService
}

func NewBulkService(repos *repository.Repos, workflow *WorkflowService) *BulkService {
	return &BulkService{Repos: repos, Workflow: workflow}
}

type BulkFailure struct {
	TimesheetID uint   `json:"timesheet_id"`
	Reason      string `json:"reason"`
}

type BulkResult struct {
	Succeeded int           `json:"succeeded"`
	Failures  []BulkFailure `json:"failures"`
}

// SubmitAll attempts to submit every draft timesheet.
func (s *BulkService) SubmitAll(ctx context.Context, actor user.Actor) (BulkResult, error) {
	drafts, err := s.Repos.Timesheet.ListByStatus(timesheet.StatusDraft)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Failures: []BulkFailure{}}
	for _, ts := range drafts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := s.Workflow.Submit(actor, ts.ID); err != nil {
			result.Failures = append(result.Failures, BulkFailure{TimesheetID: ts.ID, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// BulkApprove attempts to approve each listed timesheet independently.
func (s *BulkService) BulkApprove(ctx context.Context, actor user.Actor, timesheetIDs []uint, comments string) (BulkResult, error) {
	result := BulkResult{Failures: []BulkFailure{}}
	for _, id := range timesheetIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := s.Workflow.Approve(actor, id, comments); err != nil {
			result.Failures = append(result.Failures, BulkFailure{TimesheetID: id, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
