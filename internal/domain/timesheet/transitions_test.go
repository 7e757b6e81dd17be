package timesheet

import (
	"testing"

	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestNextStatusTable(t *testing.T) {
	cases := []struct {
		status TimesheetStatus
		role   user.Role
		next   TimesheetStatus
	}{
		{StatusPendingSuperintendent, user.RoleSuperintendent, StatusPendingProjectManager},
		{StatusPendingSuperintendent, user.RoleProjectManager, StatusApproved},
		{StatusPendingSuperintendent, user.RoleAdmin, StatusPendingProjectManager},
		{StatusPendingProjectManager, user.RoleProjectManager, StatusPendingPayroll},
		{StatusPendingProjectManager, user.RoleAdmin, StatusPendingPayroll},
		{StatusPendingPayroll, user.RolePayroll, StatusApproved},
		{StatusPendingPayroll, user.RoleAdmin, StatusApproved},
	}

	for _, tc := range cases {
		next, awaiting, allowed := NextStatus(tc.status, tc.role)
		assert.True(t, awaiting, "%s/%s should be awaiting", tc.status, tc.role)
		assert.True(t, allowed, "%s/%s should be allowed", tc.status, tc.role)
		assert.Equal(t, tc.next, next, "%s/%s", tc.status, tc.role)
	}
}

func TestNextStatusNotAwaiting(t *testing.T) {
	for _, status := range []TimesheetStatus{StatusDraft, StatusApproved, StatusReopened} {
		_, awaiting, _ := NextStatus(status, user.RoleAdmin)
		assert.False(t, awaiting, "%s should not be awaiting approval", status)
	}
}

func TestNextStatusRoleDenied(t *testing.T) {
	cases := []struct {
		status TimesheetStatus
		role   user.Role
	}{
		{StatusPendingSuperintendent, user.RoleWorker},
		{StatusPendingSuperintendent, user.RoleCrewAdmin},
		{StatusPendingSuperintendent, user.RolePayroll},
		{StatusPendingProjectManager, user.RoleSuperintendent},
		{StatusPendingProjectManager, user.RolePayroll},
		{StatusPendingPayroll, user.RoleSuperintendent},
		{StatusPendingPayroll, user.RoleProjectManager},
	}

	for _, tc := range cases {
		_, awaiting, allowed := NextStatus(tc.status, tc.role)
		assert.True(t, awaiting, "%s is an approval stage", tc.status)
		assert.False(t, allowed, "%s/%s must be denied", tc.status, tc.role)
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []TimesheetStatus{
		StatusDraft, StatusPendingSuperintendent, StatusPendingProjectManager,
		StatusPendingPayroll, StatusApproved, StatusReopened,
	} {
		assert.True(t, status.Valid())
	}
	assert.False(t, TimesheetStatus("bogus").Valid())
}
