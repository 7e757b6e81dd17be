package timesheet

import "github.com/crewtrack/crewtime/internal/domain/user"

// StatusTransitions is the approval policy: (current status, acting role) ->
// next status. It is the single place transition rules live; every approval
// path consults this table and nothing else.
//
// A project manager acting on a pending-superintendent timesheet lands
// directly on approved: PM authority supersedes the superintendent stage.
var StatusTransitions = map[TimesheetStatus]map[user.Role]TimesheetStatus{
	StatusPendingSuperintendent: {
		user.RoleSuperintendent: StatusPendingProjectManager,
		user.RoleProjectManager: StatusApproved,
		user.RoleAdmin:          StatusPendingProjectManager,
	},
	StatusPendingProjectManager: {
		user.RoleProjectManager: StatusPendingPayroll,
		user.RoleAdmin:          StatusPendingPayroll,
	},
	StatusPendingPayroll: {
		user.RolePayroll: StatusApproved,
		user.RoleAdmin:   StatusApproved,
	},
}

// NextStatus looks up the transition for the given status and role.
// The second return reports whether the status is awaiting approval at all;
// the third whether the role may act on it.
func NextStatus(status TimesheetStatus, role user.Role) (TimesheetStatus, bool, bool) {
	byRole, ok := StatusTransitions[status]
	if !ok {
		return "", false, false
	}
	next, ok := byRole[role]
	if !ok {
		return "", true, false
	}
	return next, true, true
}
