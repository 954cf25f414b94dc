// Package authorization holds the access rules shared by the ticket,
// message, and device services: administrators may act on any record,
// everyone else only on records they own.
package authorization

import (
	"sync"

	"fixdesk/internal/shared/constants"
)

var (
	adminGroup   = constants.AdminGroup
	adminGroupMu sync.RWMutex
)

// SetAdminGroup overrides the group name that grants administrator rights.
// Called once at startup with the configured value; an empty name keeps the
// default.
func SetAdminGroup(group string) {
	if group == "" {
		return
	}
	adminGroupMu.Lock()
	adminGroup = group
	adminGroupMu.Unlock()
}

// AdminGroup returns the group name that grants administrator rights.
func AdminGroup() string {
	adminGroupMu.RLock()
	defer adminGroupMu.RUnlock()
	return adminGroup
}

// Identity is the authenticated caller, extracted from verified token claims
// and passed explicitly into every use case. It is never stored in shared
// request-scoped state.
type Identity struct {
	Username string
	Groups   []string
}

// IsAdmin reports whether the identity's group memberships include the
// administrator group.
func (i Identity) IsAdmin() bool {
	group := AdminGroup()
	for _, g := range i.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// CanAccessOwned reports whether the identity may read or mutate a record
// anchored to the given owner username. Callers must confirm the record
// exists first, so a denial always means "exists but not yours".
func CanAccessOwned(identity Identity, owner string) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.Username == owner
}
