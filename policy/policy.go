// Package policy evaluates every permission rule in one place instead of
// re-checking roles ad hoc at each mutation site.
package policy

import (
	"errors"

	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/models"
)

// Deny reasons, mapped to 401/403 at the request boundary.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
)

// Action is the kind of operation being authorized.
type Action int

const (
	// ActionModifyOwned covers edit and delete of an authored resource
	// (post or comment): allowed for the author or any admin.
	ActionModifyOwned Action = iota
	// ActionAdminOnly covers user management, catalog management and the
	// admin dashboards.
	ActionAdminOnly
	// ActionDeleteUser is user removal; accounts with the admin role can
	// never be deleted, not even by another admin.
	ActionDeleteUser
)

// Resource carries the authorial metadata a rule may need.
type Resource struct {
	AuthorID   string
	TargetRole string
}

// Decide evaluates the rules in priority order and returns nil to allow.
// A nil identity means the request carried no valid assertion. Reads that
// need no identity simply never call Decide.
func Decide(id *auth.Identity, action Action, res Resource) error {
	if id == nil {
		return ErrUnauthenticated
	}
	switch action {
	case ActionAdminOnly:
		if id.Role != models.RoleAdmin {
			return ErrForbidden
		}
	case ActionModifyOwned:
		if id.UserID != res.AuthorID && id.Role != models.RoleAdmin {
			return ErrForbidden
		}
	case ActionDeleteUser:
		if id.Role != models.RoleAdmin {
			return ErrForbidden
		}
		if res.TargetRole == models.RoleAdmin {
			return ErrForbidden
		}
	}
	return nil
}

// CanModify authorizes edit/delete of a resource owned by authorID.
func CanModify(id *auth.Identity, authorID string) error {
	return Decide(id, ActionModifyOwned, Resource{AuthorID: authorID})
}

// RequireAdmin authorizes admin-scoped actions.
func RequireAdmin(id *auth.Identity) error {
	return Decide(id, ActionAdminOnly, Resource{})
}

// CanDeleteUser authorizes removal of the target user.
func CanDeleteUser(id *auth.Identity, target models.User) error {
	return Decide(id, ActionDeleteUser, Resource{TargetRole: target.Role})
}
