package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/models"
)

func user(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Role: models.RoleUser}
}

func admin(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Role: models.RoleAdmin}
}

func TestDecideUnauthenticated(t *testing.T) {
	for _, action := range []Action{ActionModifyOwned, ActionAdminOnly, ActionDeleteUser} {
		err := Decide(nil, action, Resource{AuthorID: "a"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
}

func TestCanModify(t *testing.T) {
	assert.NoError(t, CanModify(user("u1"), "u1"), "author may modify own resource")
	assert.ErrorIs(t, CanModify(user("u2"), "u1"), ErrForbidden, "non-owner is rejected")
	assert.NoError(t, CanModify(admin("a1"), "u1"), "admin may modify anything")
}

func TestRequireAdmin(t *testing.T) {
	assert.ErrorIs(t, RequireAdmin(user("u1")), ErrForbidden)
	assert.NoError(t, RequireAdmin(admin("a1")))
}

func TestCanDeleteUser(t *testing.T) {
	normal := models.User{ID: "u1", Role: models.RoleUser}
	adminUser := models.User{ID: "a1", Role: models.RoleAdmin}

	assert.ErrorIs(t, CanDeleteUser(user("u2"), normal), ErrForbidden, "only admins delete users")
	assert.NoError(t, CanDeleteUser(admin("a1"), normal))

	// admin accounts are undeletable regardless of actor
	assert.ErrorIs(t, CanDeleteUser(admin("a2"), adminUser), ErrForbidden)
	assert.ErrorIs(t, CanDeleteUser(admin("a1"), adminUser), ErrForbidden, "not even by themselves")
}
