package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottshare/ott-share-hub/models"
)

func TestSeedSnapshot(t *testing.T) {
	s := New(0)

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, AdminEmail, users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	assert.Len(t, s.Services(), 10)
	assert.Len(t, s.Plans(), 3)
	assert.Len(t, s.Posts(), 3)
	assert.Len(t, s.Comments(), 2)
}

func TestFindUserByEmailIsCaseSensitive(t *testing.T) {
	s := New(0)

	_, err := s.FindUserByEmail(AdminEmail)
	assert.NoError(t, err)

	_, err = s.FindUserByEmail("ADMIN@ottshare.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewPostIncrementsOnlyOnDetailRead(t *testing.T) {
	s := New(0)

	before, err := s.FindPost("post-001")
	require.NoError(t, err)

	viewed, _, err := s.ViewPost("post-001")
	require.NoError(t, err)
	assert.Equal(t, before.Views+1, viewed.Views)

	viewed, _, err = s.ViewPost("post-001")
	require.NoError(t, err)
	assert.Equal(t, before.Views+2, viewed.Views)

	// plain lookups leave the counter alone
	after, err := s.FindPost("post-001")
	require.NoError(t, err)
	assert.Equal(t, before.Views+2, after.Views)
}

func TestViewPostReturnsCommentsAscending(t *testing.T) {
	s := New(0)
	now := time.Now()
	s.InsertComment(models.Comment{ID: "c-new", PostID: "post-002", Content: "x", AuthorID: "admin-001", CreatedAt: now, UpdatedAt: now})

	_, comments, err := s.ViewPost("post-002")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment-001", comments[0].ID)
	assert.Equal(t, "c-new", comments[1].ID)
}

func TestDeletePostCascadesComments(t *testing.T) {
	s := New(0)

	require.Equal(t, 1, s.CountCommentsByPost("post-002"))
	require.NoError(t, s.DeletePost("post-002"))

	_, err := s.FindPost("post-002")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.CommentsByPost("post-002"))

	// the other post's comment survives
	assert.Equal(t, 1, s.CountCommentsByPost("post-003"))
}

func TestUpdateUserReplacesSubscription(t *testing.T) {
	s := New(0)

	first := &models.Subscription{PlanID: "basic", PlanName: "Basic", Price: 9900}
	_, err := s.UpdateUser("admin-001", func(u *models.User) { u.Subscription = first })
	require.NoError(t, err)

	second := &models.Subscription{PlanID: "premium", PlanName: "Premium", Price: 29900}
	updated, err := s.UpdateUser("admin-001", func(u *models.User) { u.Subscription = second })
	require.NoError(t, err)
	assert.Equal(t, "premium", updated.Subscription.PlanID, "a new purchase replaces the old one wholesale")
}

func TestDeleteUserNotFound(t *testing.T) {
	s := New(0)
	assert.ErrorIs(t, s.DeleteUser("missing"), ErrNotFound)
}

func TestActivityLogBound(t *testing.T) {
	s := New(2)

	s.LogActivity("u1", models.ActionLogin, nil)
	s.LogActivity("u1", models.ActionPostCreate, nil)
	s.LogActivity("u1", models.ActionPostDelete, nil)

	log := s.ActivityLog()
	require.Len(t, log, 2, "oldest entries are evicted past the cap")
	assert.Equal(t, models.ActionPostCreate, log[0].Action)
	assert.Equal(t, models.ActionPostDelete, log[1].Action)
}

func TestActivityLogUnboundedByDefault(t *testing.T) {
	s := New(0)
	for i := 0; i < 50; i++ {
		s.LogActivity("u1", models.ActionLogin, map[string]any{"n": i})
	}
	assert.Len(t, s.ActivityLog(), 50)
}
