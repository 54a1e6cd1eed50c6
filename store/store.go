// Package store holds every entity collection in process memory. A single
// Store is constructed at boot from the hardcoded seed and handed to every
// controller; all state resets to the seed on restart.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ottshare/ott-share-hub/models"
)

// ErrNotFound is returned when a referenced entity id does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the in-memory record store. Collections are plain slices scanned
// linearly; size is bounded by process memory. The mutex keeps concurrent
// handlers race-free, last write wins with no conflict detection.
type Store struct {
	mu sync.RWMutex

	users    []*models.User
	services []*models.OttService
	plans    []*models.Plan
	posts    []*models.Post
	comments []*models.Comment
	activity []models.ActivityLogEntry

	// activityMax caps the activity log; 0 keeps it unbounded.
	activityMax int
}

// New creates a Store populated with the seed snapshot. activityMax bounds
// the activity log, dropping oldest entries past the cap; 0 means unbounded.
func New(activityMax int) *Store {
	s := &Store{activityMax: activityMax}
	s.seed()
	return s
}

// NewID returns a fresh identifier for inserted records.
func NewID() string {
	return uuid.NewString()
}

// ---- users ----

// Users returns a snapshot of all users in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

// FindUserByID returns the user with the given id.
func (s *Store) FindUserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindUserByEmail returns the user with the given email. Matching is
// case-sensitive, same as the stored value.
func (s *Store) FindUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// InsertUser appends a new user.
func (s *Store) InsertUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, &u)
}

// UpdateUser applies fn to the stored user under the lock and returns the
// updated copy.
func (s *Store) UpdateUser(id string, fn func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			fn(u)
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// DeleteUser removes the user with the given id.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- OTT services ----

// Services returns a snapshot of the OTT catalog in insertion order.
func (s *Store) Services() []models.OttService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.OttService, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, *svc)
	}
	return out
}

// FindService returns the catalog entry with the given id.
func (s *Store) FindService(id string) (models.OttService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return *svc, nil
		}
	}
	return models.OttService{}, ErrNotFound
}

// InsertService appends a new catalog entry.
func (s *Store) InsertService(svc models.OttService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, &svc)
}

// UpdateService applies fn to the stored entry and returns the updated copy.
func (s *Store) UpdateService(id string, fn func(*models.OttService)) (models.OttService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			fn(svc)
			return *svc, nil
		}
	}
	return models.OttService{}, ErrNotFound
}

// DeleteService removes the catalog entry with the given id.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- plans ----

// Plans returns the pricing plan catalog.
func (s *Store) Plans() []models.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, *p)
	}
	return out
}

// FindPlan returns the plan with the given id.
func (s *Store) FindPlan(id string) (models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.ID == id {
			return *p, nil
		}
	}
	return models.Plan{}, ErrNotFound
}

// ---- posts ----

// Posts returns a snapshot of all posts in insertion order.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out
}

// FindPost returns the post with the given id without touching its view count.
func (s *Store) FindPost(id string) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return *p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

// ViewPost increments the view counter and returns the post together with its
// comments in ascending creation order. This is the only path that mutates
// Views.
func (s *Store) ViewPost(id string) (models.Post, []models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Views++
			return *p, s.commentsByPostLocked(id), nil
		}
	}
	return models.Post{}, nil, ErrNotFound
}

// InsertPost appends a new post.
func (s *Store) InsertPost(p models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, &p)
}

// UpdatePost applies fn to the stored post and returns the updated copy.
func (s *Store) UpdatePost(id string, fn func(*models.Post)) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			fn(p)
			return *p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

// DeletePost removes the post and cascades to every comment referencing it,
// so no dangling postId survives.
func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			kept := s.comments[:0]
			for _, c := range s.comments {
				if c.PostID != id {
					kept = append(kept, c)
				}
			}
			s.comments = kept
			return nil
		}
	}
	return ErrNotFound
}

// ---- comments ----

// Comments returns a snapshot of all comments in insertion order.
func (s *Store) Comments() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, *c)
	}
	return out
}

// CommentsByPost returns the comments of a post in ascending creation order.
func (s *Store) CommentsByPost(postID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentsByPostLocked(postID)
}

func (s *Store) commentsByPostLocked(postID string) []models.Comment {
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	// Seed order already ascends by creation time; keep it stable for ties.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.Before(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// CountCommentsByPost returns how many comments reference the post.
func (s *Store) CountCommentsByPost(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

// FindComment returns the comment with the given id.
func (s *Store) FindComment(id string) (models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.comments {
		if c.ID == id {
			return *c, nil
		}
	}
	return models.Comment{}, ErrNotFound
}

// InsertComment appends a new comment.
func (s *Store) InsertComment(c models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, &c)
}

// UpdateComment applies fn to the stored comment and returns the updated copy.
func (s *Store) UpdateComment(id string, fn func(*models.Comment)) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.comments {
		if c.ID == id {
			fn(c)
			return *c, nil
		}
	}
	return models.Comment{}, ErrNotFound
}

// DeleteComment removes the comment with the given id.
func (s *Store) DeleteComment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- activity log ----

// LogActivity appends an audit record for a successful state-changing action.
// Best effort: entries past the configured cap evict the oldest ones.
func (s *Store) LogActivity(userID, action string, details map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, models.ActivityLogEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if s.activityMax > 0 && len(s.activity) > s.activityMax {
		trimmed := make([]models.ActivityLogEntry, s.activityMax)
		copy(trimmed, s.activity[len(s.activity)-s.activityMax:])
		s.activity = trimmed
	}
}

// ActivityLog returns a snapshot of the audit log.
func (s *Store) ActivityLog() []models.ActivityLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityLogEntry, len(s.activity))
	copy(out, s.activity)
	return out
}
