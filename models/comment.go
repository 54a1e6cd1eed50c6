package models

import "time"

// Comment represents a reply to a post. AuthorName is a creation-time
// snapshot, same as on Post.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
