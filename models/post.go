package models

import "time"

// Board categories. Posts default to CategoryFree when none is given.
const (
	CategoryNotice = "notice"
	CategoryParty  = "party"
	CategoryReview = "review"
	CategoryQnA    = "qna"
	CategoryFree   = "free"
)

// PostCategories lists every valid board category.
var PostCategories = []string{CategoryNotice, CategoryParty, CategoryReview, CategoryQnA, CategoryFree}

// Post represents a community board post. AuthorName is a snapshot taken at
// creation time; renaming the user later does not rewrite existing posts.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ValidCategory reports whether c is one of the board categories.
func ValidCategory(c string) bool {
	for _, v := range PostCategories {
		if c == v {
			return true
		}
	}
	return false
}
