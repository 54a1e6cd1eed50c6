package models

import "time"

// Activity log action tags, one per state-changing operation.
const (
	ActionRegister      = "REGISTER"
	ActionLogin         = "LOGIN"
	ActionProfileUpdate = "PROFILE_UPDATE"
	ActionSubscription  = "SUBSCRIPTION"
	ActionPostCreate    = "POST_CREATE"
	ActionPostUpdate    = "POST_UPDATE"
	ActionPostDelete    = "POST_DELETE"
	ActionCommentCreate = "COMMENT_CREATE"
	ActionCommentUpdate = "COMMENT_UPDATE"
	ActionCommentDelete = "COMMENT_DELETE"
	ActionUserUpdate    = "USER_UPDATE"
	ActionUserDelete    = "USER_DELETE"
	ActionOttCreate     = "OTT_CREATE"
	ActionOttUpdate     = "OTT_UPDATE"
	ActionOttDelete     = "OTT_DELETE"
)

// ActivityLogEntry is an append-only audit record of a state-changing action.
type ActivityLogEntry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}
