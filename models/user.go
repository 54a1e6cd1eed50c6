package models

import "time"

// Roles and account statuses used across authorization checks.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a marketplace member. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Phone        string        `json:"phone"`
	Status       string        `json:"status"`
	Subscription *Subscription `json:"subscription"`
	CreatedAt    time.Time     `json:"createdAt"`
	LastLoginAt  *time.Time    `json:"lastLoginAt"`
}

// Subscription is the plan currently attached to a user. A new purchase
// replaces the previous value wholesale, no proration.
type Subscription struct {
	PlanID    string    `json:"planId"`
	PlanName  string    `json:"planName"`
	Price     int       `json:"price"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
