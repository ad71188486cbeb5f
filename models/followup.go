package models

import "time"

// FollowUp is a scheduled task against a client. ClientID is not checked
// against existing clients; dangling references are allowed.
type FollowUp struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowUpUpdate carries a partial update; nil fields are left untouched.
type FollowUpUpdate struct {
	ClientID    *string
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
}
