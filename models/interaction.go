package models

import "time"

// Interaction is a logged touchpoint with a client. Creating one stamps the
// referenced client's lastContactDate. Interactions are never updated, only
// created and deleted.
type Interaction struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Type      string    `json:"type"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
