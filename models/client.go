package models

import "time"

// Client is a tracked relationship. ID and CreatedAt are assigned by the
// store; LastContactDate is maintained by the store when interactions are
// logged and is never writable through an update.
type Client struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	Company         *string    `json:"company"`
	Status          string     `json:"status"`
	Notes           *string    `json:"notes"`
	TotalPurchases  int        `json:"totalPurchases"`
	LastContactDate *time.Time `json:"lastContactDate"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ClientUpdate carries a partial update; nil fields are left untouched.
type ClientUpdate struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Company        *string `json:"company"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
	TotalPurchases *int    `json:"totalPurchases" binding:"omitempty,gte=0"`
}
