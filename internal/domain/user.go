package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserOrderStats is the per-user order aggregate shown on the admin
// customers page.
type UserOrderStats struct {
	User
	OrderCount      int        `json:"orders"`
	TotalSpentCents int64      `json:"totalSpentCents"`
	LastOrderDate   *time.Time `json:"lastOrderDate,omitempty"`
}
