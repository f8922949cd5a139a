package domain

import "time"

// Item is a catalog entry owned by a user.
type Item struct {
	ID          int64
	Title       string
	Description string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
