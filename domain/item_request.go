package domain

import "time"

type ItemRequest struct {
	ID          int64     `db:"id" json:"id"`
	RequesterID int64     `db:"requester_id" json:"requesterId"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created"`
}
