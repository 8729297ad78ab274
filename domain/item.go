package domain

import "time"

type Item struct {
	ID          int64     `db:"id" json:"id"`
	OwnerID     int64     `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Available   bool      `db:"available" json:"available"`
	RequestID   *int64    `db:"request_id" json:"requestId"`
	CreatedAt   time.Time `db:"created_at" json:"created"`
}

// VisibleTo reports whether viewerID may see the item. Unavailable items are
// visible to their owner only.
func (i Item) VisibleTo(viewerID int64) bool {
	return i.Available || i.OwnerID == viewerID
}

// ItemFilter selects a window of the catalog. A nil OwnerID lists every owner's
// items.
type ItemFilter struct {
	OwnerID *int64
	Limit   int
	Offset  int
}
