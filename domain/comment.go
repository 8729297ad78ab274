package domain

import "time"

const MaxCommentLength = 300

type Comment struct {
	ID         int64     `db:"id" json:"id"`
	ItemID     int64     `db:"item_id" json:"itemId"`
	AuthorID   int64     `db:"author_id" json:"authorId"`
	AuthorName string    `db:"author_name" json:"authorName"`
	Text       string    `db:"text" json:"text"`
	CreatedAt  time.Time `db:"created_at" json:"created"`
}
