package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}
