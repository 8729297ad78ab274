package postgres

import (
	"shareit/app/booking"
	"shareit/app/item"
	"shareit/app/request"
	"shareit/app/user"
)

var (
	_ user.Repository    = (*PgRepository)(nil)
	_ item.Repository    = (*PgRepository)(nil)
	_ booking.Repository = (*PgRepository)(nil)
	_ request.Repository = (*PgRepository)(nil)
)
