package memory

import (
	"shareit/app/booking"
	"shareit/app/item"
	"shareit/app/request"
	"shareit/app/user"
)

var (
	_ user.Repository    = (*Store)(nil)
	_ item.Repository    = (*Store)(nil)
	_ booking.Repository = (*Store)(nil)
	_ request.Repository = (*Store)(nil)
)
