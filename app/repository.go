package app

import (
	"context"
)

// Transactor runs fn inside one storage transaction carried by the context passed
// to fn. Returning an error rolls the transaction back and is passed through
// unchanged.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}
