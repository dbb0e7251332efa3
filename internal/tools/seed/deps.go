package seed

import (
	"context"
	"time"
)

// Clock returns the current client-side time used for backdated fields.
type Clock func() time.Time

// seeder is one stage of a run.
type seeder interface {
	// Name is the plural noun used in progress lines, e.g. "polls".
	Name() string
	Seed(ctx context.Context) error
}
