package seed

import (
	"context"
	"fmt"

	"github.com/mazona200/mobileApp/internal/civic"
	"github.com/mazona200/mobileApp/internal/docstore"
)

// PollSeeder writes polls with their option tallies inline.
type PollSeeder struct {
	store docstore.Store
	polls []civic.Poll
	w     writer
}

// Name implements seeder.
func (s PollSeeder) Name() string { return "polls" }

// Seed adds each poll as a single document in CollectionPolls.
func (s PollSeeder) Seed(ctx context.Context) error {
	coll := s.store.Collection(civic.CollectionPolls)
	for _, poll := range s.polls {
		if _, err := s.w.add(ctx, coll, poll.Fields()); err != nil {
			return fmt.Errorf("poll %q: %w", poll.Title, err)
		}
	}
	return nil
}
