package seed

import (
	"context"
	"fmt"

	"github.com/mazona200/mobileApp/internal/civic"
	"github.com/mazona200/mobileApp/internal/docstore"
)

// ContactSeeder writes the emergency directory.
type ContactSeeder struct {
	store    docstore.Store
	contacts []civic.EmergencyContact
	w        writer
}

// Name implements seeder.
func (s ContactSeeder) Name() string { return "emergency contacts" }

// Seed adds each contact to CollectionEmergencyContacts in order.
func (s ContactSeeder) Seed(ctx context.Context) error {
	coll := s.store.Collection(civic.CollectionEmergencyContacts)
	for _, contact := range s.contacts {
		if _, err := s.w.add(ctx, coll, contact.Fields()); err != nil {
			return fmt.Errorf("contact %q: %w", contact.Name, err)
		}
	}
	return nil
}
