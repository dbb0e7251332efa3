package seed

import (
	"context"
	"fmt"

	"github.com/mazona200/mobileApp/internal/civic"
	"github.com/mazona200/mobileApp/internal/docstore"
)

// AnnouncementSeeder writes announcements and, right after each parent, the
// comments listed for its title.
type AnnouncementSeeder struct {
	store         docstore.Store
	announcements []civic.Announcement
	comments      map[string][]civic.Comment
	w             writer
}

// Name implements seeder.
func (s AnnouncementSeeder) Name() string { return "announcements" }

// Seed adds each announcement, then its comments into the announcement's
// CollectionComments sub-collection. Comment timestamps are written as given.
func (s AnnouncementSeeder) Seed(ctx context.Context) error {
	coll := s.store.Collection(civic.CollectionAnnouncements)
	for _, announcement := range s.announcements {
		doc, err := s.w.add(ctx, coll, announcement.Fields())
		if err != nil {
			return fmt.Errorf("announcement %q: %w", announcement.Title, err)
		}
		comments, ok := s.comments[announcement.Title]
		if !ok {
			continue
		}
		thread := doc.Collection(civic.CollectionComments)
		for i, comment := range comments {
			if _, err := s.w.add(ctx, thread, comment.Fields()); err != nil {
				return fmt.Errorf("announcement %q comment %d: %w", announcement.Title, i+1, err)
			}
		}
	}
	return nil
}
