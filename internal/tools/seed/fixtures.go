package seed

import (
	"time"

	"github.com/mazona200/mobileApp/internal/civic"
)

// CommentedAnnouncementTitle is the announcement that receives the seeded
// comment thread.
const CommentedAnnouncementTitle = "COVID-19 Vaccine Clinic"

const seedAuthorID = "admin"

// Dataset is the fixture data written by one run, in write order.
type Dataset struct {
	Contacts      []civic.EmergencyContact `yaml:"emergency_contacts"`
	Announcements []civic.Announcement     `yaml:"announcements"`
	// Comments maps an announcement title to the comments written under it.
	Comments map[string][]civic.Comment `yaml:"comments"`
	Polls    []civic.Poll               `yaml:"polls"`
}

// daysAgo returns now shifted back by days calendar days. A negative value
// moves into the future.
func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// DefaultDataset builds the community demo data relative to now. Contacts
// carry serverTimestamp for both timestamps.
func DefaultDataset(now time.Time, serverTimestamp any) Dataset {
	return Dataset{
		Contacts:      defaultContacts(serverTimestamp),
		Announcements: defaultAnnouncements(now),
		Comments: map[string][]civic.Comment{
			CommentedAnnouncementTitle: clinicComments(now),
		},
		Polls: defaultPolls(now),
	}
}

func defaultContacts(ts any) []civic.EmergencyContact {
	contact := func(name, number, category, description string) civic.EmergencyContact {
		return civic.EmergencyContact{
			Name:        name,
			Number:      number,
			Category:    category,
			Description: description,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}
	return []civic.EmergencyContact{
		contact("Police Department", "911", civic.CategoryEmergency, "For emergencies requiring police assistance"),
		contact("Fire Department", "911", civic.CategoryEmergency, "For fire emergencies"),
		contact("Ambulance Services", "911", civic.CategoryMedical, "For medical emergencies"),
		contact("Poison Control Center", "1-800-222-1222", civic.CategoryMedical, "For poison-related emergencies"),
		contact("City Hall", "555-123-4567", civic.CategoryGovernment, "For general city inquiries"),
	}
}

func defaultAnnouncements(now time.Time) []civic.Announcement {
	announcement := func(title, content, category, authorName string, views, age int) civic.Announcement {
		posted := daysAgo(now, age)
		return civic.Announcement{
			Title:      title,
			Content:    content,
			Category:   category,
			AuthorID:   seedAuthorID,
			AuthorName: authorName,
			Views:      views,
			CreatedAt:  posted,
			UpdatedAt:  posted,
		}
	}
	return []civic.Announcement{
		announcement(
			CommentedAnnouncementTitle,
			"A COVID-19 vaccine clinic will be held at the Community Center on Saturday from 9 AM to 5 PM. No appointment necessary. Please bring ID and insurance card if available.",
			"Health", "Public Health Department", 245, 5,
		),
		announcement(
			"Road Construction Notice",
			"Main Street will be closed between Oak Avenue and Pine Street from Monday through Friday next week for road repairs. Please use alternate routes during this time.",
			"Infrastructure", "Department of Transportation", 189, 3,
		),
		announcement(
			"Summer Recreation Programs",
			"Registration for summer recreation programs is now open. Programs include swimming lessons, sports camps, and arts classes for all ages. Register online or at the Community Center.",
			"Education", "Parks and Recreation Department", 156, 2,
		),
		announcement(
			"Neighborhood Watch Meeting",
			"A neighborhood watch meeting will be held at the Community Center on Thursday at 7 PM. Local police officers will be present to discuss recent community safety concerns.",
			"Safety", "Police Department", 112, 1,
		),
	}
}

func clinicComments(now time.Time) []civic.Comment {
	return []civic.Comment{
		civic.NewAttributedComment("Will proof of residency be required?", "citizen1", "John Smith", daysAgo(now, 4)),
		civic.NewAttributedComment("Is there parking available at the Community Center?", "citizen2", "Mary Johnson", daysAgo(now, 3)),
		civic.NewAnonymousComment("Thank you for organizing this clinic!", daysAgo(now, 2)),
	}
}

func defaultPolls(now time.Time) []civic.Poll {
	return []civic.Poll{
		{
			Title:       "New Park Development",
			Description: "Which amenities would you like to see in the new city park?",
			Options: map[string]int{
				"Playground":       15,
				"Basketball Court": 8,
				"Walking Trails":   22,
				"Dog Park":         12,
			},
			CreatedBy:   seedAuthorID,
			CreatorName: "Parks Department",
			IsAnonymous: true,
			CreatedAt:   daysAgo(now, 7),
			ExpiryDate:  daysAgo(now, -30),
			TotalVotes:  57,
			IsActive:    true,
		},
		{
			Title:       "City Festival Theme",
			Description: "What theme would you prefer for this year's city festival?",
			Options: map[string]int{
				"Cultural Heritage":       18,
				"Science & Technology":    12,
				"Environmental Awareness": 9,
				"Arts & Music":            25,
			},
			CreatedBy:   seedAuthorID,
			CreatorName: "Events Committee",
			IsAnonymous: false,
			CreatedAt:   daysAgo(now, 4),
			ExpiryDate:  daysAgo(now, -15),
			TotalVotes:  64,
			IsActive:    true,
		},
	}
}

// Validate checks the comment and poll invariants of every record.
func (d Dataset) Validate() error {
	for _, comments := range d.Comments {
		for _, comment := range comments {
			if err := comment.Validate(); err != nil {
				return err
			}
		}
	}
	for _, poll := range d.Polls {
		if err := poll.Validate(); err != nil {
			return err
		}
	}
	return nil
}
