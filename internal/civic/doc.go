// Package civic defines the persisted document shapes shared by the mobile
// app and the seed tool: emergency contacts, announcements with comment
// threads, and polls with per-option vote tallies.
//
// Field names in Fields and in the firestore tags are the wire contract read
// by the app and must not be renamed.
package civic

// Collection names.
const (
	CollectionEmergencyContacts = "emergency_contacts"
	CollectionAnnouncements     = "announcements"
	CollectionComments          = "comments"
	CollectionPolls             = "polls"
)

// Contact categories used by the app's directory filters.
const (
	CategoryEmergency  = "Emergency"
	CategoryMedical    = "Medical"
	CategoryGovernment = "Government"
)

// AnonymousUserName is shown in place of the author on anonymous comments.
const AnonymousUserName = "Anonymous"
