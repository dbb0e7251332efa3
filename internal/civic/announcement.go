package civic

import (
	"time"

	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
)

// Announcement is a post on the community board. Comments live in the
// CollectionComments sub-collection of the announcement document.
type Announcement struct {
	Title      string    `firestore:"title" yaml:"title"`
	Content    string    `firestore:"content" yaml:"content"`
	Category   string    `firestore:"category" yaml:"category"`
	AuthorID   string    `firestore:"authorId" yaml:"authorId"`
	AuthorName string    `firestore:"authorName" yaml:"authorName"`
	Views      int       `firestore:"views" yaml:"views"`
	CreatedAt  time.Time `firestore:"createdAt" yaml:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" yaml:"updatedAt"`
}

// Fields returns the persisted attribute map.
func (a Announcement) Fields() map[string]any {
	return map[string]any{
		"title":      a.Title,
		"content":    a.Content,
		"category":   a.Category,
		"authorId":   a.AuthorID,
		"authorName": a.AuthorName,
		"views":      a.Views,
		"createdAt":  a.CreatedAt,
		"updatedAt":  a.UpdatedAt,
	}
}

// Comment is a reply on an announcement.
//
// An anonymous comment has a nil UserID and UserName AnonymousUserName;
// build comments with NewAttributedComment or NewAnonymousComment.
type Comment struct {
	Text        string    `firestore:"text" yaml:"text"`
	IsAnonymous bool      `firestore:"isAnonymous" yaml:"isAnonymous"`
	UserID      *string   `firestore:"userId" yaml:"userId"`
	UserName    string    `firestore:"userName" yaml:"userName"`
	CreatedAt   time.Time `firestore:"createdAt" yaml:"createdAt"`
}

// NewAttributedComment returns a comment signed by userID.
func NewAttributedComment(text, userID, userName string, createdAt time.Time) Comment {
	return Comment{
		Text:      text,
		UserID:    &userID,
		UserName:  userName,
		CreatedAt: createdAt,
	}
}

// NewAnonymousComment returns a comment with no author.
func NewAnonymousComment(text string, createdAt time.Time) Comment {
	return Comment{
		Text:        text,
		IsAnonymous: true,
		UserName:    AnonymousUserName,
		CreatedAt:   createdAt,
	}
}

// Fields returns the persisted attribute map. userId is always present and
// is null for anonymous comments.
func (c Comment) Fields() map[string]any {
	var userID any
	if c.UserID != nil {
		userID = *c.UserID
	}
	return map[string]any{
		"text":        c.Text,
		"isAnonymous": c.IsAnonymous,
		"userId":      userID,
		"userName":    c.UserName,
		"createdAt":   c.CreatedAt,
	}
}

// Validate checks the anonymity invariant.
func (c Comment) Validate() error {
	if c.IsAnonymous {
		if c.UserID != nil {
			return apperrors.New(apperrors.CodeFixtureInvalid, "anonymous comment has a user id")
		}
		if c.UserName != AnonymousUserName {
			return apperrors.New(apperrors.CodeFixtureInvalid, "anonymous comment must use the anonymous user name")
		}
		return nil
	}
	if c.UserID == nil || *c.UserID == "" {
		return apperrors.New(apperrors.CodeFixtureInvalid, "attributed comment is missing a user id")
	}
	if c.UserName == "" || c.UserName == AnonymousUserName {
		return apperrors.New(apperrors.CodeFixtureInvalid, "attributed comment is missing a user name")
	}
	return nil
}
