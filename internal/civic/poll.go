package civic

import (
	"fmt"
	"time"

	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
)

// Poll is a community poll with vote counts aggregated per option label.
//
// IsActive is stored as given. Nothing here derives it from ExpiryDate.
type Poll struct {
	Title       string         `firestore:"title" yaml:"title"`
	Description string         `firestore:"description" yaml:"description"`
	Options     map[string]int `firestore:"options" yaml:"options"`
	CreatedBy   string         `firestore:"createdBy" yaml:"createdBy"`
	CreatorName string         `firestore:"creatorName" yaml:"creatorName"`
	IsAnonymous bool           `firestore:"isAnonymous" yaml:"isAnonymous"`
	CreatedAt   time.Time      `firestore:"createdAt" yaml:"createdAt"`
	ExpiryDate  time.Time      `firestore:"expiryDate" yaml:"expiryDate"`
	TotalVotes  int            `firestore:"totalVotes" yaml:"totalVotes"`
	IsActive    bool           `firestore:"isActive" yaml:"isActive"`
}

// Fields returns the persisted attribute map. Options is copied so the
// caller's map is never shared with a store.
func (p Poll) Fields() map[string]any {
	options := make(map[string]any, len(p.Options))
	for label, votes := range p.Options {
		options[label] = votes
	}
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"options":     options,
		"createdBy":   p.CreatedBy,
		"creatorName": p.CreatorName,
		"isAnonymous": p.IsAnonymous,
		"createdAt":   p.CreatedAt,
		"expiryDate":  p.ExpiryDate,
		"totalVotes":  p.TotalVotes,
		"isActive":    p.IsActive,
	}
}

// SumVotes returns the sum of all option counts.
func (p Poll) SumVotes() int {
	total := 0
	for _, votes := range p.Options {
		total += votes
	}
	return total
}

// Validate checks vote counts and dates.
func (p Poll) Validate() error {
	for label, votes := range p.Options {
		if votes < 0 {
			return apperrors.New(apperrors.CodeFixtureInvalid, fmt.Sprintf("poll %q option %q has negative votes", p.Title, label))
		}
	}
	if sum := p.SumVotes(); sum != p.TotalVotes {
		return apperrors.New(apperrors.CodeFixtureInvalid, fmt.Sprintf("poll %q total votes %d does not match option sum %d", p.Title, p.TotalVotes, sum))
	}
	if !p.ExpiryDate.After(p.CreatedAt) {
		return apperrors.New(apperrors.CodeFixtureInvalid, fmt.Sprintf("poll %q expires before it is created", p.Title))
	}
	return nil
}
