package civic

import (
	"testing"
	"time"

	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
)

var testNow = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

func TestCommentFieldsAnonymousUserIDIsNull(t *testing.T) {
	fields := NewAnonymousComment("Thanks!", testNow).Fields()

	userID, ok := fields["userId"]
	if !ok {
		t.Fatal("expected userId key to be present")
	}
	if userID != nil {
		t.Fatalf("userId = %v, want nil", userID)
	}
	if fields["userName"] != AnonymousUserName {
		t.Fatalf("userName = %v, want %q", fields["userName"], AnonymousUserName)
	}
	if fields["isAnonymous"] != true {
		t.Fatalf("isAnonymous = %v, want true", fields["isAnonymous"])
	}
}

func TestCommentFieldsAttributed(t *testing.T) {
	fields := NewAttributedComment("Parking?", "citizen2", "Mary Johnson", testNow).Fields()
	if fields["userId"] != "citizen2" {
		t.Fatalf("userId = %v, want citizen2", fields["userId"])
	}
	if fields["isAnonymous"] != false {
		t.Fatalf("isAnonymous = %v, want false", fields["isAnonymous"])
	}
}

func TestCommentValidate(t *testing.T) {
	userID := "citizen1"
	tests := []struct {
		name    string
		comment Comment
		wantErr bool
	}{
		{name: "anonymous", comment: NewAnonymousComment("hi", testNow)},
		{name: "attributed", comment: NewAttributedComment("hi", "citizen1", "John Smith", testNow)},
		{name: "anonymous with user id", comment: Comment{IsAnonymous: true, UserID: &userID, UserName: AnonymousUserName}, wantErr: true},
		{name: "anonymous with name", comment: Comment{IsAnonymous: true, UserName: "John Smith"}, wantErr: true},
		{name: "attributed without id", comment: Comment{UserName: "John Smith"}, wantErr: true},
		{name: "attributed without name", comment: Comment{UserID: &userID}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				if apperrors.CodeOf(err) != apperrors.CodeFixtureInvalid {
					t.Fatalf("expected fixture error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestPollValidate(t *testing.T) {
	valid := Poll{
		Title:      "New Park Development",
		Options:    map[string]int{"Playground": 15, "Dog Park": 12},
		TotalVotes: 27,
		CreatedAt:  testNow,
		ExpiryDate: testNow.AddDate(0, 0, 30),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	mismatch := valid
	mismatch.TotalVotes = 28
	if err := mismatch.Validate(); err == nil {
		t.Fatal("expected total mismatch error")
	}

	expired := valid
	expired.ExpiryDate = testNow
	if err := expired.Validate(); err == nil {
		t.Fatal("expected expiry error")
	}

	negative := valid
	negative.Options = map[string]int{"Playground": -1}
	negative.TotalVotes = -1
	if err := negative.Validate(); err == nil {
		t.Fatal("expected negative votes error")
	}
}

func TestPollFieldsCopiesOptions(t *testing.T) {
	poll := Poll{Options: map[string]int{"Playground": 15}}
	fields := poll.Fields()

	options, ok := fields["options"].(map[string]any)
	if !ok {
		t.Fatalf("options type = %T", fields["options"])
	}
	options["Playground"] = 0
	if poll.Options["Playground"] != 15 {
		t.Fatal("expected fields options to be a copy")
	}
}

func TestContactFieldsKeys(t *testing.T) {
	fields := EmergencyContact{Name: "City Hall"}.Fields()
	for _, key := range []string{"name", "number", "category", "description", "createdAt", "updatedAt"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing key %q", key)
		}
	}
}
