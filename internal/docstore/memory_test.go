package docstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMemoryAddAssignsIdentity(t *testing.T) {
	store := NewMemory()
	doc, err := store.Collection("polls").Add(context.Background(), map[string]any{"title": "Festival"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if doc.ID() == "" {
		t.Fatal("expected generated id")
	}
	if doc.Path() != "polls/"+doc.ID() {
		t.Fatalf("path = %q", doc.Path())
	}
	if store.Count("polls") != 1 {
		t.Fatalf("count = %d, want 1", store.Count("polls"))
	}
}

func TestMemorySubCollectionScopedToParent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	parent, err := store.Collection("announcements").Add(ctx, map[string]any{"title": "Clinic"})
	if err != nil {
		t.Fatalf("add parent: %v", err)
	}
	comments := parent.Collection("comments")
	if _, err := comments.Add(ctx, map[string]any{"text": "hi"}); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if want := parent.Path() + "/comments"; comments.Path() != want {
		t.Fatalf("comments path = %q, want %q", comments.Path(), want)
	}
	if store.Count(comments.Path()) != 1 {
		t.Fatalf("comment count = %d, want 1", store.Count(comments.Path()))
	}
	if store.Count("announcements") != 1 {
		t.Fatalf("announcement count = %d, want 1", store.Count("announcements"))
	}
}

func TestMemoryResolvesServerTimestamp(t *testing.T) {
	now := time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemory()
	store.Now = func() time.Time { return now }

	_, err := store.Collection("emergency_contacts").Add(context.Background(), map[string]any{
		"createdAt": store.ServerTimestamp(),
		"name":      "City Hall",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, ok := store.Writes()[0].Fields["createdAt"].(time.Time)
	if !ok || !got.Equal(now) {
		t.Fatalf("createdAt = %v, want %v", got, now)
	}
}

func TestMemoryDefaultClockResolvesOneInstantPerWrite(t *testing.T) {
	store := NewMemory()
	coll := store.Collection("emergency_contacts")
	for i := 0; i < 50; i++ {
		if _, err := coll.Add(context.Background(), map[string]any{
			"createdAt": store.ServerTimestamp(),
			"updatedAt": store.ServerTimestamp(),
		}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	for i, w := range store.Writes() {
		created, ok := w.Fields["createdAt"].(time.Time)
		if !ok {
			t.Fatalf("write %d createdAt = %T, want time.Time", i, w.Fields["createdAt"])
		}
		updated, ok := w.Fields["updatedAt"].(time.Time)
		if !ok || !updated.Equal(created) {
			t.Fatalf("write %d updatedAt = %v, want %v", i, updated, created)
		}
	}
}

func TestMemoryFailWriteStopsWrite(t *testing.T) {
	store := NewMemory()
	store.FailWrite = func(seq int, _ string) error {
		if seq == 2 {
			return errors.New("quota exceeded")
		}
		return nil
	}
	coll := store.Collection("polls")
	ctx := context.Background()
	if _, err := coll.Add(ctx, map[string]any{}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := coll.Add(ctx, map[string]any{}); err == nil || !strings.Contains(err.Error(), "quota") {
		t.Fatalf("expected quota error, got %v", err)
	}
	if store.Count("polls") != 1 {
		t.Fatalf("count = %d, want 1", store.Count("polls"))
	}
}

func TestMemoryRejectsCancelledContextAndClosedStore(t *testing.T) {
	store := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Collection("polls").Add(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := store.Collection("polls").Add(context.Background(), nil); err == nil {
		t.Fatal("expected closed store error")
	}
	if !store.Closed() {
		t.Fatal("expected closed")
	}
}

func TestJoinPath(t *testing.T) {
	if got := JoinPath("announcements", "abc", "comments"); got != "announcements/abc/comments" {
		t.Fatalf("JoinPath = %q", got)
	}
}
