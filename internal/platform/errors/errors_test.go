package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromStoreClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "unavailable", err: status.Error(codes.Unavailable, "network"), want: CodeStoreUnavailable},
		{name: "permission", err: status.Error(codes.PermissionDenied, "rules"), want: CodeStorePermissionDenied},
		{name: "quota", err: status.Error(codes.ResourceExhausted, "quota"), want: CodeStoreQuotaExceeded},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "token"), want: CodeCredentialInvalid},
		{name: "internal", err: status.Error(codes.Internal, "boom"), want: CodeStoreWriteFailed},
		{name: "plain", err: stderrors.New("disk full"), want: CodeStoreWriteFailed},
		{name: "canceled", err: context.Canceled, want: CodeStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStore("add document", tt.err)
			if CodeOf(got) != tt.want {
				t.Fatalf("code = %s, want %s", CodeOf(got), tt.want)
			}
			if !stderrors.Is(got, tt.err) {
				t.Fatalf("expected %v to wrap %v", got, tt.err)
			}
		})
	}
}

func TestFromStoreKeepsExistingCode(t *testing.T) {
	original := New(CodeFixtureInvalid, "bad poll")
	got := FromStore("add document", fmt.Errorf("seed polls: %w", original))
	if CodeOf(got) != CodeFixtureInvalid {
		t.Fatalf("code = %s, want %s", CodeOf(got), CodeFixtureInvalid)
	}
}

func TestFromStoreNil(t *testing.T) {
	if err := FromStore("add document", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("contacts: %w", Wrap(CodeStoreWriteFailed, "add document", stderrors.New("boom")))
	if !stderrors.Is(err, New(CodeStoreWriteFailed, "")) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, New(CodeStoreUnavailable, "")) {
		t.Fatal("unexpected code match")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(CodeStoreWriteFailed, "add document", stderrors.New("boom"))
	if got := err.Error(); got != "add document: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if got := New(CodeBackendUnknown, "unknown backend").Error(); got != "unknown backend" {
		t.Fatalf("Error() = %q", got)
	}
}
