package firestore

import (
	"context"
	"path/filepath"
	"testing"

	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
)

func TestOpenRequiresCredentialsFile(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{})
	if apperrors.CodeOf(err) != apperrors.CodeCredentialInvalid {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestOpenMissingCredentialsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultCredentialsFile)
	_, err := Open(context.Background(), Config{CredentialsFile: path})
	if apperrors.CodeOf(err) != apperrors.CodeCredentialInvalid {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestCloseNilStore(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
