// Package firestore provides a Cloud Firestore document store backed by the
// Firebase Admin SDK.
package firestore

import (
	"context"
	"fmt"
	"os"
	"strings"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/mazona200/mobileApp/internal/docstore"
	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
)

// DefaultCredentialsFile is the service-account key looked up relative to
// the working directory.
const DefaultCredentialsFile = "serviceAccountKey.json"

// Config holds Firestore session settings.
type Config struct {
	// CredentialsFile is a service-account JSON key.
	CredentialsFile string
	// ProjectID overrides the project named in the credential.
	ProjectID string
}

// Store is an authenticated Firestore session.
type Store struct {
	client *gcfirestore.Client
}

// Open authenticates with the service-account key and opens a client.
// Credential problems are reported as CodeCredentialInvalid before any
// write is attempted.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	path := strings.TrimSpace(cfg.CredentialsFile)
	if path == "" {
		return nil, apperrors.New(apperrors.CodeCredentialInvalid, "credentials file is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCredentialInvalid, fmt.Sprintf("read credentials %s", path), err)
	}

	var appCfg *firebase.Config
	if projectID := strings.TrimSpace(cfg.ProjectID); projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(path))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCredentialInvalid, "initialize firebase app", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCredentialInvalid, "open firestore client", err)
	}
	return &Store{client: client}, nil
}

// Collection implements docstore.Store.
func (s *Store) Collection(name string) docstore.Collection {
	return collection{ref: s.client.Collection(name), path: name}
}

// ServerTimestamp implements docstore.Store.
func (s *Store) ServerTimestamp() any {
	return gcfirestore.ServerTimestamp
}

// Close releases the client connection.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

type collection struct {
	ref  *gcfirestore.CollectionRef
	path string
}

func (c collection) Path() string { return c.path }

func (c collection) Add(ctx context.Context, fields map[string]any) (docstore.Document, error) {
	ref, _, err := c.ref.Add(ctx, fields)
	if err != nil {
		return nil, err
	}
	return document{ref: ref, path: docstore.JoinPath(c.path, ref.ID)}, nil
}

type document struct {
	ref  *gcfirestore.DocumentRef
	path string
}

func (d document) ID() string   { return d.ref.ID }
func (d document) Path() string { return d.path }

func (d document) Collection(name string) docstore.Collection {
	return collection{ref: d.ref.Collection(name), path: docstore.JoinPath(d.path, name)}
}
