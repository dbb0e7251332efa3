// Package seed implements the seed command: it opens one document store
// session and writes the community demo dataset into it.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mazona200/mobileApp/internal/docstore"
	"github.com/mazona200/mobileApp/internal/docstore/firestore"
	"github.com/mazona200/mobileApp/internal/docstore/sqlite"
	platformcmd "github.com/mazona200/mobileApp/internal/platform/cmd"
	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
	toolseed "github.com/mazona200/mobileApp/internal/tools/seed"
)

// Backend names.
const (
	BackendFirestore = "firestore"
	BackendSQLite    = "sqlite"
	BackendMemory    = "memory"
)

// Config holds seed command configuration.
type Config struct {
	CredentialsFile string `env:"CIVIC_SEED_CREDENTIALS" envDefault:"serviceAccountKey.json"`
	ProjectID       string `env:"CIVIC_SEED_PROJECT_ID"`
	Backend         string `env:"CIVIC_SEED_BACKEND" envDefault:"firestore"`
	SQLitePath      string `env:"CIVIC_SEED_SQLITE_PATH" envDefault:"seed.db"`
	Verbose         bool   `env:"CIVIC_SEED_VERBOSE"`
	List            bool
}

// ParseConfig reads env defaults, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := validateBackend(cfg.Backend); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "service account key file")
	fs.StringVar(&cfg.ProjectID, "project", cfg.ProjectID, "project id (default: from credentials)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "document store (firestore, sqlite, memory)")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "database file for the sqlite backend")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every written document")
	fs.BoolVar(&cfg.List, "list", false, "print the dataset as YAML without writing it")
}

func validateBackend(backend string) error {
	switch backend {
	case BackendFirestore, BackendSQLite, BackendMemory:
		return nil
	}
	return apperrors.New(apperrors.CodeBackendUnknown,
		fmt.Sprintf("unknown backend %q (valid backends: firestore, sqlite, memory)", backend))
}

// opener opens a store for cfg. Tests replace it.
type opener func(ctx context.Context, cfg Config) (docstore.Store, error)

func openStore(ctx context.Context, cfg Config) (docstore.Store, error) {
	switch cfg.Backend {
	case BackendFirestore:
		return firestore.Open(ctx, firestore.Config{
			CredentialsFile: cfg.CredentialsFile,
			ProjectID:       cfg.ProjectID,
		})
	case BackendSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath)
	case BackendMemory:
		return docstore.NewMemory(), nil
	}
	return nil, validateBackend(cfg.Backend)
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	return run(ctx, cfg, out, errOut, openStore, time.Now)
}

func run(ctx context.Context, cfg Config, out, errOut io.Writer, open opener, now toolseed.Clock) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if cfg.List {
		return toolseed.WriteDataset(out, toolseed.DefaultDataset(now(), docstore.ServerTimestamp))
	}

	store, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			fmt.Fprintf(errOut, "close store: %v\n", cerr)
		}
	}()

	// The memory backend keeps nothing after exit, so its writes are always logged.
	runner := toolseed.New(store, toolseed.Config{
		Out:     out,
		ErrOut:  errOut,
		Verbose: cfg.Verbose || cfg.Backend == BackendMemory,
		Now:     now,
	})
	return runner.Run(ctx)
}
