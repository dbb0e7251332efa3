package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mazona200/mobileApp/internal/docstore"
)

// Config holds runner settings.
type Config struct {
	// Out receives progress lines. Defaults to os.Stdout.
	Out io.Writer
	// ErrOut receives verbose per-document lines. Defaults to os.Stderr.
	ErrOut io.Writer
	// Verbose logs every written document path.
	Verbose bool
	// Now is the client clock for backdated timestamps. Defaults to time.Now.
	Now Clock
}

// Runner seeds contacts, announcements and polls against one store session.
type Runner struct {
	store   docstore.Store
	cfg     Config
	seeders []seeder
}

// New returns a runner writing the default dataset to store. The dataset is
// built from cfg.Now when Run starts.
func New(store docstore.Store, cfg Config) *Runner {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.ErrOut == nil {
		cfg.ErrOut = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Runner{store: store, cfg: cfg}
}

// Run executes every seeder in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context) error {
	if r == nil {
		return fmt.Errorf("runner is required")
	}
	seeders := r.seeders
	if seeders == nil {
		if r.store == nil {
			return fmt.Errorf("document store is required")
		}
		seeders = r.defaultSeeders(DefaultDataset(r.cfg.Now(), r.store.ServerTimestamp()))
	}

	ctx, span := tracer().Start(ctx, "seed.run")
	defer span.End()

	for _, s := range seeders {
		if err := r.runSeeder(ctx, s); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	fmt.Fprintln(r.cfg.Out, "Database seeded successfully!")
	return nil
}

func (r *Runner) runSeeder(ctx context.Context, s seeder) error {
	name := s.Name()
	ctx, span := tracer().Start(ctx, "seed."+strings.ReplaceAll(name, " ", "_"),
		trace.WithAttributes(attribute.String("seed.stage", name)))
	defer span.End()

	fmt.Fprintf(r.cfg.Out, "Seeding %s...\n", name)
	if err := s.Seed(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("seed %s: %w", name, err)
	}
	fmt.Fprintf(r.cfg.Out, "%s seeded successfully!\n", upperFirst(name))
	return nil
}

func (r *Runner) defaultSeeders(ds Dataset) []seeder {
	w := writer{logf: r.logf}
	return []seeder{
		ContactSeeder{store: r.store, contacts: ds.Contacts, w: w},
		AnnouncementSeeder{store: r.store, announcements: ds.Announcements, comments: ds.Comments, w: w},
		PollSeeder{store: r.store, polls: ds.Polls, w: w},
	}
}

func (r *Runner) logf(format string, args ...any) {
	if !r.cfg.Verbose || r.cfg.ErrOut == nil {
		return
	}
	_, _ = fmt.Fprintf(r.cfg.ErrOut, format+"\n", args...)
}

func upperFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
