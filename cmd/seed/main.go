// Command seed populates the community app's document database with demo
// emergency contacts, announcements with comments, and polls.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/mazona200/mobileApp/internal/cmd/seed"
	platformcmd "github.com/mazona200/mobileApp/internal/platform/cmd"
	"github.com/mazona200/mobileApp/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error seeding database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		return seedcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		stop()
		config.Exitf("Error seeding database: %v", err)
	}
}
