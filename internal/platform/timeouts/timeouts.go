// Package timeouts defines shared timeout constants for commands.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to flush
// before exiting.
const TelemetryShutdown = 5 * time.Second

// SQLiteBusy is how long a SQLite connection waits on a locked database.
const SQLiteBusy = 5 * time.Second
