// Package logging holds the structured logger shared by the CLI and the
// account daemon. The CLI logs through tint to stderr, the daemon writes
// JSON to stdout.
package logging

import "context"

// Logger is a context-aware, structured logger. Arguments after msg are
// key/value pairs:
//
//	log.Info(ctx, "user signed in", "user_id", id)
//
// Passwords and hashes are never logged.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
