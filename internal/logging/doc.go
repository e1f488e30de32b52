// Package logging assembles the structured slog loggers used by the badwords
// CLI.
//
// It owns the console and JSON handlers and the level/output plumbing. Logs go
// to stderr by default so stdout stays reserved for the messages and prompts a
// user interacts with. The package also provides a no-op logger for tests.
package logging
