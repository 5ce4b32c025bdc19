// Package logging provides structured logging for the onboarding wizard.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the wizard. Logging is silent by default so that
// nothing is written over the terminal UI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Step transitions, validation failures, storage slot reads and writes
//   - Info: Mode changes (loaded dashboard, reset)
//   - Warn: Recoverable issues (unreadable slot contents treated as empty)
//   - Error: Failed storage operations
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level: "debug",
//	    File:  "/tmp/onboard.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Without a level, ONBOARD_LOG_LEVEL is consulted; if that is unset too the
// logger is a no-op. Output goes to stderr unless a file is given.
//
// # Sessions
//
// Each initialized logger carries a random "session" field so the entries of
// one wizard run can be grouped in a shared log file.
package logging
