/*
Package log provides structured logging for Burrow using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level for production debugging.

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all Burrow packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information (transient RPC failures, task traces)
  - Info: General informational messages
  - Warn: Warning messages (potential issues, e.g. no available space)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithStoreID: Add store ID context
  - WithRegionID: Add region ID context
  - WithPeerID: Add peer ID context

# Usage

Initializing the Logger:

	import "github.com/cuemby/burrow/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

Structured Logging:

	log.Logger.Info().
		Uint64("region_id", 7).
		Uint64("new_region_id", 42).
		Msg("Trying to split region")

	log.Logger.Error().
		Err(err).
		Str("path", enginePath).
		Msg("Failed to stat filesystem")

Component Loggers:

	placementLog := log.WithComponent("placement")
	placementLog.Debug().Stringer("task", task).Msg("Executing task")

# Integration Points

This package integrates with:

  - pkg/placement: Logs task dispatch and director conversations
  - pkg/director: Logs split authorization and split registration
  - cmd/burrow: Initializes logging from CLI flags

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at application start
  - Accessible from all packages without passing

Context Logger Pattern:
  - Create child loggers with context fields
  - Automatically includes context in all logs
  - Avoids repetitive field specification

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - Structured logging: https://www.thoughtworks.com/radar/techniques/structured-logging
*/
package log
