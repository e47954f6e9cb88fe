// Package logging provides structured logging for the wifiqr CLI.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the tool. By default it is completely silent:
// the generated QR code is the program's only output, and png mode writes
// raw bytes to stdout that must not be interleaved with diagnostics. When a
// level is set via WIFIQR_LOG_LEVEL, all log output goes to stderr.
//
// # Log Levels
//
//   - Debug: pipeline details (payload length, symbol version, render format)
//   - Info: normal operations
//   - Warn: advisory findings (passphrase lint)
//   - Error: fatal issues
//
// # Security
//
// Credential values are never logged. Helpers such as LogPayloadBuilt log
// lengths and structural flags only.
//
// # Configuration
//
// Initialize logging at command startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
