// Package services defines shared utilities consumed by the conversion
// pipeline and its integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and source paths for logging
//     and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent severities (run-fatal vs per-file).
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across components.
package services
