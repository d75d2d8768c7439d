// Package export provides roster exporters.
//
// The spreadsheet-facing layers that historically consumed the final
// assignment live outside this module; exporters here cover the
// infrastructure side, publishing a finished roster where downstream
// consumers can watch for it.
//
// The package includes:
//
//   - NATSPublisher: Publishes the roster as JSON into a JetStream KV bucket
package export
