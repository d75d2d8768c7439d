// Package types provides core type definitions and interfaces for the
// assignment library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the root assign package and its internal
// implementations.
//
// Key types:
//   - Member: An individual carrying a preference stack
//   - Roster: The project to ordered-member-list assignment store
//   - Submission: One raw input row (name plus rank permutation)
//   - RosterSource: Input provider interface
//   - Rand: Injectable randomness interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
