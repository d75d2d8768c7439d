// Package source provides built-in roster source implementations.
//
// Roster sources supply the project list and member submissions for a run.
// The package includes:
//
//   - Static: Fixed lists, settable programmatically
//   - File: YAML roster files
//   - ReadCSV: Spreadsheet exports (header row of projects, one row per member)
//
// Custom sources can be implemented by satisfying the types.RosterSource
// interface.
package source
