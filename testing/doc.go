// Package testing provides test utilities for the assignment library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes to the testing.T log
//   - NewScriptedRand: Deterministic Rand replaying a fixed draw sequence
//   - NewSeededRand: Convenience seeded PCG source
//   - StartEmbeddedNATS / CreateJetStreamKV: In-process NATS for exporter tests
//
// Example usage:
//
//	import (
//	    "testing"
//	    assigntest "github.com/Brannonj96/RandomizeProjectMembers/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    rnd := assigntest.NewSeededRand(42)
//	    // ...
//	}
package testing
