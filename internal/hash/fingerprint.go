// Package hash derives deterministic seeds from roster input.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// Fingerprint returns a stable 64-bit digest of the roster input.
//
// The digest covers project names, member names, and every rank. Strings and
// lists are length-prefixed so distinct inputs cannot collide by boundary
// shifting. It is used to seed the random source when reproducible-by-input
// runs are
// requested: identical input always produces the identical roster, and any
// edit to the input changes the outcome.
//
// Parameters:
//   - projects: Ordered project names
//   - subs: Member submissions in input order
//
// Returns:
//   - uint64: Input digest, suitable as a PCG seed
func Fingerprint(projects []string, subs []types.Submission) uint64 {
	h := xxh3.New()
	var buf [8]byte

	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = h.Write(buf[:])
		_, _ = h.WriteString(s)
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(projects)))
	_, _ = h.Write(buf[:])
	for _, p := range projects {
		writeString(p)
	}

	for _, sub := range subs {
		writeString(sub.Name)
		binary.LittleEndian.PutUint64(buf[:], uint64(len(sub.Ranks)))
		_, _ = h.Write(buf[:])
		for _, r := range sub.Ranks {
			binary.LittleEndian.PutUint64(buf[:], uint64(int64(r)))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}
