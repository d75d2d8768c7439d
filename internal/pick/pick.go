// Package pick implements unbiased without-replacement random visitation.
package pick

import "github.com/Brannonj96/RandomizeProjectMembers/types"

// Draw selects one element uniformly at random among the first k elements of
// items, swaps it into position k-1, and returns it.
//
// Looping k from len(items) down to 1 visits every element exactly once in a
// uniformly random order, with O(len(items)) total work and O(1) extra space:
//
//	for k := len(items); k > 0; k-- {
//	    item := pick.Draw(rnd, items, k)
//	    // ...
//	}
//
// The considered range shrinks by one per call; elements already drawn live
// in the items[k:] suffix and are never revisited.
//
// Parameters:
//   - rnd: Random source (one IntN call per draw)
//   - items: Slice being visited (reordered in place)
//   - k: Length of the not-yet-drawn prefix (must be >= 1)
//
// Returns:
//   - E: The drawn element
func Draw[S ~[]E, E any](rnd types.Rand, items S, k int) E {
	j := rnd.IntN(k)
	items[j], items[k-1] = items[k-1], items[j]

	return items[k-1]
}
