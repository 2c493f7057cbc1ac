// Package diag provides small build-time sizing and diagnostics helpers
package diag

import "github.com/pbnjay/memory"

// ArenaHint is a preallocation suggestion for the state arena, derived from
// the caller's estimated keyword count and the system's total memory
type ArenaHint struct {
	// Capacity is the suggested initial capacity for the state slice
	Capacity int
	// TotalMemoryMB is the system's total memory, for logging alongside the hint
	TotalMemoryMB uint64
}

// roughly how many bytes an average trie state costs once its edges map
// and output slice are accounted for; used only to keep preallocation from
// requesting an unreasonable capacity on memory-constrained hosts
const bytesPerState = 256

// totalMemory is a seam over memory.TotalMemory so tests can pin a
// deterministic reading instead of depending on the host's actual RAM
var totalMemory = memory.TotalMemory

// EstimateArenaCapacity turns an estimated keyword count (0 if unknown) into
// a preallocation hint, capping optimistic growth against total system memory
func EstimateArenaCapacity(estimatedKeywordCount, estimatedKeywordLen int) ArenaHint {
	totalMB := totalMemory() / (1024 * 1024)

	if estimatedKeywordCount <= 0 {
		return ArenaHint{Capacity: 0, TotalMemoryMB: totalMB}
	}

	want := estimatedKeywordCount * max(estimatedKeywordLen, 1)
	if totalMB > 0 {
		ceiling := int(totalMB*1024*1024/bytesPerState) / 4 // never claim more than ~25% of RAM
		if want > ceiling {
			want = ceiling
		}
	}
	return ArenaHint{Capacity: want, TotalMemoryMB: totalMB}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
