// Package topology reconstructs the mapping of logical CPU indices onto
// physical cores from the platform's raw relationship data.
package topology

import (
	"context"
	"math/bits"
)

// CoreKind classifies a physical core on heterogeneous systems. No
// backend classifies cores today; the field is a stable placeholder and
// always reads "unknown".
type CoreKind string

const (
	KindPerformance CoreKind = "performance"
	KindEfficiency  CoreKind = "efficiency"
	KindUnknown     CoreKind = "unknown"
)

// PhysicalCore is one physical core and the logical CPU indices that
// live on it. ID is a grouping key only: it is platform specific and not
// stable across reboots. LogicalIndices preserves discovery order.
type PhysicalCore struct {
	ID             int      `json:"id"`
	Kind           CoreKind `json:"kind"`
	LogicalIndices []int    `json:"logical_indices"`
}

// Source enumerates physical-core groupings for the current platform.
// Every logical index in [0, logicalCount) appears in exactly one
// returned core.
type Source interface {
	PhysicalCores(ctx context.Context, logicalCount int) ([]PhysicalCore, error)
}

// NewSource creates a topology source for the current platform.
func NewSource() Source {
	return newPlatformSource()
}

// MaskIndices expands a logical-processor affinity mask into its set bit
// positions in ascending order. Bits beyond position 63 cannot be
// represented; masks cover a single 64-CPU processor group.
func MaskIndices(mask uint64) []int {
	indices := make([]int, 0, bits.OnesCount64(mask))
	for b := 0; b < 64; b++ {
		if mask&(1<<uint(b)) != 0 {
			indices = append(indices, b)
		}
	}
	return indices
}

// CoreKey identifies a physical core by the platform's package ID and
// core-within-package ID.
type CoreKey struct {
	Package int
	Core    int
}

// GroupByKey groups logical CPUs 0..len(keys)-1 by their core key,
// emitting physical cores in first-seen order. The core ID packs the
// package into the high bits and the core into the low 16.
func GroupByKey(keys []CoreKey) []PhysicalCore {
	cores := make([]PhysicalCore, 0, len(keys))
	seen := make(map[CoreKey]int, len(keys))
	for cpu, key := range keys {
		idx, ok := seen[key]
		if !ok {
			idx = len(cores)
			seen[key] = idx
			cores = append(cores, PhysicalCore{
				ID:   key.Package<<16 | key.Core&0xFFFF,
				Kind: KindUnknown,
			})
		}
		cores[idx].LogicalIndices = append(cores[idx].LogicalIndices, cpu)
	}
	return cores
}
