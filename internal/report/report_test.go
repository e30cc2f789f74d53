package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoCPUProbe/internal/cache"
	"github.com/CristiGvl/picoCPUProbe/internal/features"
	"github.com/CristiGvl/picoCPUProbe/internal/snapshot"
	"github.com/CristiGvl/picoCPUProbe/internal/topology"
)

func TestRenderNilSnapshot(t *testing.T) {
	var sb strings.Builder
	err := Render(&sb, nil)
	assert.ErrorIs(t, err, snapshot.ErrInvalidArgument)
	assert.Empty(t, sb.String())
}

func TestRenderContent(t *testing.T) {
	snap := &snapshot.Snapshot{
		BrandName:    "Example CPU @ 3.00GHz",
		LogicalCores: 2,
		PhysicalCores: []topology.PhysicalCore{
			{ID: 0, Kind: topology.KindUnknown, LogicalIndices: []int{0, 1}},
		},
		L1PerLogical: []cache.Info{{SizeKiB: 32}, {SizeKiB: 32}},
		L2PerLogical: []cache.L2Info{{SizeKiB: 256, SharedWith: 2}, {SizeKiB: 256, SharedWith: 2}},
		L3SizeKiB:    8192,
		FrequencyMHz: []int{3000, 3000},
		Features:     features.Set{SSE2: true, AVX: true},
	}

	var sb strings.Builder
	require.NoError(t, Render(&sb, snap))
	out := sb.String()

	assert.Contains(t, out, "Example CPU @ 3.00GHz")
	assert.Contains(t, out, "Physical Cores   : 1")
	assert.Contains(t, out, "Logical Cores    : 2")
	assert.Contains(t, out, "L3 Cache         : 8192 KiB")
	assert.Contains(t, out, "Core 0 (unknown): 2 logical siblings: 0, 1")
	assert.Contains(t, out, "256 KiB (shared with 2 cores)")
	assert.Contains(t, out, "SSE2")
	assert.Contains(t, out, "AVX")
	assert.NotContains(t, out, "AVX2")
}
