package snapshot

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoCPUProbe/internal/cache"
	"github.com/CristiGvl/picoCPUProbe/internal/frequency"
	"github.com/CristiGvl/picoCPUProbe/internal/topology"
)

type fakeTopology struct {
	cores []topology.PhysicalCore
	err   error
}

func (f *fakeTopology) PhysicalCores(ctx context.Context, logicalCount int) ([]topology.PhysicalCore, error) {
	return f.cores, f.err
}

type fakeCache struct {
	instances []cache.Instance
	err       error
}

func (f *fakeCache) Instances(ctx context.Context, logicalCount int) ([]cache.Instance, error) {
	return f.instances, f.err
}

type fakeFrequency struct {
	freqs []int
}

func (f *fakeFrequency) PerLogical(ctx context.Context, logicalCount int) []int {
	if f.freqs != nil {
		return f.freqs
	}
	return make([]int, logicalCount)
}

func fixedCount(n int) func(ctx context.Context) (int, error) {
	return func(ctx context.Context) (int, error) { return n, nil }
}

var _ topology.Source = (*fakeTopology)(nil)
var _ cache.Source = (*fakeCache)(nil)
var _ frequency.Reader = (*fakeFrequency)(nil)

func TestCaptureSymmetricSystem(t *testing.T) {
	// 4 logical / 2 physical, each pair sharing a 256 KiB L2, one
	// system-wide 8192 KiB L3.
	p := &Prober{
		topo: &fakeTopology{cores: []topology.PhysicalCore{
			{ID: 0, Kind: topology.KindUnknown, LogicalIndices: []int{0, 1}},
			{ID: 1, Kind: topology.KindUnknown, LogicalIndices: []int{2, 3}},
		}},
		cache: &fakeCache{instances: []cache.Instance{
			{Level: 2, SizeKiB: 256, SharedCPUs: []int{0, 1}},
			{Level: 2, SizeKiB: 256, SharedCPUs: []int{2, 3}},
			{Level: 3, SizeKiB: 8192, SharedCPUs: []int{0, 1, 2, 3}},
		}},
		freq:  &fakeFrequency{freqs: []int{2400, 2400, 2400, 2400}},
		count: fixedCount(4),
	}

	snap, err := p.Capture(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, snap.LogicalCores)
	require.Len(t, snap.PhysicalCores, 2)
	assert.Len(t, snap.PhysicalCores[0].LogicalIndices, 2)
	assert.Len(t, snap.PhysicalCores[1].LogicalIndices, 2)

	assert.Equal(t, 256, snap.L2PerLogical[0].SizeKiB)
	assert.Equal(t, 2, snap.L2PerLogical[0].SharedWith)
	assert.Equal(t, 8192, snap.L3SizeKiB)
	assert.Equal(t, 2400, snap.FrequencyMHz[3])
	assert.NotEmpty(t, snap.BrandName)
}

func TestCapturePartitionInvariant(t *testing.T) {
	p := &Prober{
		topo: &fakeTopology{cores: []topology.PhysicalCore{
			{ID: 0, LogicalIndices: []int{0, 2}},
			{ID: 1, LogicalIndices: []int{1, 3}},
		}},
		cache: &fakeCache{},
		freq:  &fakeFrequency{},
		count: fixedCount(4),
	}

	snap, err := p.Capture(context.Background())
	require.NoError(t, err)

	var all []int
	for _, core := range snap.PhysicalCores {
		all = append(all, core.LogicalIndices...)
	}
	sort.Ints(all)
	require.Len(t, all, snap.LogicalCores)
	for i, idx := range all {
		assert.Equal(t, i, idx)
	}
}

func TestCapturePerLogicalLengths(t *testing.T) {
	p := &Prober{
		topo:  &fakeTopology{cores: []topology.PhysicalCore{{ID: 0, LogicalIndices: []int{0, 1, 2, 3, 4, 5}}}},
		cache: &fakeCache{},
		freq:  &fakeFrequency{},
		count: fixedCount(6),
	}

	snap, err := p.Capture(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.L1PerLogical, snap.LogicalCores)
	assert.Len(t, snap.L2PerLogical, snap.LogicalCores)
	assert.Len(t, snap.FrequencyMHz, snap.LogicalCores)
}

func TestCaptureZeroLogicalCores(t *testing.T) {
	p := &Prober{
		topo:  &fakeTopology{},
		cache: &fakeCache{},
		freq:  &fakeFrequency{},
		count: fixedCount(0),
	}

	snap, err := p.Capture(context.Background())
	require.NoError(t, err, "zero logical cores is a valid degraded snapshot, not an error")
	assert.Empty(t, snap.PhysicalCores)
	assert.Empty(t, snap.L1PerLogical)
	assert.Empty(t, snap.L2PerLogical)
	assert.Empty(t, snap.FrequencyMHz)
	assert.Zero(t, snap.L3SizeKiB)
}

func TestCaptureCountFailure(t *testing.T) {
	p := &Prober{
		topo:  &fakeTopology{},
		cache: &fakeCache{},
		freq:  &fakeFrequency{},
		count: func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("%w: logical core count: %v", ErrPlatformQuery, errors.New("query refused"))
		},
	}

	snap, err := p.Capture(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrPlatformQuery)
}

func TestCaptureTopologyFailure(t *testing.T) {
	p := &Prober{
		topo:  &fakeTopology{err: errors.New("enumeration refused")},
		cache: &fakeCache{},
		freq:  &fakeFrequency{},
		count: fixedCount(2),
	}

	snap, err := p.Capture(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrPlatformQuery)
}

func TestCaptureCacheEnumerationFailure(t *testing.T) {
	p := &Prober{
		topo:  &fakeTopology{},
		cache: &fakeCache{err: errors.New("enumeration refused")},
		freq:  &fakeFrequency{},
		count: fixedCount(2),
	}

	snap, err := p.Capture(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrPlatformQuery)
}

func TestCaptureRealPlatform(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skipf("no platform backend on %s", runtime.GOOS)
	}

	snap, err := Capture(context.Background())
	require.NoError(t, err)

	assert.Greater(t, snap.LogicalCores, 0)
	assert.NotEmpty(t, snap.BrandName)
	assert.Len(t, snap.L1PerLogical, snap.LogicalCores)
	assert.Len(t, snap.L2PerLogical, snap.LogicalCores)
	assert.Len(t, snap.FrequencyMHz, snap.LogicalCores)

	seen := make(map[int]bool)
	for _, core := range snap.PhysicalCores {
		for _, idx := range core.LogicalIndices {
			assert.False(t, seen[idx], "logical index %d appears twice", idx)
			seen[idx] = true
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, snap.LogicalCores)
		}
	}
	assert.Len(t, seen, snap.LogicalCores)
}
