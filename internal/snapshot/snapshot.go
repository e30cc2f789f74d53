// Package snapshot assembles a point-in-time description of the host
// CPU: brand, core topology, cache sizes, clock frequencies, and
// instruction-set extensions. One call produces one fully populated,
// immutable snapshot; nothing is cached or shared between calls, so
// captures are safe from concurrent goroutines.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/CristiGvl/picoCPUProbe/internal/brand"
	"github.com/CristiGvl/picoCPUProbe/internal/cache"
	"github.com/CristiGvl/picoCPUProbe/internal/features"
	"github.com/CristiGvl/picoCPUProbe/internal/frequency"
	"github.com/CristiGvl/picoCPUProbe/internal/topology"
)

var (
	// ErrPlatformQuery wraps failures of the mandatory platform queries:
	// the logical core count and the topology and cache enumeration
	// calls. Best-effort reads never produce it.
	ErrPlatformQuery = errors.New("platform query failed")

	// ErrInvalidArgument reports misuse of the API surface, such as
	// rendering a nil snapshot.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Snapshot is one capture of the host CPU. Per-logical slices are
// indexed by logical CPU index and always have length LogicalCores.
type Snapshot struct {
	BrandName     string                  `json:"brand_name"`
	LogicalCores  int                     `json:"logical_core_count"`
	PhysicalCores []topology.PhysicalCore `json:"physical_cores"`
	L1PerLogical  []cache.Info            `json:"l1_per_logical"`
	L2PerLogical  []cache.L2Info          `json:"l2_per_logical"`
	L3SizeKiB     int                     `json:"l3_size_kib"`
	FrequencyMHz  []int                   `json:"frequency_mhz_per_logical"`
	Features      features.Set            `json:"features"`
}

// Prober captures snapshots through a fixed set of platform sources.
type Prober struct {
	topo  topology.Source
	cache cache.Source
	freq  frequency.Reader
	count func(ctx context.Context) (int, error)
}

// NewProber creates a prober backed by the current platform's sources.
func NewProber() *Prober {
	return &Prober{
		topo:  topology.NewSource(),
		cache: cache.NewSource(),
		freq:  frequency.NewReader(),
		count: logicalCount,
	}
}

// logicalCount queries the number of schedulable logical CPUs visible to
// the process.
func logicalCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("%w: logical core count: %v", ErrPlatformQuery, err)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Capture gathers one snapshot. The logical core count and the
// topology/cache enumeration calls are mandatory and abort the capture;
// individual frequency and cache-detail reads degrade to zero instead.
func (p *Prober) Capture(ctx context.Context) (*Snapshot, error) {
	logical, err := p.count(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		LogicalCores:  logical,
		PhysicalCores: []topology.PhysicalCore{},
		L1PerLogical:  make([]cache.Info, logical),
		L2PerLogical:  make([]cache.L2Info, logical),
		FrequencyMHz:  make([]int, logical),
	}

	snap.Features = features.Detect()
	snap.BrandName = brand.Name(ctx)

	instances, err := p.cache.Instances(ctx, logical)
	if err != nil {
		return nil, fmt.Errorf("%w: cache enumeration: %v", ErrPlatformQuery, err)
	}
	snap.L1PerLogical, snap.L2PerLogical, snap.L3SizeKiB = cache.Attribute(instances, logical)
	snap.FrequencyMHz = p.freq.PerLogical(ctx, logical)

	cores, err := p.topo.PhysicalCores(ctx, logical)
	if err != nil {
		return nil, fmt.Errorf("%w: core topology: %v", ErrPlatformQuery, err)
	}
	if cores != nil {
		snap.PhysicalCores = cores
	}

	return snap, nil
}

// Capture takes one snapshot using the current platform's sources.
func Capture(ctx context.Context) (*Snapshot, error) {
	return NewProber().Capture(ctx)
}
