//go:build windows

package cache

import (
	"context"

	"github.com/CristiGvl/picoCPUProbe/internal/topology"
	"github.com/CristiGvl/picoCPUProbe/internal/winsys"
)

// WindowsSource queries cache relationships from the Windows API.
type WindowsSource struct{}

// newPlatformSource creates a new Windows cache source.
func newPlatformSource() Source {
	return &WindowsSource{}
}

// Instances converts each cache relationship record into an instance,
// expanding the record's affinity mask into the sharing set.
func (s *WindowsSource) Instances(ctx context.Context, logicalCount int) ([]Instance, error) {
	records, err := winsys.CacheInstances()
	if err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(records))
	for _, rec := range records {
		instances = append(instances, Instance{
			Level:      rec.Level,
			SizeKiB:    rec.SizeKiB,
			SharedCPUs: topology.MaskIndices(rec.Mask),
		})
	}
	return instances, nil
}
