//go:build windows

package topology

import (
	"context"

	"github.com/CristiGvl/picoCPUProbe/internal/winsys"
)

// WindowsSource queries processor-core relationships from the Windows
// API.
type WindowsSource struct{}

// newPlatformSource creates a new Windows topology source.
func newPlatformSource() Source {
	return &WindowsSource{}
}

// PhysicalCores expands each processor-core relationship record into one
// physical core. IDs are discovery sequence numbers and the logical
// indices follow the ascending bit order of the record's affinity mask.
func (s *WindowsSource) PhysicalCores(ctx context.Context, logicalCount int) ([]PhysicalCore, error) {
	masks, err := winsys.ProcessorCoreMasks()
	if err != nil {
		return nil, err
	}

	cores := make([]PhysicalCore, 0, len(masks))
	for i, mask := range masks {
		cores = append(cores, PhysicalCore{
			ID:             i,
			Kind:           KindUnknown,
			LogicalIndices: MaskIndices(mask),
		})
	}
	return cores, nil
}
