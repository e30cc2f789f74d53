//go:build !linux && !windows

package topology

import (
	"context"
	"fmt"
)

// UnsupportedSource is a fallback for unsupported platforms.
type UnsupportedSource struct{}

// newPlatformSource creates a fallback topology source for unsupported
// platforms.
func newPlatformSource() Source {
	return &UnsupportedSource{}
}

// PhysicalCores returns an error for unsupported platforms.
func (s *UnsupportedSource) PhysicalCores(ctx context.Context, logicalCount int) ([]PhysicalCore, error) {
	return nil, fmt.Errorf("CPU topology not supported on this platform")
}
