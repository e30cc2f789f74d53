//go:build !linux && !windows

package cache

import (
	"context"
	"fmt"
)

// UnsupportedSource is a fallback for unsupported platforms.
type UnsupportedSource struct{}

// newPlatformSource creates a fallback cache source for unsupported
// platforms.
func newPlatformSource() Source {
	return &UnsupportedSource{}
}

// Instances returns an error for unsupported platforms.
func (s *UnsupportedSource) Instances(ctx context.Context, logicalCount int) ([]Instance, error) {
	return nil, fmt.Errorf("CPU cache discovery not supported on this platform")
}
