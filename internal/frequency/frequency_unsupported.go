//go:build !linux && !windows

package frequency

import "context"

// UnsupportedReader reports zero for every core on unsupported
// platforms.
type UnsupportedReader struct{}

// newPlatformReader creates a fallback frequency reader for unsupported
// platforms.
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// PerLogical returns an all-zero slice.
func (r *UnsupportedReader) PerLogical(ctx context.Context, logicalCount int) []int {
	return make([]int, logicalCount)
}
