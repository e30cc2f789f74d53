// Package frequency reads the current clock frequency of each logical
// CPU. All reads are best effort: a core whose source is unavailable
// reports zero rather than failing the capture.
package frequency

import "context"

// Reader reports per-logical-core clock frequencies in MHz.
type Reader interface {
	PerLogical(ctx context.Context, logicalCount int) []int
}

// NewReader creates a frequency reader for the current platform.
func NewReader() Reader {
	return newPlatformReader()
}
