// Package brand resolves a human-readable CPU brand string.
package brand

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/CristiGvl/picoCPUProbe/internal/cpuid"
)

// Name returns the CPU brand string. The CPUID extended leaves are the
// primary source; gopsutil and finally GOARCH cover machines where those
// leaves are unavailable. The result is never empty.
func Name(ctx context.Context) string {
	if name := cpuid.BrandString(); name != "" {
		return name
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 {
		if infos[0].ModelName != "" {
			return infos[0].ModelName
		}
		if infos[0].VendorID != "" {
			return infos[0].VendorID
		}
	}

	return runtime.GOARCH
}
