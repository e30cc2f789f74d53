//go:build windows

package frequency

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
	"golang.org/x/sys/windows/registry"
)

// WindowsReader reads per-processor frequencies from the registry, with
// a WMI fallback when no registry value is readable.
type WindowsReader struct{}

// newPlatformReader creates a new Windows frequency reader.
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// Win32_Processor carries the WMI fields used by the fallback path.
type Win32_Processor struct {
	MaxClockSpeed uint32
}

// PerLogical reads each processor's ~MHz registry value. Restricted
// sessions may hide the CentralProcessor keys entirely; WMI still
// reports a nominal clock for the package, which is then applied to
// every logical core.
func (r *WindowsReader) PerLogical(ctx context.Context, logicalCount int) []int {
	freqs := make([]int, logicalCount)
	found := false
	for cpu := 0; cpu < logicalCount; cpu++ {
		keyPath := fmt.Sprintf(`HARDWARE\DESCRIPTION\System\CentralProcessor\%d`, cpu)
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		mhz, _, err := key.GetIntegerValue("~MHz")
		key.Close()
		if err != nil {
			continue
		}
		freqs[cpu] = int(mhz)
		found = true
	}

	if !found && logicalCount > 0 {
		var procs []Win32_Processor
		err := wmi.Query("SELECT MaxClockSpeed FROM Win32_Processor", &procs)
		if err == nil && len(procs) > 0 {
			for cpu := range freqs {
				freqs[cpu] = int(procs[0].MaxClockSpeed)
			}
		}
	}
	return freqs
}
