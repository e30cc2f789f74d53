//go:build linux

package frequency

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LinuxReader reads cpufreq data from sysfs.
type LinuxReader struct {
	root string
}

// newPlatformReader creates a new Linux frequency reader.
func newPlatformReader() Reader {
	return &LinuxReader{root: "/sys/devices/system/cpu"}
}

// PerLogical reads each CPU's scaling_cur_freq. The file reports kHz;
// values are truncated to whole MHz.
func (r *LinuxReader) PerLogical(ctx context.Context, logicalCount int) []int {
	freqs := make([]int, logicalCount)
	for cpu := range freqs {
		path := fmt.Sprintf("%s/cpu%d/cpufreq/scaling_cur_freq", r.root, cpu)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		khz, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			continue
		}
		freqs[cpu] = khz / 1000
	}
	return freqs
}
