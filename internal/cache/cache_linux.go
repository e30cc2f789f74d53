//go:build linux

package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LinuxSource scans sysfs cache index directories.
type LinuxSource struct {
	root string
}

// newPlatformSource creates a new Linux cache source.
func newPlatformSource() Source {
	return &LinuxSource{root: "/sys/devices/system/cpu"}
}

// Instances walks cpu0's cache/indexN directories in order until one is
// absent. Cache topology is assumed uniform across logical CPUs, so only
// cpu0 is scanned; this holds on commodity symmetric multiprocessors.
// Unreadable files within an index degrade to zero values for that
// instance.
func (s *LinuxSource) Instances(ctx context.Context, logicalCount int) ([]Instance, error) {
	var instances []Instance
	for idx := 0; ; idx++ {
		dir := fmt.Sprintf("%s/cpu0/cache/index%d", s.root, idx)
		if _, err := os.Stat(dir); err != nil {
			break
		}
		instances = append(instances, Instance{
			Level:      readInt(filepath.Join(dir, "level")),
			SizeKiB:    ParseSize(readString(filepath.Join(dir, "size"))),
			SharedCPUs: ParseSharedCPUList(readString(filepath.Join(dir, "shared_cpu_list"))),
		})
	}
	return instances, nil
}

// readString reads a single-line sysfs value, defaulting to empty.
func readString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readInt reads a small-integer sysfs value, defaulting to zero.
func readInt(path string) int {
	n, err := strconv.Atoi(readString(path))
	if err != nil {
		return 0
	}
	return n
}
