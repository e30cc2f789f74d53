//go:build linux

package topology

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LinuxSource reads per-CPU topology data from sysfs.
type LinuxSource struct {
	root string
}

// newPlatformSource creates a new Linux topology source.
func newPlatformSource() Source {
	return &LinuxSource{root: "/sys/devices/system/cpu"}
}

// PhysicalCores groups logical CPUs by their (package, core) sysfs IDs.
// A CPU whose topology files are missing or unreadable falls back to key
// (0, 0); on systems without sysfs topology every logical CPU collapses
// into a single physical core, which is a valid degraded result for
// virtualized or sandboxed environments, not an error.
func (s *LinuxSource) PhysicalCores(ctx context.Context, logicalCount int) ([]PhysicalCore, error) {
	keys := make([]CoreKey, logicalCount)
	for cpu := 0; cpu < logicalCount; cpu++ {
		keys[cpu] = CoreKey{
			Package: s.readID(cpu, "physical_package_id"),
			Core:    s.readID(cpu, "core_id"),
		}
	}
	return GroupByKey(keys), nil
}

// readID reads one small-integer topology file, defaulting to zero.
func (s *LinuxSource) readID(cpu int, name string) int {
	path := fmt.Sprintf("%s/cpu%d/topology/%s", s.root, cpu, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	id, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return id
}
