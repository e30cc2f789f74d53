// Package cache discovers CPU cache instances and attributes their
// sizes to the logical cores that share them.
package cache

import "context"

// Info describes one logical core's view of a cache level tracked by
// size only. A zero size means the level was not reported, not that the
// cache is absent.
type Info struct {
	SizeKiB int `json:"size_kib"`
}

// L2Info additionally records how many logical cores share the
// instance. The count includes the core itself on both platforms.
type L2Info struct {
	SizeKiB    int `json:"size_kib"`
	SharedWith int `json:"shared_with_count"`
}

// Instance is one discovered cache instance before attribution.
type Instance struct {
	Level      int
	SizeKiB    int
	SharedCPUs []int
}

// Source enumerates cache instances for the current platform.
type Source interface {
	Instances(ctx context.Context, logicalCount int) ([]Instance, error)
}

// NewSource creates a cache source for the current platform.
func NewSource() Source {
	return newPlatformSource()
}

// Attribute distributes each instance's size across the logical cores
// in its sharing set. Cores not covered by any instance keep zero. L3 is
// a single system-wide value; multiple L3 instances are not expected on
// supported hardware and the last one reported wins. Sharing-set entries
// outside [0, logicalCount) are ignored.
func Attribute(instances []Instance, logicalCount int) (l1 []Info, l2 []L2Info, l3KiB int) {
	l1 = make([]Info, logicalCount)
	l2 = make([]L2Info, logicalCount)
	for _, inst := range instances {
		for _, cpu := range inst.SharedCPUs {
			if cpu < 0 || cpu >= logicalCount {
				continue
			}
			switch inst.Level {
			case 1:
				l1[cpu].SizeKiB = inst.SizeKiB
			case 2:
				l2[cpu].SizeKiB = inst.SizeKiB
				l2[cpu].SharedWith = len(inst.SharedCPUs)
			case 3:
				l3KiB = inst.SizeKiB
			}
		}
	}
	return l1, l2, l3KiB
}
