package cache

import (
	"strconv"
	"strings"
)

// ParseSharedCPUList parses a sysfs shared_cpu_list value: a
// comma-separated sequence of single indices or inclusive "a-b" ranges,
// e.g. "0-3,8". Entries appear in the output in listed order; malformed
// entries are skipped.
func ParseSharedCPUList(list string) []int {
	var cpus []int
	for _, tok := range strings.Split(strings.TrimSpace(list), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(tok, "-"); ok {
			a, errA := strconv.Atoi(lo)
			b, errB := strconv.Atoi(hi)
			if errA != nil || errB != nil {
				continue
			}
			for i := a; i <= b; i++ {
				cpus = append(cpus, i)
			}
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		cpus = append(cpus, n)
	}
	return cpus
}

// ParseSize parses a sysfs cache size value and returns KiB. A trailing
// K means the number is already KiB; a trailing M multiplies by 1024. A
// bare number is taken as KiB, matching the kernel's unit. Unparseable
// values yield zero.
func ParseSize(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	mult := 1
	switch v[len(v)-1] {
	case 'K', 'k':
		v = strings.TrimSpace(v[:len(v)-1])
	case 'M', 'm':
		v = strings.TrimSpace(v[:len(v)-1])
		mult = 1024
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n * mult
}
