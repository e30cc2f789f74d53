//go:build amd64

package cpuid

// query is implemented in cpuid_amd64.s.
func query(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
