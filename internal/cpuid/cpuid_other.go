//go:build !amd64

package cpuid

// query returns all zeros on architectures without CPUID; feature
// decoding degrades to an empty set and the brand reader falls back to
// its OS-level sources.
func query(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
