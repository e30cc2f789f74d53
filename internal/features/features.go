// Package features decodes the CPU's supported instruction-set
// extensions from raw CPUID leaves, gating vendor-specific flags by the
// reported vendor identity.
package features

import "github.com/CristiGvl/picoCPUProbe/internal/cpuid"

// Vendor identifiers as reported by CPUID leaf 0.
const (
	VendorIntel = "GenuineIntel"
	VendorAMD   = "AuthenticAMD"
)

// Set holds the decoded instruction-set extension flags. Flags specific
// to one vendor stay false on the other vendor's hardware even when the
// underlying bits happen to be set.
type Set struct {
	SSE   bool `json:"sse"`
	SSE2  bool `json:"sse2"`
	SSE3  bool `json:"sse3"`
	SSSE3 bool `json:"ssse3"`
	SSE41 bool `json:"sse4_1"`
	SSE42 bool `json:"sse4_2"`
	AVX   bool `json:"avx"`

	// Intel-only
	POPCNT      bool `json:"popcnt"`
	PCLMULQDQ   bool `json:"pclmulqdq"`
	AES         bool `json:"aes"`
	FMA         bool `json:"fma"`
	F16C        bool `json:"f16c"`
	XSAVE       bool `json:"xsave"`
	OSXSAVE     bool `json:"osxsave"`
	RDRAND      bool `json:"rdrand"`
	RDSEED      bool `json:"rdseed"`
	ADX         bool `json:"adx"`
	MPX         bool `json:"mpx"`
	PREFETCHWT1 bool `json:"prefetchwt1"`

	// Leaf 7, common to both vendors
	AVX2    bool `json:"avx2"`
	BMI1    bool `json:"bmi1"`
	BMI2    bool `json:"bmi2"`
	AVX512F bool `json:"avx512f"`
	SHA     bool `json:"sha"`

	// AMD-only
	SSE4A     bool `json:"sse4a"`
	XOP       bool `json:"xop"`
	FMA4      bool `json:"fma4"`
	ThreeDNow bool `json:"3dnow_plus"`
}

// queryFunc matches the raw CPUID primitive so tests can substitute
// canned register values.
type queryFunc func(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// Detect decodes the current CPU's instruction-set extensions.
func Detect() Set {
	return decode(cpuid.Query, cpuid.VendorString())
}

// decode maps CPUID leaves 1, 7.0, and 0x80000001 into the flag set.
func decode(query queryFunc, vendor string) Set {
	var s Set
	isIntel := vendor == VendorIntel
	isAMD := vendor == VendorAMD

	// Leaf 1: SSE/AVX family plus the Intel-gated extras.
	_, _, c, d := query(1, 0)
	s.SSE = bit(d, 25)
	s.SSE2 = bit(d, 26)
	s.SSE3 = bit(c, 0)
	s.SSSE3 = bit(c, 9)
	s.SSE41 = bit(c, 19)
	s.SSE42 = bit(c, 20)
	s.AVX = bit(c, 28)

	if isIntel {
		s.POPCNT = bit(c, 23)
		s.PCLMULQDQ = bit(c, 1)
		s.AES = bit(c, 25)
		s.FMA = bit(c, 12)
		s.F16C = bit(c, 29)
		s.XSAVE = bit(c, 26)
		s.OSXSAVE = bit(c, 27)
		s.RDRAND = bit(c, 30)
	}

	// Leaf 7 subleaf 0: AVX2, BMI, AVX-512, SHA, plus Intel-only bits.
	_, b, c, _ := query(7, 0)
	s.AVX2 = bit(b, 5)
	s.BMI1 = bit(b, 3)
	s.BMI2 = bit(b, 8)
	s.AVX512F = bit(b, 16)
	s.SHA = bit(c, 29)

	if isIntel {
		s.RDSEED = bit(b, 18)
		s.ADX = bit(b, 19)
		s.MPX = bit(b, 14)
		s.PREFETCHWT1 = bit(c, 0)
	}

	// AMD extended leaf 0x80000001.
	if isAMD {
		_, _, c, d := query(0x80000001, 0)
		s.SSE4A = bit(c, 6)
		s.XOP = bit(c, 11)
		s.FMA4 = bit(c, 16)
		s.ThreeDNow = bit(d, 31)
	}

	return s
}

// bit reports whether bit n of register r is set.
func bit(r uint32, n uint) bool {
	return r&(1<<n) != 0
}

// flagNames pairs each flag with its display name, in report order.
var flagNames = []struct {
	name string
	get  func(*Set) bool
}{
	{"SSE", func(s *Set) bool { return s.SSE }},
	{"SSE2", func(s *Set) bool { return s.SSE2 }},
	{"SSE3", func(s *Set) bool { return s.SSE3 }},
	{"SSSE3", func(s *Set) bool { return s.SSSE3 }},
	{"SSE4.1", func(s *Set) bool { return s.SSE41 }},
	{"SSE4.2", func(s *Set) bool { return s.SSE42 }},
	{"AVX", func(s *Set) bool { return s.AVX }},
	{"POPCNT", func(s *Set) bool { return s.POPCNT }},
	{"PCLMULQDQ", func(s *Set) bool { return s.PCLMULQDQ }},
	{"AES", func(s *Set) bool { return s.AES }},
	{"FMA3", func(s *Set) bool { return s.FMA }},
	{"F16C", func(s *Set) bool { return s.F16C }},
	{"XSAVE", func(s *Set) bool { return s.XSAVE }},
	{"OSXSAVE", func(s *Set) bool { return s.OSXSAVE }},
	{"RDRAND", func(s *Set) bool { return s.RDRAND }},
	{"RDSEED", func(s *Set) bool { return s.RDSEED }},
	{"ADX", func(s *Set) bool { return s.ADX }},
	{"MPX", func(s *Set) bool { return s.MPX }},
	{"PREFETCHWT1", func(s *Set) bool { return s.PREFETCHWT1 }},
	{"AVX2", func(s *Set) bool { return s.AVX2 }},
	{"BMI1", func(s *Set) bool { return s.BMI1 }},
	{"BMI2", func(s *Set) bool { return s.BMI2 }},
	{"AVX512F", func(s *Set) bool { return s.AVX512F }},
	{"SHA", func(s *Set) bool { return s.SHA }},
	{"SSE4A", func(s *Set) bool { return s.SSE4A }},
	{"XOP", func(s *Set) bool { return s.XOP }},
	{"FMA4", func(s *Set) bool { return s.FMA4 }},
	{"3DNow+", func(s *Set) bool { return s.ThreeDNow }},
}

// Names returns the display names of all enabled flags in report order.
func (s Set) Names() []string {
	var names []string
	for _, f := range flagNames {
		if f.get(&s) {
			names = append(names, f.name)
		}
	}
	return names
}
