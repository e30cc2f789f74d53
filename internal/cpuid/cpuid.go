// Package cpuid exposes the raw CPUID primitives consumed by the
// feature decoder and brand reader. On architectures without the CPUID
// instruction every leaf reads as zero.
package cpuid

import "strings"

// Query executes CPUID for the given leaf and subleaf and returns the
// four result registers.
func Query(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return query(leaf, subleaf)
}

// VendorString returns the 12-character vendor identifier from leaf 0,
// e.g. "GenuineIntel" or "AuthenticAMD". Empty when CPUID is unavailable.
func VendorString() string {
	_, b, c, d := Query(0, 0)
	out := make([]byte, 0, 12)
	out = appendRegister(out, b)
	out = appendRegister(out, d)
	out = appendRegister(out, c)
	return strings.Trim(string(out), "\x00")
}

// BrandString returns the processor brand string from the extended
// leaves 0x80000002-0x80000004, trimmed of padding. Empty when the
// extended leaves are unavailable.
func BrandString() string {
	maxExt, _, _, _ := Query(0x80000000, 0)
	if maxExt < 0x80000004 {
		return ""
	}
	out := make([]byte, 0, 48)
	for leaf := uint32(0x80000002); leaf <= 0x80000004; leaf++ {
		a, b, c, d := Query(leaf, 0)
		out = appendRegister(out, a)
		out = appendRegister(out, b)
		out = appendRegister(out, c)
		out = appendRegister(out, d)
	}
	return strings.TrimSpace(strings.Trim(string(out), "\x00"))
}

// appendRegister appends one register's bytes in little-endian order.
func appendRegister(dst []byte, r uint32) []byte {
	return append(dst, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
}
