package cpuid

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorString(t *testing.T) {
	vendor := VendorString()
	if runtime.GOARCH == "amd64" {
		assert.Len(t, vendor, 12)
	} else {
		assert.Empty(t, vendor)
	}
}

func TestBrandStringHasNoPadding(t *testing.T) {
	brand := BrandString()
	assert.False(t, strings.ContainsRune(brand, 0), "brand string must not contain NUL padding")
	assert.Equal(t, strings.TrimSpace(brand), brand)
}

func TestQueryIsDeterministic(t *testing.T) {
	a1, b1, c1, d1 := Query(0, 0)
	a2, b2, c2, d2 := Query(0, 0)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, d1, d2)
}
