package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulePath(t *testing.T) {
	assert.Contains(t, ModulePath(Bitness32), "prism-vcam32.dll")
	assert.Contains(t, ModulePath(Bitness64), "prism-vcam64.dll")
}

func TestClsidKeyPath_SeparatesRegistryViews(t *testing.T) {
	key32 := clsidKeyPath(Bitness32)
	key64 := clsidKeyPath(Bitness64)

	assert.Contains(t, key32, `WOW6432Node\CLSID`)
	assert.NotContains(t, key64, "WOW6432Node")
	assert.Contains(t, key32, filterCLSID)
	assert.Contains(t, key64, filterCLSID)
	assert.NotEqual(t, key32, key64)
}

func TestBitnessString(t *testing.T) {
	assert.Equal(t, "32-bit", Bitness32.String())
	assert.Equal(t, "64-bit", Bitness64.String())
}
