// Package camera handles registration of the Prism virtual camera
// DirectShow filter. The filter ships as two DLLs, one per process
// bitness, so 32-bit host applications can enumerate the camera too.
package camera

import (
	"fmt"
	"path/filepath"
)

type Bitness int

const (
	Bitness32 Bitness = 32
	Bitness64 Bitness = 64
)

// Bitnesses lists every driver variant the distribution carries, in the
// order they are registered and reported.
var Bitnesses = []Bitness{Bitness32, Bitness64}

func (b Bitness) String() string {
	return fmt.Sprintf("%d-bit", int(b))
}

// Both filter builds share one CLSID; the registry separates them by view.
const filterCLSID = "{27B05C2D-93DC-474A-A5DA-9BBA34CB2A9C}"

// ModulePath returns the driver DLL location for a bitness, relative to
// the distribution root.
func ModulePath(b Bitness) string {
	if b == Bitness32 {
		return filepath.Join("app", "prism-vcam32.dll")
	}
	return filepath.Join("app", "prism-vcam64.dll")
}

// clsidKeyPath is the HKLM location regsvr32 writes for a bitness.
func clsidKeyPath(b Bitness) string {
	if b == Bitness32 {
		return `SOFTWARE\Classes\WOW6432Node\CLSID\` + filterCLSID
	}
	return `SOFTWARE\Classes\CLSID\` + filterCLSID
}
