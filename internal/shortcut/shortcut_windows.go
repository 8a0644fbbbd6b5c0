//go:build windows

package shortcut

import (
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Create writes a .lnk file at linkPath pointing at target, with the
// working directory set so Prism finds its data files. An existing link
// at the same path is overwritten.
func Create(linkPath, target, workDir string) error {
	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("failed to initialize COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	wshell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query IDispatch: %w", err)
	}
	defer wshell.Release()

	res, err := oleutil.CallMethod(wshell, "CreateShortcut", linkPath)
	if err != nil {
		return fmt.Errorf("CreateShortcut call failed: %w", err)
	}
	link := res.ToIDispatch()
	defer link.Release()

	if _, err := oleutil.PutProperty(link, "TargetPath", target); err != nil {
		return fmt.Errorf("failed to set shortcut target: %w", err)
	}
	if _, err := oleutil.PutProperty(link, "WorkingDirectory", workDir); err != nil {
		return fmt.Errorf("failed to set shortcut working directory: %w", err)
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut %s: %w", linkPath, err)
	}
	return nil
}
