//go:build windows

// Package elevate bridges the one action that needs administrative
// rights into a separate elevated process. The only result channel back
// from that process is its exit code.
package elevate

import (
	"fmt"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process holds administrative
// privileges, either through an elevated token or membership in the
// builtin Administrators group.
func IsElevated() bool {
	token := windows.GetCurrentProcessToken()
	if token.IsElevated() {
		return true
	}

	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		log.Warnf("failed to create Administrators SID: %v", err)
		return false
	}
	member, err := token.IsMember(sid)
	if err != nil {
		log.Warnf("failed to check Administrators membership: %v", err)
		return false
	}
	return member
}

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
)

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
type shellExecuteInfo struct {
	cbSize        uint32
	fMask         uint32
	hwnd          windows.HWND
	verb          *uint16
	file          *uint16
	parameters    *uint16
	directory     *uint16
	show          int32
	instApp       windows.Handle
	idList        uintptr
	class         *uint16
	keyClass      windows.Handle
	hotKey        uint32
	iconOrMonitor windows.Handle
	process       windows.Handle
}

var (
	modshell32          = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteExW = modshell32.NewProc("ShellExecuteExW")
)

// RunElevated relaunches exe with args through the UAC "runas" verb and
// blocks until the elevated child exits, returning its exit code. A
// declined UAC prompt surfaces as an error from ShellExecuteEx.
func RunElevated(exe string, args []string, workDir string) (int, error) {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return 0, err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return 0, err
	}
	params, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(args))
	if err != nil {
		return 0, err
	}
	dir, err := windows.UTF16PtrFromString(workDir)
	if err != nil {
		return 0, err
	}

	info := &shellExecuteInfo{
		fMask:      seeMaskNoCloseProcess | seeMaskNoAsync,
		verb:       verb,
		file:       file,
		parameters: params,
		directory:  dir,
		show:       windows.SW_SHOWNORMAL,
	}
	info.cbSize = uint32(unsafe.Sizeof(*info))

	ret, _, errno := procShellExecuteExW.Call(uintptr(unsafe.Pointer(info)))
	if ret == 0 {
		return 0, fmt.Errorf("ShellExecuteEx failed: %w", errno)
	}
	if info.process == 0 {
		return 0, fmt.Errorf("no process handle returned for elevated child")
	}
	defer func() {
		if err := windows.CloseHandle(info.process); err != nil {
			log.Warnf("failed to close elevated child handle: %v", err)
		}
	}()

	if _, err := windows.WaitForSingleObject(info.process, windows.INFINITE); err != nil {
		return 0, fmt.Errorf("failed to wait for elevated child: %w", err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(info.process, &code); err != nil {
		return 0, fmt.Errorf("failed to read elevated child exit code: %w", err)
	}
	return int(code), nil
}
