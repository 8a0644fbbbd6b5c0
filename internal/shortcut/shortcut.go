// Package shortcut creates the per-user Start Menu entry pointing at the
// installed Prism executable.
package shortcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const linkName = "Prism.lnk"

// targetRelPath is where the portable distribution places the executable,
// relative to the directory the bootstrapper runs from.
var targetRelPath = filepath.Join("app", "Prism.exe")

// StartMenuLink returns the per-user Start Menu location for the link.
func StartMenuLink() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", errors.New("APPDATA is not set")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", linkName), nil
}

// Target resolves the absolute path of the installed executable and its
// containing directory. It fails when the executable is not where the
// distribution puts it, which means the installer script did not run or
// the bootstrapper was started outside the distribution directory.
func Target(workDir string) (exe string, dir string, err error) {
	exe, err = filepath.Abs(filepath.Join(workDir, targetRelPath))
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	if _, err := os.Stat(exe); err != nil {
		return "", "", fmt.Errorf("prism executable not found at %s: %w", exe, err)
	}
	return exe, filepath.Dir(exe), nil
}

// Exists reports whether a shortcut file is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
