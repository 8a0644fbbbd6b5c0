//go:build windows

package probe

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"
)

// The redistributable can appear in any of the three uninstall views
// depending on bitness and per-user vs machine install.
var uninstallRoots = []struct {
	root registry.Key
	path string
}{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

// RedistInstalled enumerates the installed-software registry views and
// reports whether a matching Visual C++ redistributable is present.
func (p *Prober) RedistInstalled() bool {
	for _, loc := range uninstallRoots {
		if scanUninstallTree(loc.root, loc.path) {
			return true
		}
	}
	return false
}

func scanUninstallTree(root registry.Key, path string) bool {
	k, err := registry.OpenKey(root, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return false
	}
	defer closeKey(k)

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		log.Debugf("failed to enumerate %s: %v", path, err)
		return false
	}

	for _, name := range names {
		if matchUninstallEntry(root, path+`\`+name) {
			return true
		}
	}
	return false
}

func matchUninstallEntry(root registry.Key, path string) bool {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer closeKey(k)

	displayName, _, err := k.GetStringValue("DisplayName")
	if err != nil {
		return false
	}
	displayVersion, _, _ := k.GetStringValue("DisplayVersion")

	return matchRedistEntry(displayName, displayVersion)
}

func closeKey(k registry.Key) {
	if err := k.Close(); err != nil {
		log.Warnf("error closing registry key: %v", err)
	}
}
