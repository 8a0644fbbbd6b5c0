package probe

import (
	"strings"

	goversion "github.com/hashicorp/go-version"
)

const (
	redistDisplayName = "Microsoft Visual C++ 2015-2022 Redistributable"
	// 14.30 is the first 2022-toolset runtime; older 2015-2019 installs
	// share the DisplayName prefix but miss symbols Prism links against.
	redistMinVersion = "14.30"
)

// matchRedistEntry reports whether a single uninstall entry satisfies the
// runtime requirement. The display name substring is the primary signal;
// an entry whose version does not parse is accepted on the name alone.
func matchRedistEntry(displayName, displayVersion string) bool {
	if !strings.Contains(displayName, redistDisplayName) {
		return false
	}

	installed, err := goversion.NewVersion(strings.TrimSpace(displayVersion))
	if err != nil {
		return true
	}

	required := goversion.Must(goversion.NewVersion(redistMinVersion))
	return installed.GreaterThanOrEqual(required)
}
