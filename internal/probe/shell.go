package probe

import (
	"context"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// The installer script assumes MSYS bash semantics, so a bash that
// reports some other build (WSL, cygwin sitting on PATH under the same
// name) must be rejected, not accepted.
const bashVariantMarker = "msys"

// rootOverrideEnv points at a Git installation root and wins over the
// conventional Program Files locations.
const rootOverrideEnv = "PRISM_GIT_ROOT"

var bashRelPaths = []string{
	filepath.Join("bin", "bash.exe"),
	filepath.Join("usr", "bin", "bash.exe"),
}

// FindBash locates an MSYS bash. PATH is tried first; when that yields
// nothing usable the conventional Git for Windows installation roots are
// scanned. Returns the first candidate that passes the variant check.
func (p *Prober) FindBash(ctx context.Context) (string, bool) {
	if path, err := p.lookPath("bash"); err == nil {
		if p.isMSYSBash(ctx, path) {
			return path, true
		}
		log.Debugf("bash at %s is not the MSYS variant, scanning fallback locations", path)
	}

	for _, root := range p.gitRoots() {
		for _, rel := range bashRelPaths {
			candidate := filepath.Join(root, rel)
			if p.fileExists(candidate) && p.isMSYSBash(ctx, candidate) {
				return candidate, true
			}
		}
	}

	return "", false
}

func (p *Prober) isMSYSBash(ctx context.Context, path string) bool {
	out, err := p.versionOutput(ctx, path)
	if err != nil {
		log.Debugf("failed to query %s version: %v", path, err)
		return false
	}
	return IsMSYSBash(out)
}

// IsMSYSBash reports whether a bash --version output belongs to the MSYS
// (Git for Windows) build.
func IsMSYSBash(versionOutput string) bool {
	return strings.Contains(strings.ToLower(versionOutput), bashVariantMarker)
}

func (p *Prober) gitRoots() []string {
	var roots []string
	if override := p.getenv(rootOverrideEnv); override != "" {
		roots = append(roots, override)
	}
	for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		if dir := p.getenv(env); dir != "" {
			roots = append(roots, filepath.Join(dir, "Git"))
		}
	}
	return roots
}
