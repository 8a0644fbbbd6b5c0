// Package probe answers read-only questions about the local machine:
// which tools are on PATH, whether the required runtime is installed and
// where a usable bash interpreter lives. Probes have no side effects and
// are re-run every time; the environment can change between calls once a
// remediation has installed something.
package probe

import (
	"context"
	"os"
	"os/exec"
)

// Prober holds the lookup hooks so tests can fake PATH, the filesystem
// and the interpreter version query.
type Prober struct {
	lookPath      func(file string) (string, error)
	getenv        func(key string) string
	fileExists    func(path string) bool
	versionOutput func(ctx context.Context, path string) (string, error)
}

func New() *Prober {
	return &Prober{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		versionOutput: func(ctx context.Context, path string) (string, error) {
			out, err := exec.CommandContext(ctx, path, "--version").Output()
			return string(out), err
		},
	}
}

func (p *Prober) HasScoop() bool {
	_, err := p.lookPath("scoop")
	return err == nil
}

func (p *Prober) HasGit() bool {
	_, err := p.lookPath("git")
	return err == nil
}
