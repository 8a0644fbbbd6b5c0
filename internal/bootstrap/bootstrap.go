// Package bootstrap sequences the machine preparation steps: runtime
// redistributable, installer script delegation, Start Menu shortcut and
// virtual camera driver registration. All machine access goes through
// the System and Actions interfaces so the sequencing logic can be
// exercised with fakes.
package bootstrap

import (
	"context"
	"errors"

	"github.com/prismcam/bootstrap/internal/camera"
)

var (
	// ErrDeclined means the user answered no to a confirmation. It is
	// fatal for the whole run; later steps assume every earlier
	// prerequisite was satisfied.
	ErrDeclined = errors.New("cancelled by user")

	// ErrBashUnavailable means no MSYS bash could be found even after
	// installing Git.
	ErrBashUnavailable = errors.New("no MSYS bash interpreter available")
)

// Config carries the process-wide run options, set once from the CLI
// and passed down explicitly.
type Config struct {
	// Prompt enables interactive confirmation before each install step.
	// When false the bootstrapper never blocks on input.
	Prompt bool
}

// System answers the read-only capability probes the orchestrator needs.
// Probes are never cached here; a capability installed by one step must
// be visible to the next probe.
type System interface {
	FindBash(ctx context.Context) (string, bool)
	HasScoop() bool
	HasGit() bool
	RedistInstalled() bool
	ShortcutExists() bool
	CameraRegistered(b camera.Bitness) bool
}

// Actions are the side-effecting remediations. Each is invoked at most
// once per run, after its probe reported the capability missing and the
// gate agreed.
type Actions interface {
	InstallScoop(ctx context.Context) error
	InstallGit(ctx context.Context) error
	InstallRedist(ctx context.Context) error
	RunInstaller(ctx context.Context, bashPath string, silent bool) error
	CreateShortcut() error
	RegisterCamera(ctx context.Context) error
}

// Gate asks the user before a remediation runs.
type Gate interface {
	Confirm(question string) bool
}

type capability int

const (
	capScoop capability = iota
	capGit
)

type Bootstrapper struct {
	cfg  Config
	sys  System
	act  Actions
	gate Gate

	// ensured memoizes capabilities resolved during this run so the
	// prerequisite chain does not re-probe or re-install them.
	ensured map[capability]bool
}

func New(cfg Config, sys System, act Actions, gate Gate) *Bootstrapper {
	return &Bootstrapper{
		cfg:     cfg,
		sys:     sys,
		act:     act,
		gate:    gate,
		ensured: make(map[capability]bool),
	}
}

// Run executes the four bootstrap procedures in fixed order. The first
// error stops the run; side effects of completed steps are not undone.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.EnsureRedistributable(ctx); err != nil {
		return err
	}
	if err := b.RunInstaller(ctx); err != nil {
		return err
	}
	if err := b.CreateShortcut(); err != nil {
		return err
	}
	if _, err := b.EnsureVirtualCamera(ctx); err != nil {
		return err
	}
	return nil
}

// ensure resolves a capability, recursively ensuring its prerequisite
// first and installing what is missing after confirmation.
func (b *Bootstrapper) ensure(ctx context.Context, c capability) error {
	if b.ensured[c] {
		return nil
	}

	switch c {
	case capScoop:
		if !b.sys.HasScoop() {
			if !b.gate.Confirm("The Scoop package manager is required to install missing dependencies. Install it now?") {
				return ErrDeclined
			}
			if err := b.act.InstallScoop(ctx); err != nil {
				return err
			}
		}
	case capGit:
		if !b.sys.HasGit() {
			if err := b.ensure(ctx, capScoop); err != nil {
				return err
			}
			if !b.gate.Confirm("Git is required. Install it via Scoop?") {
				return ErrDeclined
			}
			if err := b.act.InstallGit(ctx); err != nil {
				return err
			}
		}
	}

	b.ensured[c] = true
	return nil
}
