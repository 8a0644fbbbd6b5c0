package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/prismcam/bootstrap/internal/camera"
	"github.com/prismcam/bootstrap/internal/elevate"
	"github.com/prismcam/bootstrap/internal/probe"
	"github.com/prismcam/bootstrap/internal/remedy"
	"github.com/prismcam/bootstrap/internal/shortcut"
)

// machineSystem implements bootstrap.System against the real machine.
type machineSystem struct {
	prober *probe.Prober
}

func newMachineSystem() *machineSystem {
	return &machineSystem{prober: probe.New()}
}

func (m *machineSystem) FindBash(ctx context.Context) (string, bool) {
	return m.prober.FindBash(ctx)
}

func (m *machineSystem) HasScoop() bool {
	return m.prober.HasScoop()
}

func (m *machineSystem) HasGit() bool {
	return m.prober.HasGit()
}

func (m *machineSystem) RedistInstalled() bool {
	return m.prober.RedistInstalled()
}

func (m *machineSystem) ShortcutExists() bool {
	link, err := shortcut.StartMenuLink()
	if err != nil {
		return false
	}
	return shortcut.Exists(link)
}

func (m *machineSystem) CameraRegistered(b camera.Bitness) bool {
	return camera.Registered(b)
}

// machineActions implements bootstrap.Actions against the real machine.
type machineActions struct {
	runner remedy.Runner
	script *remedy.ScriptRunner
}

func newMachineActions() *machineActions {
	runner := remedy.ExecRunner{}
	return &machineActions{
		runner: runner,
		script: &remedy.ScriptRunner{Runner: runner},
	}
}

func (a *machineActions) InstallScoop(ctx context.Context) error {
	return remedy.InstallScoop(ctx, a.runner)
}

func (a *machineActions) InstallGit(ctx context.Context) error {
	return remedy.InstallGit(ctx, a.runner)
}

func (a *machineActions) InstallRedist(ctx context.Context) error {
	return remedy.InstallRedist(ctx, a.runner)
}

func (a *machineActions) RunInstaller(ctx context.Context, bashPath string, silent bool) error {
	return a.script.Run(ctx, bashPath, silent)
}

func (a *machineActions) CreateShortcut() error {
	exe, dir, err := shortcut.Target(".")
	if err != nil {
		return err
	}
	link, err := shortcut.StartMenuLink()
	if err != nil {
		return err
	}
	return shortcut.Create(link, exe, dir)
}

// RegisterCamera runs the driver registration inside an elevated process.
// When the current process is already elevated it registers in place;
// otherwise it relaunches itself through UAC, scoped to just this action,
// and waits for the child's exit code.
func (a *machineActions) RegisterCamera(ctx context.Context) error {
	if elevate.IsElevated() {
		registerAll(ctx, a.runner)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	log.Info("requesting elevation for driver registration")
	code, err := elevate.RunElevated(exe, []string{"elevated", "register-camera"}, wd)
	if err != nil {
		return fmt.Errorf("could not start elevated helper: %w", err)
	}
	if code != 0 {
		// The helper exits non-zero only when it lacks privileges after
		// all; that is the missing-privilege case and maps to exit 1,
		// not to the child's code.
		return fmt.Errorf("elevated helper exited with code %d", code)
	}
	return nil
}

// registerAll attempts every bitness; one failing does not stop the rest.
func registerAll(ctx context.Context, runner remedy.Runner) {
	for _, b := range camera.Bitnesses {
		if err := camera.Register(ctx, runner, b); err != nil {
			log.Errorf("driver registration (%s) failed: %v", b, err)
		}
	}
}
