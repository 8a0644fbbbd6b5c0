package bootstrap

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/prismcam/bootstrap/internal/camera"
)

// EnsureRedistributable installs the Visual C++ runtime when missing.
// The install path runs through Scoop, so the package manager and Git
// (buckets are git repositories) are ensured first.
func (b *Bootstrapper) EnsureRedistributable(ctx context.Context) error {
	if b.sys.RedistInstalled() {
		log.Info("Visual C++ redistributable is already installed")
		return nil
	}

	if !b.gate.Confirm("The Visual C++ redistributable is missing. Install it?") {
		return ErrDeclined
	}
	// The install itself runs through Scoop, so the package manager is
	// needed even when Git is already on the machine.
	if err := b.ensure(ctx, capScoop); err != nil {
		return err
	}
	if err := b.ensure(ctx, capGit); err != nil {
		return err
	}
	return b.act.InstallRedist(ctx)
}

// RunInstaller resolves the bash interpreter and delegates the actual
// software installation to the installer script.
func (b *Bootstrapper) RunInstaller(ctx context.Context) error {
	bash, err := b.ensureBash(ctx)
	if err != nil {
		return err
	}
	return b.act.RunInstaller(ctx, bash, !b.cfg.Prompt)
}

func (b *Bootstrapper) ensureBash(ctx context.Context) (string, error) {
	if path, ok := b.sys.FindBash(ctx); ok {
		return path, nil
	}

	if !b.gate.Confirm("An MSYS bash interpreter is required to run the installer. Install Git, which provides one?") {
		return "", ErrDeclined
	}
	if err := b.ensure(ctx, capScoop); err != nil {
		return "", err
	}
	if err := b.ensure(ctx, capGit); err != nil {
		return "", err
	}
	if path, ok := b.sys.FindBash(ctx); ok {
		return path, nil
	}
	return "", ErrBashUnavailable
}

// CreateShortcut writes the Start Menu entry, asking before overwriting
// an existing one.
func (b *Bootstrapper) CreateShortcut() error {
	if b.sys.ShortcutExists() {
		if !b.gate.Confirm("A Start Menu shortcut for Prism already exists. Overwrite it?") {
			return ErrDeclined
		}
	}

	if err := b.act.CreateShortcut(); err != nil {
		return fmt.Errorf("failed to create shortcut: %w", err)
	}
	log.Info("created the Start Menu shortcut")
	return nil
}

// EnsureVirtualCamera registers the virtual camera driver modules and
// reports the outcome for each bitness independently. One bitness
// failing to register does not block checking the other.
func (b *Bootstrapper) EnsureVirtualCamera(ctx context.Context) (map[camera.Bitness]bool, error) {
	if !b.gate.Confirm("Install the Prism virtual camera driver?") {
		return nil, ErrDeclined
	}

	if err := b.act.RegisterCamera(ctx); err != nil {
		return nil, fmt.Errorf("virtual camera registration failed: %w", err)
	}

	results := make(map[camera.Bitness]bool, len(camera.Bitnesses))
	for _, bit := range camera.Bitnesses {
		ok := b.sys.CameraRegistered(bit)
		results[bit] = ok
		if ok {
			log.Infof("virtual camera (%s) is registered", bit)
		} else {
			log.Errorf("virtual camera (%s) registration could not be verified", bit)
		}
	}
	return results, nil
}
