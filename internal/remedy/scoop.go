package remedy

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	scoopBootstrapURL = "https://get.scoop.sh"
	extrasBucket      = "extras"
	redistPackage     = "extras/vcredist2022"
)

// InstallScoop bootstraps the Scoop package manager for the current user.
// Relaxing the execution policy is a precondition of the bootstrap script
// and is not undone afterwards.
func InstallScoop(ctx context.Context, r Runner) error {
	log.Info("installing the Scoop package manager")

	err := r.Run(ctx, "powershell", "-NoProfile", "-Command",
		"Set-ExecutionPolicy RemoteSigned -Scope CurrentUser")
	if err != nil {
		return fmt.Errorf("failed to relax execution policy: %w", err)
	}

	err = r.Run(ctx, "powershell", "-NoProfile", "-Command",
		fmt.Sprintf("irm %s | iex", scoopBootstrapURL))
	if err != nil {
		return fmt.Errorf("scoop bootstrap failed: %w", err)
	}
	return nil
}

// InstallGit installs Git for Windows via Scoop. The Git distribution
// also carries the MSYS bash this tool needs for the installer script.
func InstallGit(ctx context.Context, r Runner) error {
	log.Info("installing Git")
	if err := r.Run(ctx, "scoop", "install", "git"); err != nil {
		return fmt.Errorf("failed to install git: %w", err)
	}
	return nil
}

// InstallRedist registers the extras bucket if needed and installs the
// Visual C++ redistributable package from it.
func InstallRedist(ctx context.Context, r Runner) error {
	if err := ensureExtrasBucket(ctx, r); err != nil {
		return err
	}

	log.Info("installing the Visual C++ redistributable")
	if err := r.Run(ctx, "scoop", "install", redistPackage); err != nil {
		return fmt.Errorf("failed to install %s: %w", redistPackage, err)
	}
	return nil
}

func ensureExtrasBucket(ctx context.Context, r Runner) error {
	out, err := r.Output(ctx, "scoop", "bucket", "list")
	if err == nil && strings.Contains(out, extrasBucket) {
		log.Debugf("bucket %q is already registered", extrasBucket)
		return nil
	}

	log.Infof("adding the %q bucket", extrasBucket)
	if err := r.Run(ctx, "scoop", "bucket", "add", extrasBucket); err != nil {
		return fmt.Errorf("failed to add bucket %q: %w", extrasBucket, err)
	}
	return nil
}
