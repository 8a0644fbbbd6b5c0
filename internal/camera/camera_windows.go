//go:build windows

package camera

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"

	"github.com/prismcam/bootstrap/internal/remedy"
)

// Register performs silent in-process COM registration of the driver
// module for one bitness. The calling process must be elevated or
// regsvr32 will fail.
func Register(ctx context.Context, r remedy.Runner, b Bitness) error {
	dll, err := filepath.Abs(ModulePath(b))
	if err != nil {
		return fmt.Errorf("failed to resolve driver module path: %w", err)
	}
	if _, err := os.Stat(dll); err != nil {
		return fmt.Errorf("driver module %s is missing: %w", dll, err)
	}

	log.Infof("registering virtual camera module %s", dll)
	if err := r.Run(ctx, "regsvr32", "/s", dll); err != nil {
		return fmt.Errorf("regsvr32 failed for %s: %w", dll, err)
	}
	return nil
}

// Registered re-probes the CLSID key for a bitness. The probes are
// independent; a missing 32-bit registration says nothing about 64-bit.
func Registered(b Bitness) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, clsidKeyPath(b), registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	if err := k.Close(); err != nil {
		log.Warnf("error closing registry key: %v", err)
	}
	return true
}
