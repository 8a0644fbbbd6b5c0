package remedy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	installerScriptName = "install.sh"
	installerScriptURL  = "https://raw.githubusercontent.com/prismcam/prism/main/install.sh"
)

// ScriptRunner executes the delegated installer script with the resolved
// bash interpreter, preferring a local copy next to the bootstrapper and
// falling back to the published one.
type ScriptRunner struct {
	Runner Runner

	// WorkDir is where the local script is looked up; defaults to the
	// current working directory.
	WorkDir string
	// ScriptURL overrides the published script location in tests.
	ScriptURL string
	// TempDir overrides os.TempDir for the downloaded copy.
	TempDir string
}

// Run executes the installer script. A downloaded copy is removed whether
// or not the script itself succeeded.
func (s *ScriptRunner) Run(ctx context.Context, bashPath string, silent bool) error {
	local := filepath.Join(s.workDir(), installerScriptName)
	if _, err := os.Stat(local); err == nil {
		log.Infof("running local installer script %s", local)
		return s.execute(ctx, bashPath, local, silent)
	}

	tmp := filepath.Join(s.tempDir(), fmt.Sprintf("prism-install-%s.sh", uuid.NewString()))
	defer func() {
		if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
			log.Warnf("failed to remove temporary script %s: %v", tmp, err)
		}
	}()

	if err := DownloadToFile(ctx, s.scriptURL(), tmp); err != nil {
		return fmt.Errorf("failed to download installer script: %w", err)
	}

	log.Infof("running downloaded installer script %s", tmp)
	return s.execute(ctx, bashPath, tmp, silent)
}

func (s *ScriptRunner) execute(ctx context.Context, bashPath, script string, silent bool) error {
	args := []string{script}
	if silent {
		args = append(args, "--silent")
	}
	if err := s.Runner.Run(ctx, bashPath, args...); err != nil {
		return fmt.Errorf("installer script failed: %w", err)
	}
	return nil
}

func (s *ScriptRunner) workDir() string {
	if s.WorkDir != "" {
		return s.WorkDir
	}
	return "."
}

func (s *ScriptRunner) scriptURL() string {
	if s.ScriptURL != "" {
		return s.ScriptURL
	}
	return installerScriptURL
}

func (s *ScriptRunner) tempDir() string {
	if s.TempDir != "" {
		return s.TempDir
	}
	return os.TempDir()
}
