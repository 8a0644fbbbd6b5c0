package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/prismcam/bootstrap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A failing delegated tool determines our exit code; anything
		// else (decline, missing elevation) exits 1.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
