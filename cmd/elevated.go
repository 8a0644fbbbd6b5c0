package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prismcam/bootstrap/internal/camera"
	"github.com/prismcam/bootstrap/internal/elevate"
	"github.com/prismcam/bootstrap/internal/remedy"
)

// The elevated command tree is the entry point for the UAC child
// process. Requests cross the process boundary as a subcommand plus
// flags, never as arbitrary payloads.
var elevatedCmd = &cobra.Command{
	Use:    "elevated",
	Short:  "internal helpers that must run with administrative privileges",
	Hidden: true,
}

var cameraBitness int

var registerCameraCmd = &cobra.Command{
	Use:   "register-camera",
	Short: "registers the virtual camera driver modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !elevate.IsElevated() {
			return errors.New("administrative privileges required")
		}

		targets := camera.Bitnesses
		switch cameraBitness {
		case 0:
		case 32:
			targets = []camera.Bitness{camera.Bitness32}
		case 64:
			targets = []camera.Bitness{camera.Bitness64}
		default:
			return fmt.Errorf("unsupported bitness %d", cameraBitness)
		}

		runner := remedy.ExecRunner{}
		for _, b := range targets {
			if err := camera.Register(cmd.Context(), runner, b); err != nil {
				// Keep going; the parent re-probes and reports each
				// bitness on its own.
				cmd.PrintErrf("driver registration (%s) failed: %v\n", b, err)
			}
		}
		return nil
	},
}

func init() {
	registerCameraCmd.Flags().IntVar(&cameraBitness, "bitness", 0,
		"register only the given driver bitness (32 or 64); default registers both")
}
