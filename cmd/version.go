package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prismcam/bootstrap/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the bootstrapper version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.BootstrapVersion())
	},
}
