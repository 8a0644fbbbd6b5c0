package cmd

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/prismcam/bootstrap/internal/bootstrap"
	"github.com/prismcam/bootstrap/internal/prompt"
	"github.com/prismcam/bootstrap/util"
)

var (
	promptMode bool
	logLevel   string
	logFile    string

	rootCmd = &cobra.Command{
		Use:   "prism-bootstrap",
		Short: "Prepares a Windows machine and installs the Prism desktop app",
		Long: "prism-bootstrap ensures an MSYS bash interpreter and the Visual C++ runtime are\n" +
			"available, delegates the installation to the Prism installer script, creates a\n" +
			"Start Menu shortcut and registers the virtual camera driver.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setFlagsFromEnvVars(cmd.Root())
			return util.InitLog(logLevel, logFile)
		},
		RunE: runBootstrap,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&promptMode, "prompt", "p", false,
		"ask for confirmation before each install step instead of proceeding silently")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "sets the bootstrap log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "console",
		"sets the bootstrap log path. If console is specified the log will be output to stdout")

	rootCmd.AddCommand(elevatedCmd)
	rootCmd.AddCommand(versionCmd)
	elevatedCmd.AddCommand(registerCameraCmd)
}

// setFlagsFromEnvVars reads and updates flag values from environment
// variables with prefix PRISM_
func setFlagsFromEnvVars(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.VisitAll(func(f *pflag.Flag) {
		envVar := flagNameToEnvVar(f.Name, "PRISM_")
		if value, present := os.LookupEnv(envVar); present {
			if err := flags.Set(f.Name, value); err != nil {
				log.Infof("unable to configure flag %s using variable %s, err: %v", f.Name, envVar, err)
			}
		}
	})
}

func flagNameToEnvVar(cmdFlag string, prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(cmdFlag, "-", "_"))
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg := bootstrap.Config{Prompt: promptMode}
	gate := prompt.NewGate(cfg.Prompt, cmd.InOrStdin(), cmd.OutOrStdout())

	b := bootstrap.New(cfg, newMachineSystem(), newMachineActions(), gate)
	return b.Run(cmd.Context())
}
