package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zoriashe/venvup/internal/infra/execrunner"
)

// Execute runs the CLI. The process exit code is the exit code of the last
// external command (the app server on the happy path, the failing setup
// command otherwise), matching shell-script error propagation.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(execrunner.ExitStatus(err))
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string

	cmd := &cobra.Command{
		Use:          "venvup",
		Short:        "venvup — bootstrap a Python virtual environment and launch the app server",
		SilenceUsage: true,
		// Bare `venvup` behaves like the classic run.sh: ensure the env,
		// then serve.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUp(cmd.Context(), workspace, false, debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .venvup/logs/venvup.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		upCmd(&workspace, &debug),
		doctorCmd(&workspace),
		cleanCmd(&workspace, &debug),
		versionCmd(),
	)
	return cmd
}
