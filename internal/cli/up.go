package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zoriashe/venvup/internal/infra/logger"
	"github.com/zoriashe/venvup/internal/usecase"
)

func upCmd(workspace *string, debug *bool) *cobra.Command {
	var recreate bool

	c := &cobra.Command{
		Use:   "up",
		Short: "Bootstrap the virtual environment and launch the app server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUp(cmd.Context(), *workspace, recreate, *debug)
		},
	}

	c.Flags().BoolVar(&recreate, "recreate", false, "Remove an existing environment first and bootstrap from scratch")
	return c
}

func runUp(ctx context.Context, workspaceFlag string, recreate, debug bool) error {
	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		return err
	}

	cleanup, _ := logger.Setup(logger.Config{Root: ws.root, Debug: debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	uc := usecase.NewBootstrapLaunch(ws.env, ws.interp, ws.runner, ws.status, logger.L())
	return uc.Execute(ctx, ws.cfg, ws.root, usecase.Options{Recreate: recreate})
}
