package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoriashe/venvup/internal/infra/logger"
	"github.com/zoriashe/venvup/internal/usecase"
)

func cleanCmd(workspace *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtual environment so the next run starts fresh",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Root: ws.root, Debug: *debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewClean(ws.env, logger.L())
			path, err := uc.Execute()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "(no environment to remove)")
				return nil
			}
			fmt.Fprintf(out, "Removed %s\n", path)
			return nil
		},
	}
}
