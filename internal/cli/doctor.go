package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zoriashe/venvup/internal/domain"
	"github.com/zoriashe/venvup/internal/usecase"
)

func doctorCmd(workspace *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check whether the workspace can be bootstrapped and launched",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewDoctor(ws.env, ws.interp)
			report := uc.Execute(ws.cfg, ws.root)

			printReport(cmd.OutOrStdout(), ws.root, report)

			if !report.Launchable() {
				return fmt.Errorf("workspace %s is not launchable", ws.root)
			}
			return nil
		},
	}
}

func printReport(w io.Writer, root string, r usecase.DoctorReport) {
	fmt.Fprintf(w, "Workspace: %s\n\n", root)

	if r.InterpreterErr != nil {
		fmt.Fprintf(w, "%s interpreter: not found on PATH\n", mark(false))
	} else {
		fmt.Fprintf(w, "%s interpreter: %s\n", mark(true), r.Interpreter)
	}

	fmt.Fprintf(w, "%s manifest: %s%s\n", mark(r.ManifestOK), r.ManifestPath, missingSuffix(r.ManifestOK))
	fmt.Fprintf(w, "%s entry: %s%s\n", mark(r.EntryOK), r.EntryPath, missingSuffix(r.EntryOK))

	switch r.EnvState {
	case domain.EnvReady:
		fmt.Fprintf(w, "%s environment: ready (%s)\n", mark(true), r.EnvPath)
	case domain.EnvAbsent:
		fmt.Fprintf(w, "%s environment: absent, will be created on next up (%s)\n", mark(true), r.EnvPath)
	case domain.EnvBroken:
		fmt.Fprintf(w, "%s environment: broken, run `venvup clean` (%s)\n", mark(false), r.EnvPath)
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func missingSuffix(ok bool) string {
	if ok {
		return ""
	}
	return " (missing)"
}
