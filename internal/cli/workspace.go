package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zoriashe/venvup/internal/domain"
	"github.com/zoriashe/venvup/internal/infra/console"
	"github.com/zoriashe/venvup/internal/infra/execrunner"
	"github.com/zoriashe/venvup/internal/infra/pyenv"
	"github.com/zoriashe/venvup/internal/infra/workspacefinder"
	"github.com/zoriashe/venvup/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	env    ports.VirtualEnv
	interp ports.InterpreterLocator
	runner ports.ProcessRunner
	status ports.StatusReporter
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		env:    pyenv.New(root, cfg.Paths.EnvDir),
		interp: pyenv.NewLocator(),
		runner: execrunner.New(),
		status: console.New(os.Stdout),
	}, nil
}

// resolveWorkspaceRoot prefers the explicit flag, then an upward search, and
// finally the working directory itself (a configless project run in place,
// which is how the original bootstrap script was used).
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	locator := workspacefinder.NewFinder()
	root, ferr := locator.FindRoot(wd)
	if ferr != nil {
		if domain.IsKind(ferr, domain.KindNotFound) {
			return wd, nil
		}
		return "", ferr
	}
	return root, nil
}
