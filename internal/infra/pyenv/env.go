// Package pyenv is the filesystem adapter for Python virtual environments:
// layout of the env directory, explicit binary resolution, and health checks.
package pyenv

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/zoriashe/venvup/internal/domain"
)

// Env represents the virtual environment directory of one workspace.
type Env struct {
	root string
	dir  string
}

// New returns an Env for the environment named dir under the workspace root.
func New(root, dir string) *Env {
	return &Env{root: filepath.Clean(root), dir: dir}
}

func (e *Env) Path() string {
	if filepath.IsAbs(e.dir) {
		return filepath.Clean(e.dir)
	}
	return filepath.Join(e.root, e.dir)
}

func (e *Env) Exists() bool {
	info, err := os.Stat(e.Path())
	return err == nil && info.IsDir()
}

// Bin resolves a tool name to its path inside the environment. This replaces
// shell activation: callers invoke the environment's own binaries directly
// instead of mutating PATH for a shell session.
func (e *Env) Bin(name string) string {
	sub := "bin"
	if runtime.GOOS == "windows" {
		sub = "Scripts"
		name += ".exe"
	}
	return filepath.Join(e.Path(), sub, name)
}

// Check verifies that an existing directory is a usable venv. The venv module
// writes pyvenv.cfg last, so its absence marks an interrupted or failed
// creation.
func (e *Env) Check() error {
	if !e.Exists() {
		return &domain.OpError{
			Op:   "pyenv.check",
			Kind: domain.KindNotFound,
			Path: e.Path(),
			Err:  domain.ErrNotFound,
		}
	}

	cfg := filepath.Join(e.Path(), "pyvenv.cfg")
	if _, err := os.Stat(cfg); err != nil {
		return &domain.OpError{
			Op:   "pyenv.check",
			Kind: domain.KindEnvBroken,
			Path: cfg,
			Err:  domain.ErrEnvBroken,
		}
	}
	return nil
}

// State classifies the environment for diagnostics.
func (e *Env) State() domain.EnvState {
	if !e.Exists() {
		return domain.EnvAbsent
	}
	if err := e.Check(); err != nil {
		return domain.EnvBroken
	}
	return domain.EnvReady
}

func (e *Env) Remove() error {
	if err := os.RemoveAll(e.Path()); err != nil {
		return &domain.OpError{
			Op:   "pyenv.remove",
			Kind: domain.KindExecution,
			Path: e.Path(),
			Err:  err,
		}
	}
	return nil
}
