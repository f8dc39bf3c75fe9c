package usecase

import (
	"context"
	"log/slog"

	"github.com/zoriashe/venvup/internal/domain"
	"github.com/zoriashe/venvup/internal/ports"
)

// BootstrapLaunch runs the whole lifecycle of one invocation: ensure the
// virtual environment exists (creating it and installing the manifest on the
// fresh path), announce readiness, then hand the terminal to the application
// server until it exits.
//
// Failures stop the sequence immediately. Nothing is retried and a partially
// created environment is left in place for `doctor` to report and `clean` to
// remove.
type BootstrapLaunch struct {
	env    ports.VirtualEnv
	interp ports.InterpreterLocator
	runner ports.ProcessRunner
	status ports.StatusReporter
	log    *slog.Logger
}

func NewBootstrapLaunch(env ports.VirtualEnv, interp ports.InterpreterLocator, runner ports.ProcessRunner, status ports.StatusReporter, log *slog.Logger) *BootstrapLaunch {
	return &BootstrapLaunch{
		env:    env,
		interp: interp,
		runner: runner,
		status: status,
		log:    log,
	}
}

// Options tune a single execution.
type Options struct {
	// Recreate removes an existing environment first, forcing the fresh path.
	Recreate bool
}

func (uc *BootstrapLaunch) Execute(ctx context.Context, cfg domain.Config, root string, opts Options) error {
	if opts.Recreate && uc.env.Exists() {
		uc.log.Info("env.recreate", "path", uc.env.Path())
		if err := uc.env.Remove(); err != nil {
			return err
		}
	}

	if !uc.env.Exists() {
		if err := uc.bootstrap(ctx, cfg, root); err != nil {
			return err
		}
	} else {
		uc.log.Debug("env.reuse", "path", uc.env.Path())
	}

	uc.status.Ready()
	uc.status.Serving(cfg.URL())

	serve := domain.Command{
		Path: uc.env.Bin(cfg.Server.Command),
		Args: append([]string{"run", cfg.Paths.Entry}, cfg.Server.Args...),
		Dir:  root,
	}
	uc.log.Info("server.launch", "cmd", serve.String())

	// Blocks for the server's lifetime; its exit status is ours.
	return uc.runner.Run(ctx, serve)
}

func (uc *BootstrapLaunch) bootstrap(ctx context.Context, cfg domain.Config, root string) error {
	uc.status.Creating(uc.env.Path())

	python, err := uc.interp.Find(cfg.Python)
	if err != nil {
		return err
	}
	uc.log.Info("env.create", "interpreter", python, "path", uc.env.Path())

	create := domain.Command{
		Path: python,
		Args: []string{"-m", "venv", uc.env.Path()},
		Dir:  root,
	}
	if err := uc.runner.Run(ctx, create); err != nil {
		return err
	}

	install := domain.Command{
		Path: uc.env.Bin("pip"),
		Args: []string{"install", "-r", cfg.Paths.Manifest},
		Dir:  root,
	}
	uc.log.Info("env.install", "manifest", cfg.Paths.Manifest)
	return uc.runner.Run(ctx, install)
}
