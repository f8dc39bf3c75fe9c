// Package execrunner runs external commands with inherited stdio.
package execrunner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/zoriashe/venvup/internal/domain"
)

// Runner executes commands on the host, wiring the child to the launcher's
// own stdio. It installs no signal handlers: the child shares the process
// group, so terminal interrupts (Ctrl+C) reach it directly and the launcher
// simply waits for it to exit.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Runner)

// WithStdio redirects the child's stdio, used by tests.
func WithStdio(in io.Reader, out, errw io.Writer) Option {
	return func(r *Runner) {
		r.stdin = in
		r.stdout = out
		r.stderr = errw
	}
}

func New(opts ...Option) *Runner {
	r := &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run starts the command and blocks until it exits. A nonzero exit comes back
// wrapped in an OpError whose cause chain still carries *exec.ExitError, so
// ExitStatus can recover the child's code.
func (r *Runner) Run(ctx context.Context, c domain.Command) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return &domain.OpError{
			Op:   "execrunner.run",
			Kind: domain.KindExecution,
			Path: c.Path,
			Err:  err,
		}
	}
	return nil
}

// ExitStatus maps an error from Run to a process exit code: the child's own
// code when it ran and failed, 1 for everything else, 0 for nil.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}
