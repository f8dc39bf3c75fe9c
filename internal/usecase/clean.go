package usecase

import (
	"log/slog"

	"github.com/zoriashe/venvup/internal/ports"
)

// Clean removes the virtual environment so the next run takes the fresh path.
type Clean struct {
	env ports.VirtualEnv
	log *slog.Logger
}

func NewClean(env ports.VirtualEnv, log *slog.Logger) *Clean {
	return &Clean{env: env, log: log}
}

// Execute returns the removed path, or "" if there was nothing to remove.
func (uc *Clean) Execute() (string, error) {
	if !uc.env.Exists() {
		return "", nil
	}

	path := uc.env.Path()
	uc.log.Info("env.clean", "path", path)
	if err := uc.env.Remove(); err != nil {
		return "", err
	}
	return path, nil
}
