package ports

import (
	"context"

	"github.com/zoriashe/venvup/internal/domain"
)

// ProcessRunner executes a single external command and propagates its exit
// status as the returned error. Implementations inherit the caller's stdio so
// the child owns the terminal for as long as it runs.
type ProcessRunner interface {
	Run(ctx context.Context, cmd domain.Command) error
}
