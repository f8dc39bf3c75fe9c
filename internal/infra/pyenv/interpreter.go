package pyenv

import (
	"os/exec"

	"github.com/zoriashe/venvup/internal/domain"
)

// Locator finds a host Python interpreter on PATH.
type Locator struct{}

func NewLocator() *Locator {
	return &Locator{}
}

// Find returns the path of the first interpreter found among the preferred
// name and the common fallbacks.
func (l *Locator) Find(preferred string) (string, error) {
	candidates := []string{"python3", "python"}
	if preferred != "" && preferred != "python3" {
		candidates = append([]string{preferred}, candidates...)
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", &domain.OpError{
		Op:   "pyenv.find_interpreter",
		Kind: domain.KindInterpreter,
		Err:  domain.ErrNoInterpreter,
	}
}
