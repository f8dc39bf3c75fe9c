package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/zoriashe/venvup/internal/domain"
)

// Finder locates a venvup workspace root by searching upward. A directory is
// a root when it holds venvup.yaml, or failing that, when it holds both the
// entry file and the dependency manifest (a configless project laid out the
// classic way).
type Finder struct {
	ConfigFile string // defaults to "venvup.yaml"
	Entry      string // defaults to "app.py"
	Manifest   string // defaults to "requirements.txt"
}

func NewFinder() *Finder {
	defaults := domain.DefaultConfig()
	return &Finder{
		ConfigFile: "venvup.yaml",
		Entry:      defaults.Paths.Entry,
		Manifest:   defaults.Paths.Manifest,
	}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if fileExists(filepath.Join(cur, f.ConfigFile)) {
			return cur, nil
		}
		if fileExists(filepath.Join(cur, f.Entry)) && fileExists(filepath.Join(cur, f.Manifest)) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
