package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/zoriashe/venvup/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads venvup.yaml from the workspace root and applies defaults.
// The file is optional: the original bootstrap took no input at all, so a
// missing file yields pure defaults without error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "venvup.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Venvup.Python != "" {
		cfg.Python = y.Venvup.Python
	}
	if y.Venvup.Paths.EnvDir != "" {
		cfg.Paths.EnvDir = y.Venvup.Paths.EnvDir
	}
	if y.Venvup.Paths.Manifest != "" {
		cfg.Paths.Manifest = y.Venvup.Paths.Manifest
	}
	if y.Venvup.Paths.Entry != "" {
		cfg.Paths.Entry = y.Venvup.Paths.Entry
	}
	if y.Venvup.Server.Command != "" {
		cfg.Server.Command = y.Venvup.Server.Command
	}
	if y.Venvup.Server.Host != "" {
		cfg.Server.Host = y.Venvup.Server.Host
	}
	if y.Venvup.Server.Port != nil {
		cfg.Server.Port = *y.Venvup.Server.Port
	}
	if len(y.Venvup.Server.Args) > 0 {
		cfg.Server.Args = y.Venvup.Server.Args
	}

	return cfg, nil
}

type yamlConfig struct {
	Venvup struct {
		Python string `yaml:"python"`

		Paths struct {
			EnvDir   string `yaml:"env_dir"`
			Manifest string `yaml:"manifest"`
			Entry    string `yaml:"entry"`
		} `yaml:"paths"`

		Server struct {
			Command string   `yaml:"command"`
			Host    string   `yaml:"host"`
			Port    *int     `yaml:"port"`
			Args    []string `yaml:"args"`
		} `yaml:"server"`
	} `yaml:"venvup"`
}
