package domain

import "fmt"

// Config represents the minimal venvup configuration loaded from venvup.yaml.
type Config struct {
	Python string
	Paths  PathsConfig
	Server ServerConfig
}

// PathsConfig names the workspace files the bootstrap depends on, relative
// to the workspace root.
type PathsConfig struct {
	EnvDir   string
	Manifest string
	Entry    string
}

// ServerConfig describes the application server launched after bootstrap.
// Command is resolved inside the virtual environment, never on the host PATH.
type ServerConfig struct {
	Command string
	Host    string
	Port    int
	Args    []string
}

// DefaultConfig provides sane defaults if venvup.yaml is missing or partial.
// The defaults reproduce the classic bootstrap script: python3 -m venv .venv,
// pip install -r requirements.txt, streamlit run app.py on localhost:8501.
func DefaultConfig() Config {
	return Config{
		Python: "python3",
		Paths: PathsConfig{
			EnvDir:   ".venv",
			Manifest: "requirements.txt",
			Entry:    "app.py",
		},
		Server: ServerConfig{
			Command: "streamlit",
			Host:    "localhost",
			Port:    8501,
		},
	}
}

// URL is the address announced to the user before the server starts. The
// launcher itself never binds it; the launched server does.
func (c Config) URL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}
