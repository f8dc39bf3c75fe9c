package domain

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Python != "python3" {
		t.Errorf("Python = %q, want python3", cfg.Python)
	}
	if cfg.Paths.EnvDir != ".venv" {
		t.Errorf("EnvDir = %q, want .venv", cfg.Paths.EnvDir)
	}
	if cfg.Paths.Manifest != "requirements.txt" {
		t.Errorf("Manifest = %q, want requirements.txt", cfg.Paths.Manifest)
	}
	if cfg.Paths.Entry != "app.py" {
		t.Errorf("Entry = %q, want app.py", cfg.Paths.Entry)
	}
	if cfg.Server.Command != "streamlit" {
		t.Errorf("Server.Command = %q, want streamlit", cfg.Server.Command)
	}
}

func TestConfigURL(t *testing.T) {
	cases := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8501, "http://localhost:8501"},
		{"127.0.0.1", 9000, "http://127.0.0.1:9000"},
	}
	for _, c := range cases {
		cfg := Config{Server: ServerConfig{Host: c.host, Port: c.port}}
		if got := cfg.URL(); got != c.want {
			t.Errorf("URL() = %q, want %q", got, c.want)
		}
	}
}
