package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zoriashe/venvup/internal/domain"
)

func TestDoctor_HealthyWorkspace(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "requirements.txt"), "streamlit\n")
	writeFile(t, filepath.Join(root, "app.py"), "")

	env := &fakeEnv{exists: true, path: filepath.Join(root, ".venv")}
	d := NewDoctor(env, fakeLocator{path: "/usr/bin/python3"})

	report := d.Execute(domain.DefaultConfig(), root)

	if !report.Launchable() {
		t.Fatalf("expected launchable workspace, got %+v", report)
	}
	if report.Interpreter != "/usr/bin/python3" {
		t.Errorf("Interpreter = %q", report.Interpreter)
	}
	if report.EnvState != domain.EnvReady {
		t.Errorf("EnvState = %q, want ready", report.EnvState)
	}
}

func TestDoctor_MissingFiles(t *testing.T) {
	root := t.TempDir()

	env := &fakeEnv{exists: false, path: filepath.Join(root, ".venv")}
	d := NewDoctor(env, fakeLocator{path: "/usr/bin/python3"})

	report := d.Execute(domain.DefaultConfig(), root)

	if report.ManifestOK || report.EntryOK {
		t.Fatalf("expected manifest and entry missing, got %+v", report)
	}
	if report.EnvState != domain.EnvAbsent {
		t.Errorf("EnvState = %q, want absent", report.EnvState)
	}
	if report.Launchable() {
		t.Fatalf("workspace without manifest/entry must not be launchable")
	}
}

func TestDoctor_BrokenEnv(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "requirements.txt"), "")
	writeFile(t, filepath.Join(root, "app.py"), "")

	env := &fakeEnv{
		exists:   true,
		path:     filepath.Join(root, ".venv"),
		checkErr: &domain.OpError{Op: "pyenv.check", Kind: domain.KindEnvBroken, Err: domain.ErrEnvBroken},
	}
	d := NewDoctor(env, fakeLocator{path: "/usr/bin/python3"})

	report := d.Execute(domain.DefaultConfig(), root)

	if report.EnvState != domain.EnvBroken {
		t.Fatalf("EnvState = %q, want broken", report.EnvState)
	}
	if report.Launchable() {
		t.Fatalf("broken env must not be launchable")
	}
}

func TestDoctor_NoInterpreter(t *testing.T) {
	root := t.TempDir()

	env := &fakeEnv{path: filepath.Join(root, ".venv")}
	d := NewDoctor(env, fakeLocator{err: domain.ErrNoInterpreter})

	report := d.Execute(domain.DefaultConfig(), root)

	if report.InterpreterErr == nil {
		t.Fatalf("expected interpreter error")
	}
	if report.Launchable() {
		t.Fatalf("workspace without interpreter must not be launchable")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
