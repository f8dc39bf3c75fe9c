package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveWorkspaceRoot_FlagWins(t *testing.T) {
	tmp := t.TempDir()

	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("resolveWorkspaceRoot: %v", err)
	}
	if got != tmp {
		t.Fatalf("root = %q, want %q", got, tmp)
	}
}

func TestResolveWorkspaceRoot_FindsMarkedRootAbove(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "venvup.yaml"), []byte("venvup: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	chdir(t, nested)
	got, err := resolveWorkspaceRoot("")
	if err != nil {
		t.Fatalf("resolveWorkspaceRoot: %v", err)
	}
	if resolved, _ := filepath.EvalSymlinks(got); resolved != mustEval(t, tmp) {
		t.Fatalf("root = %q, want %q", got, tmp)
	}
}

func TestResolveWorkspaceRoot_FallsBackToCwd(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	got, err := resolveWorkspaceRoot("")
	if err != nil {
		t.Fatalf("resolveWorkspaceRoot: %v", err)
	}
	if resolved, _ := filepath.EvalSymlinks(got); resolved != mustEval(t, tmp) {
		t.Fatalf("root = %q, want cwd %q", got, tmp)
	}
}

func TestLoadWorkspace_ConfigOverridesApplied(t *testing.T) {
	tmp := t.TempDir()
	content := "venvup:\n  paths:\n    env_dir: .env310\n"
	if err := os.WriteFile(filepath.Join(tmp, "venvup.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ws, err := loadWorkspace(tmp)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}
	if ws.cfg.Paths.EnvDir != ".env310" {
		t.Fatalf("EnvDir = %q, want .env310", ws.cfg.Paths.EnvDir)
	}
	if ws.env.Path() != filepath.Join(tmp, ".env310") {
		t.Fatalf("env path = %q", ws.env.Path())
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "venvup") {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestDoctorCmd_EmptyWorkspaceFails(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("PATH", tmp) // no interpreter either

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"doctor", "-w", tmp})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected doctor to fail on an empty workspace")
	}
	if !strings.Contains(out.String(), "Workspace:") {
		t.Fatalf("report missing from output: %q", out.String())
	}
}

func TestCleanCmd_NothingToRemove(t *testing.T) {
	tmp := t.TempDir()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"clean", "-w", tmp})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "no environment to remove") {
		t.Fatalf("output = %q", out.String())
	}
}

// chdir mirrors t.Chdir (Go 1.24+) for the Go 1.21 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Chdir(%q): %v", prev, err)
		}
	})
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks(%q): %v", path, err)
	}
	return resolved
}
