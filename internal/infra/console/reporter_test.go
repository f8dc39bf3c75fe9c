package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterLineOrder(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Creating(".venv")
	r.Ready()
	r.Serving("http://localhost:8501")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}

	wantSubstrings := []string{
		"Creating virtual environment",
		"Dependencies ready",
		"http://localhost:8501",
		"Ctrl+C",
	}
	for i, want := range wantSubstrings {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestReporterCreatingNamesEnvDir(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Creating("/work/app/.venv")

	if !strings.Contains(buf.String(), "/work/app/.venv") {
		t.Fatalf("output = %q, want env dir path", buf.String())
	}
}
