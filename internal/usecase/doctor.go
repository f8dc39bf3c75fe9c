package usecase

import (
	"os"
	"path/filepath"

	"github.com/zoriashe/venvup/internal/domain"
	"github.com/zoriashe/venvup/internal/ports"
)

// Doctor inspects a workspace without changing it.
type Doctor struct {
	env    ports.VirtualEnv
	interp ports.InterpreterLocator
}

func NewDoctor(env ports.VirtualEnv, interp ports.InterpreterLocator) *Doctor {
	return &Doctor{env: env, interp: interp}
}

// DoctorReport is the outcome of every check. Launchable is true when a
// subsequent `up` could reach the server launch.
type DoctorReport struct {
	Interpreter    string
	InterpreterErr error

	ManifestPath string
	ManifestOK   bool

	EntryPath string
	EntryOK   bool

	EnvPath  string
	EnvState domain.EnvState
}

func (r DoctorReport) Launchable() bool {
	return r.InterpreterErr == nil && r.ManifestOK && r.EntryOK && r.EnvState != domain.EnvBroken
}

func (d *Doctor) Execute(cfg domain.Config, root string) DoctorReport {
	report := DoctorReport{
		ManifestPath: filepath.Join(root, cfg.Paths.Manifest),
		EntryPath:    filepath.Join(root, cfg.Paths.Entry),
		EnvPath:      d.env.Path(),
	}

	report.Interpreter, report.InterpreterErr = d.interp.Find(cfg.Python)
	report.ManifestOK = fileExists(report.ManifestPath)
	report.EntryOK = fileExists(report.EntryPath)

	report.EnvState = domain.EnvAbsent
	if d.env.Exists() {
		report.EnvState = domain.EnvReady
		if err := d.env.Check(); err != nil {
			report.EnvState = domain.EnvBroken
		}
	}

	return report
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
