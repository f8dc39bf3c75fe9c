package domain

import "strings"

// Command is a single external invocation of the bootstrap sequence: an
// executable path, its arguments, and the directory to run it in.
type Command struct {
	Path string
	Args []string
	Dir  string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// EnvState classifies the virtual environment directory.
type EnvState string

const (
	// EnvAbsent means the environment directory does not exist (fresh run).
	EnvAbsent EnvState = "absent"
	// EnvReady means the directory exists and looks like a usable venv.
	EnvReady EnvState = "ready"
	// EnvBroken means the directory exists but is not a usable venv,
	// typically left behind by an interrupted or failed bootstrap.
	EnvBroken EnvState = "broken"
)
