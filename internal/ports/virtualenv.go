package ports

// VirtualEnv models one virtual environment directory inside a workspace.
// Existence of the directory is the "setup already done" sentinel.
type VirtualEnv interface {
	// Exists reports whether the environment directory is present.
	Exists() bool
	// Path returns the absolute path of the environment directory.
	Path() string
	// Bin resolves a tool name to its path inside the environment,
	// the explicit replacement for shell "activation".
	Bin(name string) string
	// Check verifies that an existing directory is a usable environment.
	Check() error
	// Remove deletes the environment directory tree.
	Remove() error
}
