package ports

// InterpreterLocator finds a Python interpreter to create environments with.
// The preferred name is tried first, then common fallbacks.
type InterpreterLocator interface {
	Find(preferred string) (string, error)
}
