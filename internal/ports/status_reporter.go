package ports

// StatusReporter emits the fixed user-facing status lines of a bootstrap run.
// Each method is called at most once per invocation, always in declaration
// order: Creating (fresh runs only), Ready, Serving.
type StatusReporter interface {
	Creating(envDir string)
	Ready()
	Serving(url string)
}
