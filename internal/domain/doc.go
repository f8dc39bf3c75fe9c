// Package domain contains the core domain model for venvup.
//
// The domain is process- and filesystem-agnostic: it does not depend on
// os/exec, YAML parsing, or the filesystem. Infra/adapters map into/from
// these types.
package domain
