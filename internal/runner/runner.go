// Package runner is the process-invocation layer: one uniform interface for
// running external executables, either blocking with captured output or
// detached. It performs no retries; retry policy, if any, belongs to callers.
package runner

import (
	"context"
	"errors"
)

// Invocation failures. A non-zero exit code is not an error; it is reported
// through Result.ExitCode.
var (
	// ErrToolNotFound indicates the executable could not be located.
	ErrToolNotFound = errors.New("tool not found")
	// ErrSpawnFailed indicates the OS could not start the process.
	ErrSpawnFailed = errors.New("spawn failed")
	// ErrIOCaptureFailed indicates the process ended without a usable exit
	// status or its output streams could not be read.
	ErrIOCaptureFailed = errors.New("output capture failed")
)

// Spec describes a single external invocation.
type Spec struct {
	Name string   // executable name or path, resolved against the search path
	Args []string // arguments, excluding the executable itself
	Dir  string   // working directory; empty inherits the parent's
	Env  []string // extra environment entries appended to the parent's
}

// Result is the captured outcome of one blocking invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner invokes external executables. Implementations must be safe for
// concurrent use.
type Runner interface {
	// LookPath resolves an executable name against the search path and
	// wraps ErrToolNotFound when it cannot be found.
	LookPath(name string) (string, error)

	// Run spawns the process and waits for it to terminate, capturing both
	// output streams. Cancelling ctx kills the process and returns the
	// context's error.
	Run(ctx context.Context, spec Spec) (Result, error)

	// Start spawns the process detached and returns once it has started.
	// The caller never learns the process's eventual exit status.
	Start(spec Spec) error
}
