package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecRunner runs real processes via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// LookPath resolves name against PATH. Names containing a path separator are
// checked directly, so configured absolute tool paths work too.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrToolNotFound)
	}
	return path, nil
}

// Run spawns the process described by spec, waits for it, and captures both
// output streams. A non-zero exit comes back as Result.ExitCode, not as an
// error.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) (Result, error) {
	path, err := r.LookPath(spec.Name)
	if err != nil {
		return Result{}, err
	}

	cmd := exec.CommandContext(ctx, path, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("%s: %w: %v", spec.Name, ErrSpawnFailed, err)
	}

	err = cmd.Wait()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("%s: %w: %v", spec.Name, ErrIOCaptureFailed, err)
	}
	return res, nil
}

// Start spawns the process detached. stdout and stderr go to the null
// device; the child is reaped in the background so it never lingers as a
// zombie, and it is never terminated by this process.
func (r *ExecRunner) Start(spec Spec) error {
	path, err := r.LookPath(spec.Name)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w: %v", spec.Name, ErrSpawnFailed, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
