// Package build turns a project's sources into a simulation trace by
// sequencing the external compiler and simulation runtime through the
// process layer.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hdlbench/hdlbench/internal/runner"
)

// Input is the compile snapshot taken by the caller on its own goroutine;
// the worker never shares mutable project state.
type Input struct {
	Name    string
	Root    string
	Sources []string
}

// Result is the immutable outcome of one compile invocation.
type Result struct {
	ExitCode     int
	Stdout       string
	Stderr       string
	ArtifactPath string // set only on success
	Elapsed      time.Duration
}

// OK reports whether the compile produced a usable artifact.
func (r *Result) OK() bool {
	return r.ArtifactPath != ""
}

// Diagnostic returns the failure text: stderr, falling back to stdout when
// stderr is empty.
func (r *Result) Diagnostic() string {
	if strings.TrimSpace(r.Stderr) != "" {
		return r.Stderr
	}
	return r.Stdout
}

// Compiler builds projects. It performs no retries: a compile failure is a
// deterministic function of the source content and is reported, not
// retried.
type Compiler struct {
	runner    runner.Runner
	compiler  string
	simulator string
}

// New returns a Compiler invoking the given compiler and simulator
// executables.
func New(r runner.Runner, compiler, simulator string) *Compiler {
	return &Compiler{runner: r, compiler: compiler, simulator: simulator}
}

// Compile runs the two-stage pipeline, both stages blocking in the project
// directory so the testbench's $dumpfile lands next to the sources:
//
//	<compiler> -o <name>.vvp <sources...>
//	<simulator> <name>.vvp
//
// Output paths derive from the project name, so repeated compiles overwrite
// rather than accumulate. Success requires exit code zero from both stages
// and the artifact existing on disk afterwards; the exit code alone is not
// trusted. Invocation-level failures (tool missing, spawn errors) come back
// as a Go error without a Result.
func (c *Compiler) Compile(ctx context.Context, in Input) (*Result, error) {
	started := time.Now()
	intermediate := in.Name + ".vvp"
	artifactName := in.Name + ".vcd"
	res := &Result{}

	args := []string{"-o", intermediate}
	for _, src := range in.Sources {
		args = append(args, relToRoot(in.Root, src))
	}
	compileRes, err := c.runner.Run(ctx, runner.Spec{Name: c.compiler, Args: args, Dir: in.Root})
	if err != nil {
		return nil, err
	}
	res.ExitCode = compileRes.ExitCode
	res.Stdout = compileRes.Stdout
	res.Stderr = compileRes.Stderr
	if compileRes.ExitCode != 0 {
		res.Elapsed = time.Since(started)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	simRes, err := c.runner.Run(ctx, runner.Spec{Name: c.simulator, Args: []string{intermediate}, Dir: in.Root})
	if err != nil {
		return nil, err
	}
	res.ExitCode = simRes.ExitCode
	res.Stdout = joinOutput(res.Stdout, simRes.Stdout)
	res.Stderr = joinOutput(res.Stderr, simRes.Stderr)
	if simRes.ExitCode != 0 {
		res.Elapsed = time.Since(started)
		return res, nil
	}

	artifact := filepath.Join(in.Root, artifactName)
	if _, statErr := os.Stat(artifact); statErr != nil {
		res.Stderr = joinOutput(res.Stderr,
			fmt.Sprintf("missing artifact: expected %s after a clean run", artifactName))
		res.Elapsed = time.Since(started)
		return res, nil
	}

	res.ArtifactPath = artifact
	res.Elapsed = time.Since(started)
	return res, nil
}

func joinOutput(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if strings.HasSuffix(a, "\n") {
		return a + b
	}
	return a + "\n" + b
}

func relToRoot(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
