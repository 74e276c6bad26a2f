package runner

import (
	"context"
	"sync"
)

// MockRunner implements Runner for tests: results are scripted per
// executable name, every invocation is recorded, and hooks cover error
// scenarios and filesystem side effects.
type MockRunner struct {
	mu     sync.Mutex
	runs   []Spec
	starts []Spec

	// Results maps executable name to the scripted outcome of Run. A name
	// missing from the map yields a zero Result (exit 0, no output).
	Results map[string]Result

	// RunErr maps executable name to an error returned by Run in place of a
	// result.
	RunErr map[string]error

	// LookPathErr maps executable name to an error returned by LookPath and
	// by Start for that name.
	LookPathErr map[string]error

	// StartErr, when set, is returned by every Start call.
	StartErr error

	// OnRun, when set, runs after a Run call is recorded and before its
	// scripted result is returned. Tests use it for side effects such as
	// writing the artifact file a real tool would produce.
	OnRun func(spec Spec)
}

// NewMockRunner returns an empty MockRunner ready for scripting.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Results:     make(map[string]Result),
		RunErr:      make(map[string]error),
		LookPathErr: make(map[string]error),
	}
}

// LookPath returns a fake path unless an error is scripted for name.
func (m *MockRunner) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.LookPathErr[name]; err != nil {
		return "", err
	}
	return "/usr/bin/" + name, nil
}

// Run records the call and returns the scripted result or error for
// spec.Name.
func (m *MockRunner) Run(ctx context.Context, spec Spec) (Result, error) {
	m.mu.Lock()
	m.runs = append(m.runs, spec)
	onRun := m.OnRun
	res := m.Results[spec.Name]
	err := m.RunErr[spec.Name]
	if err == nil {
		err = m.LookPathErr[spec.Name]
	}
	m.mu.Unlock()

	if onRun != nil {
		onRun(spec)
	}
	if err != nil {
		return Result{}, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	return res, nil
}

// Start records the call and returns StartErr or the scripted lookup error.
func (m *MockRunner) Start(spec Spec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts = append(m.starts, spec)
	if m.StartErr != nil {
		return m.StartErr
	}
	return m.LookPathErr[spec.Name]
}

// Runs returns a copy of the blocking invocations recorded so far.
func (m *MockRunner) Runs() []Spec {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Spec, len(m.runs))
	copy(out, m.runs)
	return out
}

// Starts returns a copy of the detached invocations recorded so far.
func (m *MockRunner) Starts() []Spec {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Spec, len(m.starts))
	copy(out, m.starts)
	return out
}

// Reset clears all recorded invocations.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = nil
	m.starts = nil
}
