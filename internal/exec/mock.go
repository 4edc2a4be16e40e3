package exec

import (
	"context"
	"io"
	"sync"
	"time"
)

// MockExecutor is a test implementation of Executor that records calls
// and returns pre-configured responses. It is safe for concurrent use.
type MockExecutor struct {
	mu            sync.Mutex
	responses     map[string]*Result
	paths         map[string]string
	calls         []MockCall
	defaultResult *Result
}

// MockCall records a call to the mock executor.
type MockCall struct {
	Command string   // The command that was called
	Args    []string // The arguments passed
	Input   []byte   // The input provided (for ExecuteWithInput)
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		responses: make(map[string]*Result),
		paths:     make(map[string]string),
	}
}

// SetResponse sets a canned response for a specific command.
// The command name is the lookup key.
func (m *MockExecutor) SetResponse(cmd string, result *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[cmd] = result
}

// SetDefaultResponse sets the response for commands without a specific response.
func (m *MockExecutor) SetDefaultResponse(result *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResult = result
}

// SetPath registers a binary as findable by LookPath at the given path.
func (m *MockExecutor) SetPath(name, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths[name] = path
}

// Calls returns a copy of all recorded calls made to the mock.
func (m *MockExecutor) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall{}, m.calls...)
}

// CallCount returns the number of calls made to the mock.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastCall returns the most recent call, or an empty MockCall if no calls were made.
func (m *MockExecutor) LastCall() MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return MockCall{}
	}
	return m.calls[len(m.calls)-1]
}

// WasCalledWith returns true if the given command was called with the specified args.
func (m *MockExecutor) WasCalledWith(cmd string, args ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, call := range m.calls {
		if call.Command == cmd && slicesEqual(call.Args, args) {
			return true
		}
	}
	return false
}

// Reset clears all recorded calls but keeps responses.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Execute implements Executor.
func (m *MockExecutor) Execute(ctx context.Context, cmd string, args ...string) *Result {
	return m.record(cmd, args, nil)
}

// ExecuteWithInput implements Executor.
func (m *MockExecutor) ExecuteWithInput(ctx context.Context, input []byte, cmd string, args ...string) *Result {
	return m.record(cmd, args, input)
}

// Stream implements Executor.
func (m *MockExecutor) Stream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) *Result {
	result := m.record(cmd, args, nil)
	if stdout != nil && result.Stdout != nil {
		stdout.Write(result.Stdout)
	}
	if stderr != nil && result.Stderr != nil {
		stderr.Write(result.Stderr)
	}
	return result
}

// LookPath implements Executor using the registered paths.
func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if path, ok := m.paths[name]; ok {
		return path, nil
	}
	return "", &lookPathError{name: name}
}

type lookPathError struct {
	name string
}

func (e *lookPathError) Error() string {
	return "executable not found in mock PATH: " + e.name
}

func (m *MockExecutor) record(cmd string, args []string, input []byte) *Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Command: cmd,
		Args:    args,
		Input:   input,
	})

	if result, ok := m.responses[cmd]; ok {
		return copyResult(result, cmd, args)
	}
	if m.defaultResult != nil {
		return copyResult(m.defaultResult, cmd, args)
	}

	// Default: a successful empty result
	now := time.Now()
	return &Result{
		Command:   cmd,
		Args:      args,
		ExitCode:  0,
		StartTime: now,
		EndTime:   now,
	}
}

// copyResult returns a copy of the canned result with command info filled in.
func copyResult(r *Result, cmd string, args []string) *Result {
	return &Result{
		Command:   cmd,
		Args:      args,
		Stdout:    r.Stdout,
		Stderr:    r.Stderr,
		ExitCode:  r.ExitCode,
		Duration:  r.Duration,
		Error:     r.Error,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// SuccessResult creates a successful result with the given stdout.
func SuccessResult(stdout string) *Result {
	now := time.Now()
	return &Result{
		ExitCode:  0,
		Stdout:    []byte(stdout),
		StartTime: now,
		EndTime:   now,
	}
}

// FailureResult creates a failed result with the given exit code and stderr.
func FailureResult(exitCode int, stderr string) *Result {
	now := time.Now()
	return &Result{
		ExitCode:  exitCode,
		Stderr:    []byte(stderr),
		StartTime: now,
		EndTime:   now,
	}
}

// ErrorResult creates a result with an execution error.
func ErrorResult(err error) *Result {
	now := time.Now()
	return &Result{
		ExitCode:  -1,
		Error:     err,
		StartTime: now,
		EndTime:   now,
	}
}

// Ensure MockExecutor implements Executor.
var _ Executor = (*MockExecutor)(nil)
