package exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/tungetti/checkup/internal/errors"
)

// Executor defines the interface for command execution.
// All implementations must be safe for concurrent use.
type Executor interface {
	// Execute runs a command and returns the result.
	Execute(ctx context.Context, cmd string, args ...string) *Result

	// ExecuteWithInput runs a command with stdin input.
	ExecuteWithInput(ctx context.Context, input []byte, cmd string, args ...string) *Result

	// Stream runs a command and streams output to writers.
	Stream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) *Result

	// LookPath searches for an executable in the directories named by PATH.
	// Returns the resolved path, or an error if the binary cannot be found.
	LookPath(name string) (string, error)
}

// Options configures the executor behavior.
type Options struct {
	Timeout time.Duration // Default timeout for commands (0 = no timeout)
	WorkDir string        // Working directory for command execution
	Env     []string      // Environment variables to set
}

// DefaultOptions returns sensible defaults for command execution.
func DefaultOptions() Options {
	return Options{
		Timeout: 30 * time.Second,
	}
}

// RealExecutor is the production implementation of Executor.
// Probing never needs elevated privileges, so all commands run as the
// invoking user.
type RealExecutor struct {
	mu   sync.Mutex
	opts Options
}

// NewExecutor creates a new real executor with the given options.
func NewExecutor(opts Options) *RealExecutor {
	return &RealExecutor{opts: opts}
}

// Execute runs a command and returns the result.
func (e *RealExecutor) Execute(ctx context.Context, cmd string, args ...string) *Result {
	return e.execute(ctx, nil, nil, nil, cmd, args)
}

// ExecuteWithInput runs a command with stdin input.
func (e *RealExecutor) ExecuteWithInput(ctx context.Context, input []byte, cmd string, args ...string) *Result {
	return e.execute(ctx, input, nil, nil, cmd, args)
}

// Stream runs a command and streams output to writers while also
// capturing it in the result.
func (e *RealExecutor) Stream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) *Result {
	return e.execute(ctx, nil, stdout, stderr, cmd, args)
}

// LookPath implements Executor using the process PATH.
func (e *RealExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (e *RealExecutor) execute(ctx context.Context, input []byte, outW, errW io.Writer, cmd string, args []string) *Result {
	result := &Result{
		Command:   cmd,
		Args:      args,
		StartTime: time.Now(),
	}

	opts := e.options()

	// Apply timeout if configured
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd, args...)

	if opts.WorkDir != "" {
		c.Dir = opts.WorkDir
	}
	if len(opts.Env) > 0 {
		c.Env = opts.Env
	}
	if input != nil {
		c.Stdin = bytes.NewReader(input)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if outW != nil {
		c.Stdout = io.MultiWriter(outW, &stdoutBuf)
	} else {
		c.Stdout = &stdoutBuf
	}
	if errW != nil {
		c.Stderr = io.MultiWriter(errW, &stderrBuf)
	} else {
		c.Stderr = &stderrBuf
	}

	err := c.Run()

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Stdout = stdoutBuf.Bytes()
	result.Stderr = stderrBuf.Bytes()

	if err != nil {
		// Context errors take priority over exit errors because the
		// process may have been killed due to timeout/cancellation.
		if ctx.Err() == context.DeadlineExceeded {
			result.Error = errors.Wrap(errors.Timeout, "command timed out", err)
			result.ExitCode = -1
		} else if ctx.Err() == context.Canceled {
			result.Error = errors.Wrap(errors.Unknown, "command cancelled", err)
			result.ExitCode = -1
		} else if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Other errors (e.g., command not found)
			result.Error = errors.Wrap(errors.Execution, "command execution failed", err)
			result.ExitCode = -1
		}
	}

	return result
}

func (e *RealExecutor) options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetOptions updates the executor options.
func (e *RealExecutor) SetOptions(opts Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts = opts
}

// SetTimeout updates the default timeout.
func (e *RealExecutor) SetTimeout(timeout time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Timeout = timeout
}

// Ensure RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)
