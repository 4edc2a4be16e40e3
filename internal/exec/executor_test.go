package exec

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/checkup/internal/errors"
)

func TestExecuteCapturesStdout(t *testing.T) {
	e := NewExecutor(DefaultOptions())

	result := e.Execute(context.Background(), "echo", "hello")

	require.True(t, result.Success())
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.StdoutString())
	assert.Equal(t, "echo", result.Command)
	assert.Equal(t, []string{"hello"}, result.Args)
}

func TestExecuteNonZeroExit(t *testing.T) {
	e := NewExecutor(DefaultOptions())

	result := e.Execute(context.Background(), "sh", "-c", "exit 3")

	assert.True(t, result.Failed())
	assert.Equal(t, 3, result.ExitCode)
	assert.NoError(t, result.Error)
}

func TestExecuteCommandNotFound(t *testing.T) {
	e := NewExecutor(DefaultOptions())

	result := e.Execute(context.Background(), "definitely-not-a-real-binary-xyz")

	assert.True(t, result.Failed())
	assert.Equal(t, -1, result.ExitCode)
	require.Error(t, result.Error)
	assert.True(t, errors.IsCode(result.Error, errors.Execution))
}

func TestExecuteTimeout(t *testing.T) {
	e := NewExecutor(Options{Timeout: 50 * time.Millisecond})

	result := e.Execute(context.Background(), "sleep", "5")

	assert.True(t, result.Failed())
	require.Error(t, result.Error)
	assert.True(t, errors.IsCode(result.Error, errors.Timeout))
}

func TestExecuteCancelled(t *testing.T) {
	e := NewExecutor(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := e.Execute(ctx, "sleep", "5")

	assert.True(t, result.Failed())
	require.Error(t, result.Error)
}

func TestExecuteWithInput(t *testing.T) {
	e := NewExecutor(DefaultOptions())

	result := e.ExecuteWithInput(context.Background(), []byte("piped input"), "cat")

	require.True(t, result.Success())
	assert.Equal(t, "piped input", result.StdoutString())
}

func TestStreamWritesAndCaptures(t *testing.T) {
	e := NewExecutor(DefaultOptions())
	var stdout, stderr bytes.Buffer

	result := e.Stream(context.Background(), &stdout, &stderr, "sh", "-c", "echo out; echo err >&2")

	require.True(t, result.Success())
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
	assert.Equal(t, "out\n", result.StdoutString())
	assert.Equal(t, "err\n", result.StderrString())
}

func TestLookPath(t *testing.T) {
	e := NewExecutor(DefaultOptions())

	path, err := e.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = e.LookPath("definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}

func TestSetTimeout(t *testing.T) {
	e := NewExecutor(Options{})
	e.SetTimeout(time.Minute)
	assert.Equal(t, time.Minute, e.options().Timeout)
}

func TestResultHelpers(t *testing.T) {
	r := &Result{Stdout: []byte("a\nb\n"), ExitCode: 0}

	assert.True(t, r.Success())
	assert.False(t, r.Failed())
	assert.True(t, r.HasOutput())
	assert.Equal(t, []string{"a", "b"}, r.StdoutLines())

	empty := &Result{}
	assert.Empty(t, empty.StdoutLines())
	assert.False(t, empty.HasOutput())
}

func TestMockExecutorResponses(t *testing.T) {
	m := NewMockExecutor()
	m.SetResponse("ldconfig", SuccessResult("libssl.so.3 (libc6,x86-64) => /lib/libssl.so.3"))

	result := m.Execute(context.Background(), "ldconfig", "-p")

	assert.True(t, result.Success())
	assert.Contains(t, result.StdoutString(), "libssl.so.3")
	assert.Equal(t, []string{"-p"}, result.Args)
	assert.True(t, m.WasCalledWith("ldconfig", "-p"))
	assert.Equal(t, 1, m.CallCount())
}

func TestMockExecutorDefaultResponse(t *testing.T) {
	m := NewMockExecutor()
	m.SetDefaultResponse(FailureResult(1, "nope"))

	result := m.Execute(context.Background(), "anything")

	assert.True(t, result.Failed())
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "nope", result.StderrString())
}

func TestMockExecutorUnconfiguredIsSuccess(t *testing.T) {
	m := NewMockExecutor()

	result := m.Execute(context.Background(), "anything")

	assert.True(t, result.Success())
}

func TestMockExecutorLookPath(t *testing.T) {
	m := NewMockExecutor()
	m.SetPath("git", "/usr/bin/git")

	path, err := m.LookPath("git")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/git", path)

	_, err = m.LookPath("curl")
	assert.Error(t, err)
}

func TestMockExecutorReset(t *testing.T) {
	m := NewMockExecutor()
	m.Execute(context.Background(), "one")
	m.Reset()

	assert.Equal(t, 0, m.CallCount())
	assert.Equal(t, MockCall{}, m.LastCall())
}

func TestErrorResult(t *testing.T) {
	cause := errors.New(errors.Execution, "spawn failed")
	r := ErrorResult(cause)

	assert.True(t, r.Failed())
	assert.Equal(t, -1, r.ExitCode)
	assert.Equal(t, cause, r.Error)
}
