package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Unknown, "Unknown"},
		{Probe, "Probe"},
		{PackageManager, "PackageManager"},
		{Configuration, "Configuration"},
		{Validation, "Validation"},
		{Execution, "Execution"},
		{Timeout, "Timeout"},
		{NotFound, "NotFound"},
		{Unsupported, "Unsupported"},
		{Code(99), "Code(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := stderrors.New("underlying")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(Probe, "probe failed"),
			want: "probe failed",
		},
		{
			name: "with op",
			err:  New(Probe, "probe failed").WithOp("probe.Check"),
			want: "probe.Check: probe failed",
		},
		{
			name: "with cause",
			err:  Wrap(Execution, "command failed", cause),
			want: "command failed: underlying",
		},
		{
			name: "with op and cause",
			err:  Wrap(Execution, "command failed", cause).WithOp("exec.Execute"),
			want: "exec.Execute: command failed: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(Validation, "unknown kind %q", "plugin")
	assert.Equal(t, `unknown kind "plugin"`, err.Message)
	assert.Equal(t, Validation, err.Code)
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(Configuration, cause, "loading %s", "config.yaml")
	assert.Equal(t, "loading config.yaml", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(Execution, "wrapper", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(Timeout, "slow probe")

	assert.True(t, stderrors.Is(err, ErrTimeout))
	assert.False(t, stderrors.Is(err, ErrNoManager))
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(Unsupported, "no manager")
	outer := fmt.Errorf("context: %w", inner)

	assert.True(t, stderrors.Is(outer, ErrNoManager))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, Configuration, GetCode(New(Configuration, "bad config")))
	assert.Equal(t, Unknown, GetCode(stderrors.New("plain error")))
	assert.Equal(t, Unknown, GetCode(nil))
}

func TestIsCode(t *testing.T) {
	err := Wrap(NotFound, "missing manifest", stderrors.New("open: no such file"))

	assert.True(t, IsCode(err, NotFound))
	assert.False(t, IsCode(err, Execution))
}
