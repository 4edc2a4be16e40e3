package pkgmgr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
)

func TestDpkgIsInstalled(t *testing.T) {
	tests := []struct {
		name     string
		response *exec.Result
		want     bool
	}{
		{
			name:     "installed",
			response: exec.SuccessResult("install ok installed"),
			want:     true,
		},
		{
			name:     "removed but known",
			response: exec.SuccessResult("deinstall ok config-files"),
			want:     false,
		},
		{
			name:     "unknown package",
			response: exec.FailureResult(1, "dpkg-query: no packages found matching foo"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := exec.NewMockExecutor()
			mock.SetResponse(constants.DpkgQuery, tt.response)
			m := NewDpkgManager(mock)

			installed, err := m.IsInstalled(context.Background(), "foo")
			require.NoError(t, err)
			assert.Equal(t, tt.want, installed)
			assert.True(t, mock.WasCalledWith(constants.DpkgQuery, "-W", "-f", "${Status}", "foo"))
		})
	}
}

func TestDpkgIsInstalledExecutionError(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetResponse(constants.DpkgQuery, exec.ErrorResult(errors.New(errors.Execution, "spawn failed")))
	m := NewDpkgManager(mock)

	_, err := m.IsInstalled(context.Background(), "foo")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.PackageManager))
}

func TestRpmIsInstalled(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetResponse(constants.Rpm, exec.SuccessResult("bash-5.2.26-1.fc40.x86_64"))
	m := NewRpmManager(mock)

	installed, err := m.IsInstalled(context.Background(), "bash")
	require.NoError(t, err)
	assert.True(t, installed)
	assert.True(t, mock.WasCalledWith(constants.Rpm, "-q", "bash"))
}

func TestRpmNotInstalled(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetResponse(constants.Rpm, exec.FailureResult(1, "package foo is not installed"))
	m := NewRpmManager(mock)

	installed, err := m.IsInstalled(context.Background(), "foo")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestPacmanIsInstalled(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetResponse(constants.Pacman, exec.SuccessResult("Name : base"))
	m := NewPacmanManager(mock)

	installed, err := m.IsInstalled(context.Background(), "base")
	require.NoError(t, err)
	assert.True(t, installed)
	assert.True(t, mock.WasCalledWith(constants.Pacman, "-Qi", "base"))
}

func TestPacmanNotInstalled(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetResponse(constants.Pacman, exec.FailureResult(1, "error: package 'foo' was not found"))
	m := NewPacmanManager(mock)

	installed, err := m.IsInstalled(context.Background(), "foo")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestManagerMetadata(t *testing.T) {
	mock := exec.NewMockExecutor()

	tests := []struct {
		manager Manager
		name    string
		family  constants.ManagerFamily
	}{
		{NewDpkgManager(mock), "dpkg", constants.FamilyDebian},
		{NewRpmManager(mock), "rpm", constants.FamilyRPM},
		{NewPacmanManager(mock), "pacman", constants.FamilyArch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.manager.Name())
			assert.Equal(t, tt.family, tt.manager.Family())
		})
	}
}

func TestIsAvailable(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetPath(constants.Rpm, "/usr/bin/rpm")

	assert.True(t, NewRpmManager(mock).IsAvailable())
	assert.False(t, NewDpkgManager(mock).IsAvailable())
	assert.False(t, NewPacmanManager(mock).IsAvailable())
}

func TestDetectPicksFirstAvailable(t *testing.T) {
	mock := exec.NewMockExecutor()
	mock.SetPath(constants.DpkgQuery, "/usr/bin/dpkg-query")
	mock.SetPath(constants.Pacman, "/usr/bin/pacman")

	m, err := Detect(mock)
	require.NoError(t, err)
	assert.Equal(t, "dpkg", m.Name())
}

func TestDetectNoneAvailable(t *testing.T) {
	mock := exec.NewMockExecutor()

	_, err := Detect(mock)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Unsupported))
}

func TestForFamily(t *testing.T) {
	mock := exec.NewMockExecutor()

	m, err := ForFamily(mock, constants.FamilyArch)
	require.NoError(t, err)
	assert.Equal(t, "pacman", m.Name())

	_, err = ForFamily(mock, constants.FamilyUnknown)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Unsupported))
}
