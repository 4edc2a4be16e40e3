package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/checkup/internal/constants"
)

func TestRunVersion(t *testing.T) {
	code := NewCLI().Run([]string{"version"})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}

func TestRunHelp(t *testing.T) {
	code := NewCLI().Run([]string{"help"})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}

func TestRunHelpFlag(t *testing.T) {
	code := NewCLI().Run([]string{"--help"})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}

func TestRunUnknownCommand(t *testing.T) {
	code := NewCLI().Run([]string{"frobnicate"})
	assert.Equal(t, constants.ExitValidation.Int(), code)
}

func TestRunCheckMissingManifest(t *testing.T) {
	code := NewCLI().Run([]string{"check", "--manifest", "/nonexistent/deps.yaml"})
	assert.Equal(t, constants.ExitValidation.Int(), code)
}

func TestRunListWithManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.yaml")
	content := `entries:
  - name: git
    kind: command
  - name: loop
    kind: kernel
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	code := NewCLI().Run([]string{"list", "--manifest", path})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}

func TestRunCheckExitsZeroRegardlessOfOutcomes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.yaml")
	content := `entries:
  - name: sh
    kind: command
  - name: __definitely_not_a_real_module__
    kind: command
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	code := NewCLI().Run([]string{"--quiet", "check", "--manifest", path})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}

func TestRunListDefault(t *testing.T) {
	code := NewCLI().Run([]string{"list"})
	assert.Equal(t, constants.ExitSuccess.Int(), code)
}
