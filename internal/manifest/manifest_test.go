package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/checkup/internal/errors"
)

func TestDefaultList(t *testing.T) {
	entries := Default()

	require.Len(t, entries, 4)
	assert.Equal(t, "git", entries[0].Name)
	assert.Equal(t, "curl", entries[1].Name)
	assert.Equal(t, "tar", entries[2].Name)
	assert.Equal(t, "unzip", entries[3].Name)

	for _, e := range entries {
		assert.Equal(t, KindCommand, e.Kind)
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindCommand, KindLibrary, KindKernel, KindPackage, KindGoPackage} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("plugin").IsValid())
	assert.False(t, Kind("").IsValid())
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPreservesOrder(t *testing.T) {
	path := writeManifest(t, `entries:
  - name: zsh
  - name: libssl.so.3
    kind: library
  - name: loop
    kind: kernel
  - name: coreutils
    kind: package
  - name: golang.org/x/sync/errgroup
    kind: gopkg
`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, []Entry{
		{Name: "zsh", Kind: KindCommand},
		{Name: "libssl.so.3", Kind: KindLibrary},
		{Name: "loop", Kind: KindKernel},
		{Name: "coreutils", Kind: KindPackage},
		{Name: "golang.org/x/sync/errgroup", Kind: KindGoPackage},
	}, entries)
}

func TestLoadDefaultsKindToCommand(t *testing.T) {
	path := writeManifest(t, "entries:\n  - name: jq\n")

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindCommand, entries[0].Kind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.NotFound))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeManifest(t, "entries: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Configuration))
}

func TestLoadEmptyManifest(t *testing.T) {
	path := writeManifest(t, "entries: []\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Validation))
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := writeManifest(t, "entries:\n  - name: thing\n    kind: plugin\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Validation))
}

func TestLoadRejectsUnnamedEntry(t *testing.T) {
	path := writeManifest(t, "entries:\n  - kind: command\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Validation))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	in := []Entry{
		{Name: "git", Kind: KindCommand},
		{Name: "nvme", Kind: KindKernel},
	}

	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
