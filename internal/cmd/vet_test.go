package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/instgen/cli/internal/errors"
)

func TestNewVetCmd(t *testing.T) {
	cmd := NewVetCmd()

	assert.Equal(t, "vet <manifest>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("os"))
}

func TestVet_RequiresArgs(t *testing.T) {
	err := execute(NewVetCmd())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestVet_ValidManifest(t *testing.T) {
	manifest := writeManifest(t, "htop: dnf\ncurl: apt\n")

	assert.NoError(t, execute(NewVetCmd(), manifest))
	assert.NoError(t, execute(NewVetCmd(), manifest, "--os", "fedora"))
}

func TestVet_InvalidMethodTag(t *testing.T) {
	manifest := writeManifest(t, "mystery: teleport\n")

	err := execute(NewVetCmd(), manifest)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Contains(t, err.Error(), "mystery")
}

func TestVet_UnknownTarget(t *testing.T) {
	manifest := writeManifest(t, "curl: apt\n")

	err := execute(NewVetCmd(), manifest, "--os", "mars")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
}

func TestVet_MissingManifest(t *testing.T) {
	err := execute(NewVetCmd(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}
