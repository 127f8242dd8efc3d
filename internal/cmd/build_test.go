// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/instgen/cli/internal/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestNewBuildCmd(t *testing.T) {
	cmd := NewBuildCmd()

	assert.Equal(t, "build <manifest>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("os"))
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("script-dir"))
	assert.NotNil(t, cmd.Flags().Lookup("shebang"))
	assert.NotNil(t, cmd.Flags().Lookup("check"))
}

func TestBuild_RequiresArgs(t *testing.T) {
	err := execute(NewBuildCmd())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestBuild_NoTarget(t *testing.T) {
	appConfig = nil
	manifest := writeManifest(t, "curl: apt\n")

	err := execute(NewBuildCmd(), manifest)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Contains(t, err.Error(), "no target selected")
}

func TestBuild_UnknownTarget(t *testing.T) {
	manifest := writeManifest(t, "curl: apt\n")

	err := execute(NewBuildCmd(), manifest, "--os", "mars")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Contains(t, err.Error(), "invalid target mars")
}

func TestBuild_MissingManifest(t *testing.T) {
	err := execute(NewBuildCmd(), filepath.Join(t.TempDir(), "absent.yaml"), "--os", "fedora")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestBuild_WritesFile(t *testing.T) {
	manifest := writeManifest(t, "curl: apt\nhtop: apt\n")
	outPath := filepath.Join(t.TempDir(), "install.sh")

	err := execute(NewBuildCmd(), manifest, "--os", "ubuntu", "-o", outPath, "--shebang")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\n\nsudo apt install -y curl htop\n", string(data))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestBuild_Check(t *testing.T) {
	manifest := writeManifest(t, "mytool:\n  type: snapd\n  classic: true\n")
	outPath := filepath.Join(t.TempDir(), "install.sh")

	err := execute(NewBuildCmd(), manifest, "--os", "fedora", "-o", outPath, "--check")
	assert.NoError(t, err)
}

func TestBuild_InvalidMethodTag(t *testing.T) {
	manifest := writeManifest(t, "mystery: teleport\n")

	err := execute(NewBuildCmd(), manifest, "--os", "fedora")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
}

func TestBuild_ScriptDir(t *testing.T) {
	manifest := writeManifest(t, "setup:\n  type: bash\n  script: echo hi\n")
	scriptDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "install.sh")

	err := execute(NewBuildCmd(), manifest, "--os", "debian", "-o", outPath, "--script-dir", scriptDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(scriptDir, "setup.sh"))
}
