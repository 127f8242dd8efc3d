package build

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
	"github.com/instgen/cli/internal/testutil"
)

// Each input manifest under testdata/inputs has one expected script per
// target under testdata/outputs/<target>.
func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "inputs", "*.yml"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	targets := []platform.Target{platform.TargetFedora, platform.TargetUbuntu}

	for _, input := range inputs {
		base := strings.TrimSuffix(filepath.Base(input), ".yml")
		for _, target := range targets {
			t.Run(base+"/"+target.String(), func(t *testing.T) {
				expectedPath := filepath.Join("testdata", "outputs", target.String(), base+".sh")
				expected := testutil.ReadFile(t, expectedPath)

				m, err := manifest.Load(input)
				require.NoError(t, err)
				gen, err := New(m)
				require.NoError(t, err)
				text, err := gen.Generate(Options{Target: target, ScriptDir: t.TempDir()})
				require.NoError(t, err)

				assert.Equal(t, strings.TrimRight(expected, "\n"), text)
			})
		}
	}
}
