package methods

import (
	"strings"

	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
)

// githubMethod clones a repository into a name-scoped directory, runs the
// build script inside a subshell, and removes the clone.
type githubMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newGithub(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &githubMethod{name: name, spec: spec}, nil, nil
}

func (m *githubMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *githubMethod) InstallCommands(target platform.Target) ([]string, error) {
	if m.spec.Repo.Ref == "" {
		return nil, oerrors.NewFieldError(m.name, "repo", "missing required field for github method")
	}
	if m.spec.InstallScript == "" {
		return nil, oerrors.NewFieldError(m.name, "install_script", "missing required field for github method")
	}

	cmds := []string{
		"git clone https://github.com/" + m.spec.Repo.Ref + ".git " + m.name,
		"(",
		"  cd " + m.name,
	}
	for _, line := range strings.Split(m.spec.InstallScript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmds = append(cmds, "  "+line)
	}
	cmds = append(cmds,
		")",
		"rm -rf "+m.name,
	)
	return cmds, nil
}
