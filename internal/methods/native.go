package methods

import (
	"strings"

	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
)

// dnfMethod installs through the Fedora-family native package manager, with
// optional repo registration.
type dnfMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newDnf(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &dnfMethod{name: name, spec: spec}, nil, nil
}

func (m *dnfMethod) AppliesTo(target platform.Target) bool {
	return target.Family() == platform.FamilyFedora
}

func (m *dnfMethod) InstallCommands(target platform.Target) ([]string, error) {
	if !m.AppliesTo(target) {
		return nil, nil
	}

	var cmds []string
	if m.spec.Repo.File != "" {
		cmds = append(cmds, "sudo dnf config-manager --add-repo "+m.spec.Repo.File)
	}
	cmds = append(cmds, "sudo dnf install -y "+strings.Join(packagesOrName(m.spec, m.name), " "))
	return cmds, nil
}

// aptMethod installs through the Debian-family native package manager.
type aptMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newApt(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &aptMethod{name: name, spec: spec}, nil, nil
}

func (m *aptMethod) AppliesTo(target platform.Target) bool {
	return target.Family() == platform.FamilyDebian
}

func (m *aptMethod) InstallCommands(target platform.Target) ([]string, error) {
	if !m.AppliesTo(target) {
		return nil, nil
	}
	return []string{"sudo apt install -y " + strings.Join(packagesOrName(m.spec, m.name), " ")}, nil
}
