package methods

import (
	"strings"

	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
)

// Manager package names for the universal variants.
const (
	snapManager = "snapd"
	pipManager  = "pip"
)

// snapMethod installs snap packages on any supported target. The manager
// entry itself ("snapd") installs through the target's native package
// manager instead.
type snapMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newSnap(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	if name == snapManager {
		if dependsOnSelf(name, spec) {
			return nil, nil, oerrors.NewConfigError(name, "snapd cannot depend on snapd")
		}
		return &snapMethod{name: name, spec: spec}, nil, nil
	}

	implicit := []manifest.Dependency{{
		Name:     snapManager,
		Fallback: &manifest.MethodSpec{Type: "snapd"},
	}}
	return &snapMethod{name: name, spec: spec}, implicit, nil
}

func (m *snapMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *snapMethod) InstallCommands(target platform.Target) ([]string, error) {
	pkgs := packagesOrName(m.spec, m.name)

	if m.name == snapManager {
		switch target.Family() {
		case platform.FamilyFedora:
			return []string{"sudo dnf install -y " + strings.Join(pkgs, " ")}, nil
		case platform.FamilyDebian:
			return []string{"sudo apt install -y " + strings.Join(pkgs, " ")}, nil
		}
		return nil, nil
	}

	flag := ""
	if m.spec.Classic {
		flag = " --classic"
	}
	cmds := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		cmds = append(cmds, "sudo snap install "+pkg+flag)
	}
	return cmds, nil
}

// pipMethod installs through the Python package manager on any target. The
// manager entry itself ("pip") is subject to the same self-dependency guard
// as snapd.
type pipMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newPip(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	if name == pipManager {
		if dependsOnSelf(name, spec) {
			return nil, nil, oerrors.NewConfigError(name, "pip cannot depend on pip")
		}
		return &pipMethod{name: name, spec: spec}, nil, nil
	}

	implicit := []manifest.Dependency{{
		Name:     pipManager,
		Fallback: &manifest.MethodSpec{Type: "pip"},
	}}
	return &pipMethod{name: name, spec: spec}, implicit, nil
}

func (m *pipMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *pipMethod) InstallCommands(target platform.Target) ([]string, error) {
	return []string{"pip3 install " + strings.Join(packagesOrName(m.spec, m.name), " ")}, nil
}

// flatpakMethod installs from the flathub store on any target.
type flatpakMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newFlatpak(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &flatpakMethod{name: name, spec: spec}, nil, nil
}

func (m *flatpakMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *flatpakMethod) InstallCommands(target platform.Target) ([]string, error) {
	pkgs := packagesOrName(m.spec, m.name)
	cmds := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		cmds = append(cmds, "flatpak install -y flathub "+pkg)
	}
	return cmds, nil
}
