package methods

import (
	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
)

// debMethod fetches .deb files and installs them from a temp path. Debian
// family only; the packages list holds URLs.
type debMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newDeb(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &debMethod{name: name, spec: spec}, nil, nil
}

func (m *debMethod) AppliesTo(target platform.Target) bool {
	return target.Family() == platform.FamilyDebian
}

func (m *debMethod) InstallCommands(target platform.Target) ([]string, error) {
	if !m.AppliesTo(target) {
		return nil, nil
	}

	var cmds []string
	for _, url := range m.spec.Packages {
		cmds = append(cmds,
			"TEMP_FILE=$(mktemp)",
			`curl -o "$TEMP_FILE" `+url,
			`sudo apt install "$TEMP_FILE"`,
			`rm "$TEMP_FILE"`,
		)
	}
	return cmds, nil
}

// fileMethod pipes a remote file into a destination path.
type fileMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newFile(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &fileMethod{name: name, spec: spec}, nil, nil
}

func (m *fileMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *fileMethod) InstallCommands(target platform.Target) ([]string, error) {
	if m.spec.URL == "" {
		return nil, oerrors.NewFieldError(m.name, "url", "missing required field for file method")
	}
	if m.spec.Destination == "" {
		return nil, oerrors.NewFieldError(m.name, "destination", "missing required field for file method")
	}

	tee := "tee " + m.spec.Destination
	if m.spec.Sudo {
		tee = "sudo " + tee
	}
	return []string{`curl -fsSL "` + m.spec.URL + `" | ` + tee}, nil
}

// tarballMethod pipes a remote tarball into an extraction directory.
type tarballMethod struct {
	name string
	spec *manifest.MethodSpec
}

func newTarball(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	return &tarballMethod{name: name, spec: spec}, nil, nil
}

func (m *tarballMethod) AppliesTo(target platform.Target) bool {
	return true
}

func (m *tarballMethod) InstallCommands(target platform.Target) ([]string, error) {
	if m.spec.URL == "" {
		return nil, oerrors.NewFieldError(m.name, "url", "missing required field for tarball method")
	}
	if m.spec.Destination == "" {
		return nil, oerrors.NewFieldError(m.name, "destination", "missing required field for tarball method")
	}

	tar := `tar xvzC "` + m.spec.Destination + `"`
	if m.spec.Sudo {
		tar = "sudo " + tar
	}
	return []string{`curl -fsSL "` + m.spec.URL + `" | ` + tar}, nil
}
