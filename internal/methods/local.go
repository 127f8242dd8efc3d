package methods

import (
	"os"
	"path/filepath"

	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
)

// localScript is the shared behavior of the bash and zsh variants: the
// install command invokes a generated script file named after the package,
// which must exist on disk before the generated text references it.
type localScript struct {
	name    string
	spec    *manifest.MethodSpec
	ext     string
	shebang string
	invoke  string
}

func newBashScript(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	m := &localScript{
		name:    name,
		spec:    spec,
		ext:     ".sh",
		shebang: "#!/bin/bash",
		invoke:  "./" + name + ".sh",
	}
	return m, nil, nil
}

func newZshScript(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error) {
	m := &localScript{
		name:    name,
		spec:    spec,
		ext:     ".zsh",
		shebang: "#!/bin/zsh",
		invoke:  "zsh ./" + name + ".zsh",
	}
	// The interpreter is assumed installable by name; when the manifest does
	// not define it, the sequencer degrades it to a runtime guard.
	implicit := []manifest.Dependency{{Name: "zsh"}}
	return m, implicit, nil
}

func (m *localScript) AppliesTo(target platform.Target) bool {
	return true
}

func (m *localScript) InstallCommands(target platform.Target) ([]string, error) {
	return []string{m.invoke}, nil
}

// WriteScriptFile implements ScriptWriter. The file carries the runtime
// shebang and the verbatim script body, with executable permission.
func (m *localScript) WriteScriptFile(dir string) error {
	if m.spec.Script == "" {
		return oerrors.NewFieldError(m.name, "script", "missing required field for script method")
	}

	path := filepath.Join(dir, m.name+m.ext)
	content := m.shebang + "\n\n" + m.spec.Script
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return err
	}
	return nil
}
