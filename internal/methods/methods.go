// Package methods implements the installation-method variants a manifest
// entry can resolve to, and the factory that instantiates them by tag.
//
// Each variant knows how to test its OS applicability, emit its install
// command lines, contribute implicit dependencies, and (for local-script
// variants) materialize a script file on disk before emission references it.
// The tag set is open for registration and closed on lookup: an unknown tag
// is a configuration error naming the entry and the tag.
package methods

import (
	"fmt"

	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/platform"
	"github.com/instgen/cli/internal/script"
)

// Method is the variant-specific part of a resolved package.
type Method interface {
	// AppliesTo reports whether this method can install on the target.
	AppliesTo(target platform.Target) bool

	// InstallCommands emits the ordered install command lines for the
	// target. Missing required fields surface here as configuration errors.
	InstallCommands(target platform.Target) ([]string, error)
}

// ScriptWriter is implemented by variants whose install command references a
// local script file. The file must be written before the generated script
// text mentions it.
type ScriptWriter interface {
	WriteScriptFile(dir string) error
}

// Package is a resolved package: one instantiated method variant bound to a
// name, with its parsed dependency list and hooks. Immutable after
// construction.
type Package struct {
	name   string
	spec   *manifest.MethodSpec
	method Method
	deps   []manifest.Dependency
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Spec returns the originating method spec.
func (p *Package) Spec() *manifest.MethodSpec {
	return p.spec
}

// Dependencies returns explicit dependencies followed by the variant's
// implicit ones.
func (p *Package) Dependencies() []manifest.Dependency {
	return p.deps
}

// HasExplicitDeps reports whether the originating spec declared depends_on.
func (p *Package) HasExplicitDeps() bool {
	return p.spec.HasExplicitDeps()
}

// AppliesTo reports whether the package can install on the target.
func (p *Package) AppliesTo(target platform.Target) bool {
	return p.method.AppliesTo(target)
}

// InstallCommands emits the package's install command lines for the target.
func (p *Package) InstallCommands(target platform.Target) ([]string, error) {
	return p.method.InstallCommands(target)
}

// PreInstallCommands expands the pre-install hooks through the registry.
func (p *Package) PreInstallCommands(reg *script.Registry) ([]string, error) {
	return reg.Expand(p.name, p.spec.PreInstall)
}

// PostInstallCommands expands the post-install hooks through the registry.
func (p *Package) PostInstallCommands(reg *script.Registry) ([]string, error) {
	return reg.Expand(p.name, p.spec.PostInstall)
}

// WriteScriptFile materializes the package's script file under dir, when the
// variant has one. A no-op for every other variant.
func (p *Package) WriteScriptFile(dir string) error {
	if w, ok := p.method.(ScriptWriter); ok {
		return w.WriteScriptFile(dir)
	}
	return nil
}

// Constructor builds a method variant for a named entry, returning the
// variant and its implicit dependencies. Constructors fail fast on illegal
// configurations such as a manager package depending on itself.
type Constructor func(name string, spec *manifest.MethodSpec) (Method, []manifest.Dependency, error)

// Factory instantiates packages from method specs by tag.
type Factory struct {
	types map[string]Constructor
}

// NewFactory returns a factory with all built-in variants registered.
func NewFactory() *Factory {
	f := &Factory{types: map[string]Constructor{}}
	f.Register("dnf", newDnf)
	f.Register("apt", newApt)
	f.Register("snapd", newSnap)
	f.Register("snap", newSnap)
	f.Register("pip", newPip)
	f.Register("deb", newDeb)
	f.Register("flatpak", newFlatpak)
	f.Register("github", newGithub)
	f.Register("file", newFile)
	f.Register("tarball", newTarball)
	f.Register("bash", newBashScript)
	f.Register("zsh", newZshScript)
	return f
}

// Register adds or replaces a method variant.
func (f *Factory) Register(tag string, c Constructor) {
	f.types[tag] = c
}

// New instantiates a package from a method spec. A missing tag defaults to
// the package name; an unknown tag is a configuration error.
func (f *Factory) New(name string, spec *manifest.MethodSpec) (*Package, error) {
	tag := spec.Type
	if tag == "" {
		tag = name
	}

	c, ok := f.types[tag]
	if !ok {
		return nil, oerrors.NewConfigError(name, fmt.Sprintf("unknown method type %q", tag))
	}

	method, implicit, err := c(name, spec)
	if err != nil {
		return nil, err
	}

	deps := make([]manifest.Dependency, 0, len(spec.DependsOn)+len(implicit))
	deps = append(deps, spec.DependsOn...)
	deps = append(deps, implicit...)

	return &Package{name: name, spec: spec, method: method, deps: deps}, nil
}

// packagesOrName returns the spec's package list, defaulting to the entry
// name when absent.
func packagesOrName(spec *manifest.MethodSpec, name string) []string {
	if len(spec.Packages) > 0 {
		return spec.Packages
	}
	return []string{name}
}

// dependsOnSelf reports whether the explicit dependency list names the
// package itself.
func dependsOnSelf(name string, spec *manifest.MethodSpec) bool {
	for _, d := range spec.DependsOn {
		if d.Name == name {
			return true
		}
	}
	return false
}
