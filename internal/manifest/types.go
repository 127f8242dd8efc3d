// Package manifest defines the declarative package manifest and its loader.
//
// A manifest maps package names to one or more method specs. The order of
// top-level keys is semantic (it drives install order), so loading goes
// through yaml.Node rather than a plain map.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MethodSpec is one way to install a named package. The Type tag selects the
// method variant; the remaining fields are variant-specific.
type MethodSpec struct {
	// Type is the method-variant tag (dnf, apt, snapd, pip, deb, flatpak,
	// github, file, tarball, bash, zsh). When empty, the package name is
	// used as the tag.
	Type string `yaml:"type"`

	// Packages overrides the list of packages to install. Defaults to the
	// entry name for manager-based variants; holds URLs for the deb variant.
	Packages []string `yaml:"packages"`

	// Classic requests the unconfined snap confinement flag.
	Classic bool `yaml:"classic"`

	// Sudo elevates file-writing and extraction commands.
	Sudo bool `yaml:"sudo"`

	// URL is the source location for file/tarball variants.
	URL string `yaml:"url"`

	// Destination is the write/extract target for file/tarball variants.
	Destination string `yaml:"destination"`

	// Script is the inline script body for bash/zsh variants.
	Script string `yaml:"script"`

	// InstallScript is the verbatim build script for the github variant.
	InstallScript string `yaml:"install_script"`

	// Repo is the repository reference: a bare "owner/repo" string for the
	// github variant, or a {file: ...} mapping for dnf repo registration.
	Repo RepoSpec `yaml:"repo"`

	// DependsOn lists dependencies: bare names referencing other manifest
	// entries, or inline anonymous method specs.
	DependsOn []Dependency `yaml:"depends_on"`

	// PreInstall and PostInstall are hook specs expanded by the script builder.
	PreInstall  HookList `yaml:"pre_install"`
	PostInstall HookList `yaml:"post_install"`
}

// HasExplicitDeps reports whether depends_on was declared on this spec.
// It gates both merge eligibility and hook placement: packages with explicit
// dependencies keep their hooks and installs interleaved in declaration
// position and are never merged.
func (m *MethodSpec) HasExplicitDeps() bool {
	return m.DependsOn != nil
}

// RepoSpec accepts either a bare string reference or a mapping with a
// repo-file location.
type RepoSpec struct {
	// Ref is the scalar form, e.g. "cli/cli" for the github variant.
	Ref string

	// File is the repo-file URL from the mapping form, used by the dnf
	// variant for repo registration.
	File string

	// Name is an optional repository name from the mapping form.
	Name string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RepoSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&r.Ref)
	case yaml.MappingNode:
		var aux struct {
			File string `yaml:"file"`
			Name string `yaml:"name"`
		}
		if err := node.Decode(&aux); err != nil {
			return err
		}
		r.File = aux.File
		r.Name = aux.Name
		return nil
	default:
		return fmt.Errorf("line %d: repo must be a string or a mapping", node.Line)
	}
}

// IsZero reports whether the repo spec was absent.
func (r RepoSpec) IsZero() bool {
	return r.Ref == "" && r.File == "" && r.Name == ""
}

// Dependency is a single depends_on entry: either a bare reference to
// another manifest entry, or an inline anonymous method spec. The resolver
// additionally synthesizes named dependencies carrying a Fallback spec for
// implicit manager dependencies.
type Dependency struct {
	// Name references a manifest entry when set.
	Name string

	// Inline is an anonymous method spec installed in place, without
	// deduplication or merging.
	Inline *MethodSpec

	// Fallback is a spec to instantiate under Name when the manifest does
	// not define that entry. Never set by YAML decoding; only by implicit
	// manager dependencies.
	Fallback *MethodSpec
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Name)
	case yaml.MappingNode:
		spec := &MethodSpec{}
		if err := node.Decode(spec); err != nil {
			return err
		}
		d.Inline = spec
		return nil
	default:
		return fmt.Errorf("line %d: dependency must be a name or a method spec", node.Line)
	}
}

// HookSpec is a pre/post-install hook: a bare string (one shell statement)
// or a mapping with a hook kind. The raw node is retained so registered
// hook kinds can decode their own fields.
type HookSpec struct {
	// Kind selects the hook builder; defaults to "bash".
	Kind string

	// Script is the inline shell statement for bash hooks.
	Script string

	// Destination, Content and Sudo configure tee hooks.
	Destination string
	Content     string
	Sudo        bool

	// Node is the raw YAML node, for hook kinds registered by name.
	Node yaml.Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HookSpec) UnmarshalYAML(node *yaml.Node) error {
	h.Node = *node

	switch node.Kind {
	case yaml.ScalarNode:
		h.Kind = "bash"
		return node.Decode(&h.Script)
	case yaml.MappingNode:
		var aux struct {
			Type        string `yaml:"type"`
			Script      string `yaml:"script"`
			Destination string `yaml:"destination"`
			Content     string `yaml:"content"`
			Sudo        bool   `yaml:"sudo"`
		}
		if err := node.Decode(&aux); err != nil {
			return err
		}
		h.Kind = aux.Type
		if h.Kind == "" {
			h.Kind = "bash"
		}
		h.Script = aux.Script
		h.Destination = aux.Destination
		h.Content = aux.Content
		h.Sudo = aux.Sudo
		return nil
	default:
		return fmt.Errorf("line %d: hook must be a string or a mapping", node.Line)
	}
}

// HookList accepts a single hook spec or a sequence of them.
type HookList []HookSpec

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *HookList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var items []HookSpec
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var single HookSpec
	if err := node.Decode(&single); err != nil {
		return err
	}
	*l = HookList{single}
	return nil
}

// Entry is one named manifest entry: a package name and its method specs in
// OS-applicability preference order.
type Entry struct {
	Name    string
	Methods []*MethodSpec
}

// Manifest is the loaded package manifest. Entries preserve declaration
// order; the index supports name lookup.
type Manifest struct {
	Entries []*Entry

	index map[string]*Entry
}

// Lookup returns the entry for name, if defined.
func (m *Manifest) Lookup(name string) (*Entry, bool) {
	e, ok := m.index[name]
	return e, ok
}

// Names returns all entry names in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		names[i] = e.Name
	}
	return names
}
