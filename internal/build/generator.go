// Package build turns a loaded manifest into the final install-script text
// for one target: it resolves one method variant per package, orders
// dependencies before dependents, expands hooks, and merges batchable
// install commands.
package build

import (
	"fmt"
	"strings"

	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/methods"
	"github.com/instgen/cli/internal/platform"
	"github.com/instgen/cli/internal/script"
)

// Command is one literal shell line, tagged with the package it came from.
// Hook lines, guard lines and merged lines carry no package.
type Command struct {
	Text string
	Pkg  *methods.Package
}

// Shebang is the interpreter line prepended when Options.Shebang is set.
const Shebang = "#!/bin/bash"

// Options controls a single generation pass.
type Options struct {
	// Target selects the distribution the script is generated for.
	Target platform.Target

	// Shebang prepends the interpreter line to the output.
	Shebang bool

	// ScriptDir is where local-script side-effect files are materialized.
	// Defaults to the current directory.
	ScriptDir string
}

// Option customizes a Generator before the manifest is resolved.
type Option func(*Generator)

// WithHookKind registers an additional hook kind.
func WithHookKind(kind string, fn script.BuilderFunc) Option {
	return func(g *Generator) { g.hooks.Register(kind, fn) }
}

// WithMethodType registers an additional method variant.
func WithMethodType(tag string, c methods.Constructor) Option {
	return func(g *Generator) { g.factory.Register(tag, c) }
}

// Generator holds a fully resolved manifest: one package object per
// (name, method) pair. Construction fails fast on configuration errors so
// nothing is emitted from an invalid manifest.
type Generator struct {
	manifest *manifest.Manifest
	factory  *methods.Factory
	hooks    *script.Registry
	packages map[string][]*methods.Package
}

// New resolves every method spec in the manifest.
func New(m *manifest.Manifest, opts ...Option) (*Generator, error) {
	g := &Generator{
		manifest: m,
		factory:  methods.NewFactory(),
		hooks:    script.NewRegistry(),
		packages: map[string][]*methods.Package{},
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, entry := range m.Entries {
		for _, spec := range entry.Methods {
			pkg, err := g.factory.New(entry.Name, spec)
			if err != nil {
				return nil, err
			}
			g.packages[entry.Name] = append(g.packages[entry.Name], pkg)
		}
	}
	return g, nil
}

// packageFor returns the first method variant of name applicable to the
// target, or nil when none applies.
func (g *Generator) packageFor(name string, target platform.Target) *methods.Package {
	for _, pkg := range g.packages[name] {
		if pkg.AppliesTo(target) {
			return pkg
		}
	}
	return nil
}

// Resolution describes which method variant a manifest entry resolves to
// for a target. Package is nil when no method applies (the entry would be
// silently skipped).
type Resolution struct {
	Name    string
	Package *methods.Package
}

// Resolve reports the per-entry method resolution for a target, in manifest
// order.
func (g *Generator) Resolve(target platform.Target) []Resolution {
	res := make([]Resolution, 0, len(g.manifest.Entries))
	for _, entry := range g.manifest.Entries {
		res = append(res, Resolution{Name: entry.Name, Package: g.packageFor(entry.Name, target)})
	}
	return res
}

// Generate produces the install-script text for the target. Local script
// files are materialized first so every command line referencing them is
// valid by the time the text exists.
func (g *Generator) Generate(opts Options) (string, error) {
	scriptDir := opts.ScriptDir
	if scriptDir == "" {
		scriptDir = "."
	}

	for _, entry := range g.manifest.Entries {
		for _, pkg := range g.packages[entry.Name] {
			if !pkg.AppliesTo(opts.Target) {
				continue
			}
			if err := pkg.WriteScriptFile(scriptDir); err != nil {
				return "", fmt.Errorf("materializing script for %s: %w", entry.Name, err)
			}
		}
	}

	s := &sequencer{
		gen:       g,
		target:    opts.Target,
		scriptDir: scriptDir,
		visited:   map[string]bool{},
	}

	for _, entry := range g.manifest.Entries {
		if g.packageFor(entry.Name, opts.Target) == nil {
			continue
		}
		if err := s.install(entry.Name); err != nil {
			return "", err
		}
	}

	lines := make([]string, 0, len(s.prepend)+len(s.mergePool)+len(s.stream)+len(s.appendix))
	lines = append(lines, s.prepend...)
	lines = append(lines, Merge(s.mergePool)...)
	for _, c := range s.stream {
		lines = append(lines, c.Text)
	}
	lines = append(lines, s.appendix...)

	text := strings.Join(lines, "\n")
	if opts.Shebang {
		text = Shebang + "\n\n" + text
	}
	return strings.TrimRight(text, "\n"), nil
}
