package build

import (
	"fmt"

	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/methods"
	"github.com/instgen/cli/internal/platform"
)

// sequencer walks the manifest depth-first, installing dependencies before
// dependents. All traversal state lives here, so generation is reentrant
// per target.
//
// Placement follows the two-mode policy: a package that declared explicit
// dependencies keeps its hooks and install lines interleaved in visitation
// order and is never merged; a package without them contributes its
// pre-hooks to a prepend pool, its installs to the merge pool, and its
// post-hooks to an append pool emitted after everything else.
type sequencer struct {
	gen       *Generator
	target    platform.Target
	scriptDir string

	// visited marks names on the current recursion stack or already
	// installed. Membership short-circuits; there is no deeper cycle
	// detection.
	visited map[string]bool

	stream    []Command
	mergePool []Command
	prepend   []string
	appendix  []string

	inlineSeq int
}

// install resolves and installs a named manifest entry.
func (s *sequencer) install(name string) error {
	if s.visited[name] {
		return nil
	}
	pkg := s.gen.packageFor(name, s.target)
	if pkg == nil {
		return nil
	}
	return s.installPackage(name, pkg)
}

func (s *sequencer) installPackage(name string, pkg *methods.Package) error {
	s.visited[name] = true

	for _, dep := range pkg.Dependencies() {
		if err := s.installDependency(dep); err != nil {
			return err
		}
	}

	return s.emit(pkg)
}

func (s *sequencer) installDependency(dep manifest.Dependency) error {
	if dep.Inline != nil {
		return s.installInline(dep.Inline)
	}

	if s.visited[dep.Name] {
		return nil
	}

	if s.gen.packageFor(dep.Name, s.target) != nil {
		return s.install(dep.Name)
	}

	if dep.Fallback != nil {
		pkg, err := s.gen.factory.New(dep.Name, dep.Fallback)
		if err != nil {
			return err
		}
		if !pkg.AppliesTo(s.target) {
			return nil
		}
		if err := pkg.WriteScriptFile(s.scriptDir); err != nil {
			return err
		}
		return s.installPackage(dep.Name, pkg)
	}

	// Dependency unknown to the manifest: assume it pre-exists on the host
	// and defer the risk to script runtime.
	s.stream = append(s.stream, Command{Text: guardLine(dep.Name)})
	return nil
}

// installInline installs an anonymous inline dependency in place: hooks and
// install lines go straight into the stream, with no deduplication, no
// merging, and no implicit-dependency expansion.
func (s *sequencer) installInline(spec *manifest.MethodSpec) error {
	s.inlineSeq++
	name := fmt.Sprintf("inline_dep_%d", s.inlineSeq)

	pkg, err := s.gen.factory.New(name, spec)
	if err != nil {
		return err
	}
	if !pkg.AppliesTo(s.target) {
		return nil
	}
	if err := pkg.WriteScriptFile(s.scriptDir); err != nil {
		return err
	}

	pre, err := pkg.PreInstallCommands(s.gen.hooks)
	if err != nil {
		return err
	}
	installs, err := pkg.InstallCommands(s.target)
	if err != nil {
		return err
	}
	post, err := pkg.PostInstallCommands(s.gen.hooks)
	if err != nil {
		return err
	}

	for _, c := range pre {
		s.stream = append(s.stream, Command{Text: c})
	}
	for _, c := range installs {
		s.stream = append(s.stream, Command{Text: c, Pkg: pkg})
	}
	for _, c := range post {
		s.stream = append(s.stream, Command{Text: c})
	}
	return nil
}

func (s *sequencer) emit(pkg *methods.Package) error {
	pre, err := pkg.PreInstallCommands(s.gen.hooks)
	if err != nil {
		return err
	}
	installs, err := pkg.InstallCommands(s.target)
	if err != nil {
		return err
	}
	post, err := pkg.PostInstallCommands(s.gen.hooks)
	if err != nil {
		return err
	}

	if pkg.HasExplicitDeps() {
		for _, c := range pre {
			s.stream = append(s.stream, Command{Text: c})
		}
		for _, c := range installs {
			s.stream = append(s.stream, Command{Text: c, Pkg: pkg})
		}
		for _, c := range post {
			s.stream = append(s.stream, Command{Text: c})
		}
		return nil
	}

	s.prepend = append(s.prepend, pre...)
	for _, c := range installs {
		s.mergePool = append(s.mergePool, Command{Text: c, Pkg: pkg})
	}
	s.appendix = append(s.appendix, post...)
	return nil
}

// guardLine emits a runtime existence check for a dependency the generator
// cannot resolve.
func guardLine(dep string) string {
	return fmt.Sprintf(`which %s || { echo "Warning: %s not found"; exit 1; }`, dep, dep)
}
