// Package script expands pre/post-install hook specs into literal shell
// command lines.
//
// Hook kinds form an open set: new kinds can be registered by name without
// touching the built-in ones. An unknown kind is a configuration error.
package script

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
)

// Script produces the shell lines for one hook.
type Script interface {
	// Commands returns the literal command lines for this hook.
	Commands() ([]string, error)
}

// BuilderFunc constructs a Script from a hook spec. pkg names the manifest
// entry the hook belongs to, for error reporting.
type BuilderFunc func(pkg string, spec *manifest.HookSpec) (Script, error)

// Registry maps hook kinds to builders.
type Registry struct {
	kinds map[string]BuilderFunc
}

// NewRegistry returns a registry with the built-in bash and tee kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: map[string]BuilderFunc{}}
	r.Register("bash", newShellScript)
	r.Register("tee", newTeeScript)
	return r
}

// Register adds or replaces a hook kind.
func (r *Registry) Register(kind string, fn BuilderFunc) {
	r.kinds[kind] = fn
}

// Build constructs the Script for a hook spec. Unknown kinds are a
// configuration error naming the kind.
func (r *Registry) Build(pkg string, spec *manifest.HookSpec) (Script, error) {
	fn, ok := r.kinds[spec.Kind]
	if !ok {
		return nil, oerrors.NewConfigError(pkg, fmt.Sprintf("unknown hook kind %q", spec.Kind))
	}
	return fn(pkg, spec)
}

// Expand builds every hook in the list and concatenates their command lines.
func (r *Registry) Expand(pkg string, hooks manifest.HookList) ([]string, error) {
	var lines []string
	for i := range hooks {
		s, err := r.Build(pkg, &hooks[i])
		if err != nil {
			return nil, err
		}
		cmds, err := s.Commands()
		if err != nil {
			return nil, err
		}
		lines = append(lines, cmds...)
	}
	return lines, nil
}

// ShellScript emits a literal shell statement unmodified.
type ShellScript struct {
	Statement string
}

func newShellScript(pkg string, spec *manifest.HookSpec) (Script, error) {
	if spec.Script == "" {
		return nil, oerrors.NewFieldError(pkg, "script", "missing required field for bash hook")
	}
	return &ShellScript{Statement: spec.Script}, nil
}

// Commands implements Script.
func (s *ShellScript) Commands() ([]string, error) {
	return []string{s.Statement}, nil
}

// TeeScript reproduces multi-line content byte-for-byte into a file via tee.
// Each content line is individually quoted so embedded metacharacters survive
// re-parsing by a shell.
type TeeScript struct {
	Destination string
	Content     string
	Sudo        bool

	pkg string
}

func newTeeScript(pkg string, spec *manifest.HookSpec) (Script, error) {
	if spec.Destination == "" {
		return nil, oerrors.NewFieldError(pkg, "destination", "missing required field for tee hook")
	}
	return &TeeScript{
		Destination: spec.Destination,
		Content:     spec.Content,
		Sudo:        spec.Sudo,
		pkg:         pkg,
	}, nil
}

// Commands implements Script.
func (s *TeeScript) Commands() ([]string, error) {
	lines := strings.Split(s.Content, "\n")
	quoted := make([]string, len(lines))
	for i, line := range lines {
		q, err := Quote(line)
		if err != nil {
			return nil, oerrors.NewFieldError(s.pkg, "content", err.Error())
		}
		quoted[i] = q
	}

	var b strings.Builder
	b.WriteString(`printf '%s\n' `)
	b.WriteString(strings.Join(quoted, " "))
	b.WriteString(" | ")
	if s.Sudo {
		b.WriteString("sudo ")
	}
	b.WriteString("tee ")
	b.WriteString(s.Destination)

	return []string{b.String()}, nil
}

// Quote returns s quoted for bash so that a shell parsing the result yields
// s byte-for-byte. Strings containing bytes no quoting can represent (such
// as NUL) are rejected.
func Quote(s string) (string, error) {
	if s == "" {
		return "''", nil
	}
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("unquotable content: %w", err)
	}
	return q, nil
}
