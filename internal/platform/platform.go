// Package platform defines the closed set of target distributions a script
// can be generated for, and the package-manager families they belong to.
package platform

import (
	"strings"

	"github.com/instgen/cli/internal/errors"
)

// Family groups targets by native package manager.
type Family string

const (
	// FamilyFedora covers dnf-based distributions.
	FamilyFedora Family = "fedora"

	// FamilyDebian covers apt-based distributions.
	FamilyDebian Family = "debian"
)

// Target is a supported target distribution.
type Target string

// Supported targets.
const (
	TargetFedora Target = "fedora"
	TargetCentOS Target = "centos"
	TargetRHEL   Target = "rhel"
	TargetUbuntu Target = "ubuntu"
	TargetDebian Target = "debian"
)

var families = map[Target]Family{
	TargetFedora: FamilyFedora,
	TargetCentOS: FamilyFedora,
	TargetRHEL:   FamilyFedora,
	TargetUbuntu: FamilyDebian,
	TargetDebian: FamilyDebian,
}

// Targets returns all supported targets in a stable order.
func Targets() []Target {
	return []Target{TargetFedora, TargetCentOS, TargetRHEL, TargetUbuntu, TargetDebian}
}

// TargetNames returns the valid target names for help text and errors.
func TargetNames() []string {
	targets := Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return names
}

// ParseTarget parses a target name. Unknown names are a configuration error.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := families[t]; !ok {
		return "", &errors.ConfigError{
			Field:   "os",
			Message: "invalid target " + strings.TrimSpace(s),
			Hint:    "valid targets: " + strings.Join(TargetNames(), ", "),
		}
	}
	return t, nil
}

// String returns the target name.
func (t Target) String() string {
	return string(t)
}

// Family returns the package-manager family of the target.
func (t Target) Family() Family {
	return families[t]
}
