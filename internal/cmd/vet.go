package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instgen/cli/internal/build"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/output"
	"github.com/instgen/cli/internal/platform"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	var osFlag string

	cmd := &cobra.Command{
		Use:   "vet <manifest>",
		Short: "Validate a manifest and show method resolution",
		Long: `Validate a YAML package manifest without generating a script.

Checks every entry against the known install methods, then reports which
method each entry resolves to per target distribution.

Examples:
  # Vet against every supported target
  instgen vet packages.yaml

  # Vet against a single target
  instgen vet packages.yaml --os fedora`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(args, osFlag)
		},
	}

	cmd.Flags().StringVar(&osFlag, "os", "", "Restrict to one target: "+strings.Join(platform.TargetNames(), ", "))

	return cmd
}

// runVet executes the vet command.
func runVet(args []string, osName string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	gen, err := build.New(m)
	if err != nil {
		return err
	}

	targets := platform.Targets()
	if osName != "" {
		target, err := platform.ParseTarget(osName)
		if err != nil {
			return err
		}
		targets = []platform.Target{target}
	}

	for _, target := range targets {
		output.Println(output.Summary(target.String() + ":"))
		for _, res := range gen.Resolve(target) {
			if res.Package == nil {
				output.Println(fmt.Sprintf("  %s  %s", output.Noun(res.Name), output.Skip("skipped")))
				continue
			}
			output.Println(fmt.Sprintf("  %s  %s", output.Noun(res.Name), methodTag(res)))
		}
	}

	output.Println(output.Summary(fmt.Sprintf("%d entries OK", len(m.Entries))))
	return nil
}

// methodTag names the method a resolution picked, falling back to the entry
// name for bare-tag entries.
func methodTag(res build.Resolution) string {
	if tag := res.Package.Spec().Type; tag != "" {
		return tag
	}
	return res.Name
}
