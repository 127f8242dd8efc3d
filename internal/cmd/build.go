package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instgen/cli/internal/build"
	oerrors "github.com/instgen/cli/internal/errors"
	"github.com/instgen/cli/internal/manifest"
	"github.com/instgen/cli/internal/output"
	"github.com/instgen/cli/internal/platform"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var (
		osFlag        string
		outFlag       string
		scriptDirFlag string
		shebangFlag   bool
		checkFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "build <manifest>",
		Short: "Generate an install script from a manifest",
		Long: `Generate a shell install script from a YAML package manifest.

Each manifest entry resolves to the first install method applicable to the
target distribution; entries with no applicable method are skipped.

Examples:
  # Generate for Fedora, print to stdout
  instgen build packages.yaml --os fedora

  # Write the script to a file with a shebang line
  instgen build packages.yaml --os ubuntu -o install.sh --shebang

  # Validate the generated shell syntax
  instgen build packages.yaml --os debian --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, osFlag, outFlag, scriptDirFlag, shebangFlag, checkFlag)
		},
	}

	cmd.Flags().StringVar(&osFlag, "os", "", "Target distribution: "+strings.Join(platform.TargetNames(), ", ")+" (env: INSTGEN_TARGET)")
	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().StringVar(&scriptDirFlag, "script-dir", "", "Directory for generated helper script files (env: INSTGEN_SCRIPT_DIR)")
	cmd.Flags().BoolVar(&shebangFlag, "shebang", false, "Prepend the #!/bin/bash interpreter line")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "Parse the generated script and fail on shell syntax errors")

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string, osName, outPath, scriptDir string, shebang, check bool) error {
	cfg := GetConfig()

	if osName == "" {
		osName = cfg.Target
	}
	if osName == "" {
		return &oerrors.ConfigError{
			Field:   "os",
			Message: "no target selected",
			Hint:    "pass --os or set target in the config file",
		}
	}
	target, err := platform.ParseTarget(osName)
	if err != nil {
		return err
	}

	if scriptDir == "" {
		scriptDir = cfg.ScriptDir
	}
	if !cmd.Flags().Changed("shebang") {
		shebang = cfg.Shebang
	}

	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	gen, err := build.New(m)
	if err != nil {
		return err
	}

	output.Debug("generating install script",
		"manifest", args[0],
		"target", target,
		"scriptDir", scriptDir,
	)

	text, err := gen.Generate(build.Options{
		Target:    target,
		Shebang:   shebang,
		ScriptDir: scriptDir,
	})
	if err != nil {
		return err
	}

	if check {
		if err := build.Check(text); err != nil {
			return err
		}
	}

	if outPath == "" {
		output.Println(text)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(text+"\n"), 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	lines := strings.Count(text, "\n") + 1
	output.Println(fmt.Sprintf("wrote %d lines to %s for %s", lines, output.Noun(outPath), output.Noun(target.String())))
	return nil
}
