// Package main is the entry point for the instgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/instgen/cli/internal/cmd"
	oerrors "github.com/instgen/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
