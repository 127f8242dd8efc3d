package build

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Check parses the generated script with a real bash grammar and reports
// syntax errors. The generator only ever emits text, so this is the last
// line of defense against a manifest smuggling broken shell fragments into
// hooks or build scripts.
func Check(text string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(text), "install.sh"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}
