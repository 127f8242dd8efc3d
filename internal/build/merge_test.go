package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cmds(texts ...string) []Command {
	out := make([]Command, len(texts))
	for i, t := range texts {
		out[i] = Command{Text: t}
	}
	return out
}

func TestMerge(t *testing.T) {
	t.Run("same manager collapses preserving argument order", func(t *testing.T) {
		got := Merge(cmds(
			"sudo apt install -y a",
			"sudo apt install -y b",
		))
		assert.Equal(t, []string{"sudo apt install -y a b"}, got)
	})

	t.Run("groups keep first-seen order", func(t *testing.T) {
		got := Merge(cmds(
			"sudo dnf install -y htop",
			"pip3 install httpie",
			"sudo dnf install -y curl",
			"flatpak install -y flathub spotify",
			"pip3 install yq",
		))
		assert.Equal(t, []string{
			"sudo dnf install -y htop curl",
			"pip3 install httpie yq",
			"flatpak install -y flathub spotify",
		}, got)
	})

	t.Run("snap flag suffix is part of the grouping key", func(t *testing.T) {
		got := Merge(cmds(
			"sudo snap install code --classic",
			"sudo snap install spotify",
			"sudo snap install goland --classic",
		))
		assert.Equal(t, []string{
			"sudo snap install code goland --classic",
			"sudo snap install spotify",
		}, got)
	})

	t.Run("single snap line keeps its original shape", func(t *testing.T) {
		got := Merge(cmds("sudo snap install mytool --classic"))
		assert.Equal(t, []string{"sudo snap install mytool --classic"}, got)
	})

	t.Run("non-mergeable commands pass through including duplicates", func(t *testing.T) {
		got := Merge(cmds(
			"TEMP_FILE=$(mktemp)",
			`curl -o "$TEMP_FILE" https://example.com/a.deb`,
			`rm "$TEMP_FILE"`,
			"TEMP_FILE=$(mktemp)",
			`curl -o "$TEMP_FILE" https://example.com/b.deb`,
			`rm "$TEMP_FILE"`,
		))
		assert.Equal(t, []string{
			"TEMP_FILE=$(mktemp)",
			`curl -o "$TEMP_FILE" https://example.com/a.deb`,
			`rm "$TEMP_FILE"`,
			"TEMP_FILE=$(mktemp)",
			`curl -o "$TEMP_FILE" https://example.com/b.deb`,
			`rm "$TEMP_FILE"`,
		}, got)
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.Empty(t, Merge(nil))
	})
}
