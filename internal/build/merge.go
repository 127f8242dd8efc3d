package build

import "strings"

// Batchable install prefixes. Lines sharing a prefix collapse into one
// invocation with concatenated package arguments.
var mergePrefixes = []string{
	"sudo dnf install -y ",
	"sudo apt install -y ",
	"flatpak install -y flathub ",
	"pip3 install ",
}

const snapPrefix = "sudo snap install "

// group collects the arguments of one merge key. Non-mergeable commands are
// singleton groups rendered verbatim.
type group struct {
	head   string
	tail   string
	args   []string
	merged bool
}

func (g *group) render() string {
	if !g.merged {
		return g.head
	}
	return g.head + " " + strings.Join(g.args, " ") + g.tail
}

// Merge coalesces same-manager install commands from the merge pool into
// single invocations, preserving first-seen group order. Only commands from
// packages without explicit dependencies ever reach the pool, so merging
// cannot reorder anything the manifest author sequenced deliberately.
func Merge(cmds []Command) []string {
	var order []*group
	index := map[string]*group{}

	add := func(key, head, tail, arg string, merged bool) {
		g, ok := index[key]
		if !ok {
			g = &group{head: head, tail: tail, merged: merged}
			index[key] = g
			order = append(order, g)
		}
		g.args = append(g.args, arg)
	}

	for _, c := range cmds {
		text := c.Text

		if strings.HasPrefix(text, snapPrefix) {
			// The flag suffix is part of the grouping key, so classic and
			// strict installs never collapse into one line.
			parts := strings.Fields(text)
			if len(parts) >= 4 {
				tail := ""
				if len(parts) > 4 {
					tail = " " + strings.Join(parts[4:], " ")
				}
				add("sudo snap install"+tail, "sudo snap install", tail, parts[3], true)
				continue
			}
		}

		matched := false
		for _, prefix := range mergePrefixes {
			if strings.HasPrefix(text, prefix) {
				head := strings.TrimSuffix(prefix, " ")
				add(head, head, "", strings.TrimPrefix(text, prefix), true)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Pass-through: each command is its own singleton group, duplicates
		// included.
		order = append(order, &group{head: text})
	}

	out := make([]string, 0, len(order))
	for _, g := range order {
		out = append(out, g.render())
	}
	return out
}
