package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/instgen/cli/internal/errors"
)

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.WrapNotFound(err, "reading manifest")
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest bytes. Top-level key order is preserved.
func Parse(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", oerrors.ErrConfig, err)
	}

	m := &Manifest{index: map[string]*Entry{}}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document: empty manifest.
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &oerrors.ConfigError{
			Message: fmt.Sprintf("manifest root must be a mapping of package names, got a %s", nodeKind(root)),
		}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		name := key.Value

		if _, dup := m.index[name]; dup {
			return nil, oerrors.NewConfigError(name, "duplicate manifest entry")
		}

		methods, err := parseMethods(name, val)
		if err != nil {
			return nil, err
		}

		entry := &Entry{Name: name, Methods: methods}
		m.Entries = append(m.Entries, entry)
		m.index[name] = entry
	}

	return m, nil
}

// parseMethods normalizes a manifest value into a method-spec list. The
// accepted forms are a bare method-tag string, a single mapping, or a list
// of either.
func parseMethods(name string, node *yaml.Node) ([]*MethodSpec, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []*MethodSpec{{Type: node.Value}}, nil

	case yaml.MappingNode:
		spec := &MethodSpec{}
		if err := node.Decode(spec); err != nil {
			return nil, oerrors.NewConfigError(name, err.Error())
		}
		return []*MethodSpec{spec}, nil

	case yaml.SequenceNode:
		specs := make([]*MethodSpec, 0, len(node.Content))
		for _, item := range node.Content {
			parsed, err := parseMethods(name, item)
			if err != nil {
				return nil, err
			}
			specs = append(specs, parsed...)
		}
		return specs, nil

	default:
		return nil, oerrors.NewConfigError(name,
			fmt.Sprintf("line %d: methods must be a tag, a method spec, or a list of them", node.Line))
	}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}
