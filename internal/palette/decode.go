package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/concrete-theme/concrete/internal/embed"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the embedded color table used when no file is configured
const DefaultFile = "palettes/concrete.yaml"

// Parse decodes a YAML color table. Mapping order in the document becomes
// group order in the returned tree.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse color table: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("color table is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: color table must be a mapping", root.Line)
	}

	return decodeNode(root)
}

// Load reads a color table from a YAML file on disk
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read color table: %w", err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Default returns the embedded Concrete color table
func Default() (*Node, error) {
	data, err := embed.GetFile(DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded color table: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads path when it is set, the embedded table otherwise
func LoadOrDefault(path string) (*Node, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func decodeNode(n *yaml.Node) (*Node, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: color value is empty", n.Line)
		}
		return Leaf(n.Value), nil

	case yaml.MappingNode:
		group := Group()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: group keys must be scalars", key.Line)
			}
			if key.Tag == "!!merge" {
				return nil, fmt.Errorf("line %d: merge keys are not supported", key.Line)
			}
			if key.Value == "" || strings.Contains(key.Value, ".") {
				return nil, fmt.Errorf("line %d: key %q: names must be non-empty and contain no \".\"", key.Line, key.Value)
			}

			child, err := decodeNode(value)
			if err != nil {
				return nil, err
			}
			if err := group.Set(key.Value, child); err != nil {
				return nil, fmt.Errorf("line %d: %w", key.Line, err)
			}
		}
		return group, nil

	default:
		return nil, fmt.Errorf("line %d: expected a color or a group", n.Line)
	}
}
