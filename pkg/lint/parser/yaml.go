package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wadoon/hf3lint/pkg/lint/document"
)

// decodeYAML decodes YAML or JSON into a Document, keeping scalar source
// text so that numeric literals compare as written.
func decodeYAML(data []byte, maxDepth int) (document.Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping", root.Line)
	}
	c := &converter{
		maxDepth: maxDepth,
		budget:   aliasExpansionFactor*countNodes(root) + minNodeBudget,
	}
	value, err := c.convert(root, 0)
	if err != nil {
		return nil, err
	}
	return value.(document.Document), nil
}

// Aliases may expand a document to at most this many times its own node
// count, plus a small allowance.
const (
	aliasExpansionFactor = 10
	minNodeBudget        = 1000
)

// countNodes counts the nodes of the tree without following aliases.
func countNodes(n *yaml.Node) int {
	count := 1
	for _, c := range n.Content {
		count += countNodes(c)
	}
	return count
}

// converter turns yaml nodes into document values within a node budget.
type converter struct {
	maxDepth int
	budget   int
}

// convert returns a Document, a string, or nil for a null scalar.
func (c *converter) convert(n *yaml.Node, depth int) (any, error) {
	if depth >= c.maxDepth {
		return nil, fmt.Errorf("%w: line %d", ErrTooDeep, n.Line)
	}
	c.budget--
	if c.budget < 0 {
		return nil, fmt.Errorf("%w: alias expansion at line %d", ErrTooLarge, n.Line)
	}

	switch n.Kind {
	case yaml.AliasNode:
		return c.convert(n.Alias, depth)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.MappingNode:
		doc := make(document.Document, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := c.convert(val, depth+1)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			doc[key.Value] = v
		}
		return doc, nil
	case yaml.SequenceNode:
		return nil, fmt.Errorf("line %d: sequences are not supported", n.Line)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}
