package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/go-xmldom"

	"github.com/wadoon/hf3lint/pkg/lint/document"
)

func decodeXML(r io.Reader, maxDepth int) (document.Document, error) {
	dom, err := xmldom.Decode(r)
	if err != nil {
		return nil, err
	}

	var roots []xmldom.Element
	for n := dom.FirstChild(); n != nil; n = n.NextSibling() {
		if el, ok := n.(xmldom.Element); ok && n.NodeType() == xmldom.ELEMENT_NODE {
			roots = append(roots, el)
		}
	}
	switch len(roots) {
	case 0:
		return nil, ErrEmptyDocument
	case 1:
	default:
		return nil, fmt.Errorf("unexpected element <%s> after root", roots[1].LocalName())
	}

	root := roots[0]
	value, err := elementValue(root, 1, maxDepth)
	if err != nil {
		return nil, err
	}
	return document.Document{string(root.LocalName()): value}, nil
}

// elementValue turns an element into a Document when it has child
// elements, into its trimmed text otherwise. An element without either
// becomes an empty Document. Of repeated child names the last one wins.
func elementValue(el xmldom.Element, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: <%s> at depth %d", ErrTooDeep, el.LocalName(), depth)
	}

	var (
		children document.Document
		text     strings.Builder
	)
	for n := el.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.NodeType() {
		case xmldom.ELEMENT_NODE:
			child, ok := n.(xmldom.Element)
			if !ok {
				continue
			}
			v, err := elementValue(child, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = document.Document{}
			}
			children[string(child.LocalName())] = v
		case xmldom.TEXT_NODE, xmldom.CDATA_SECTION_NODE:
			text.WriteString(string(n.NodeValue()))
		}
	}

	if children != nil {
		return children, nil
	}
	if s := strings.TrimSpace(text.String()); s != "" {
		return s, nil
	}
	return document.Document{}, nil
}
