package mathml

import "strings"

type Kind int

const (
	TextKind = iota
	DocumentKind
	ElementKind
)

type Node struct {
	Kind       Kind
	Parameters map[string]string
	Data       string
	Children   []*Node
}

// content returns children of the node, skipping text nodes which consist of whitespaces only
func (n *Node) content() []*Node {
	var children []*Node
	for _, child := range n.Children {
		if child.Kind == TextKind && strings.TrimSpace(child.Data) == "" {
			continue
		}

		children = append(children, child)
	}

	return children
}
