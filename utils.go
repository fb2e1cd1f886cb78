package mathml

import (
	"fmt"
	"unicode/utf8"
)

// arity checks element has exactly n children
func arity(node *Node, children []*Node, n int) error {
	if len(children) != n {
		return fmt.Errorf("%v expects %d children, got %d: %w", node.Data, n, len(children), ErrArity)
	}

	return nil
}

// group wraps script in parentheses unless it's a single character
func group(script string) string {
	if utf8.RuneCountInString(script) == 1 {
		return script
	}

	return "(" + script + ")"
}
