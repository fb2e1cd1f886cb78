package mathml

import "strings"

// String converts node to AsciiMath using default converter
func String(node *Node) (string, error) {
	return std.String(node)
}

// normalize collapses every run of whitespaces into a single space and trims the result
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
