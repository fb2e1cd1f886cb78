package mathml

// attribute returns value of the node attribute or fallback if attribute is missing or empty
func attribute(node *Node, key, fallback string) string {
	if v := node.Parameters[key]; v != "" {
		return v
	}

	return fallback
}

// flag reads boolean attribute, any non-empty value enables the flag (fence="false" included)
func flag(node *Node, key string) bool {
	return node.Parameters[key] != ""
}
