package export

// OrderedNodes walks the mapping from the current leaf back to the root via
// parent links and returns the chain in chronological (root-to-leaf) order.
// The walk ends when the identifier is empty, not present in the mapping, or
// already visited (guards against parent cycles in malformed exports). A stale
// parent reference just ends the chain early; partial paths are fine.
func OrderedNodes(mapping map[string]Node, current string) []Node {
	var ordered []Node
	seen := make(map[string]bool)

	for current != "" && !seen[current] {
		node, ok := mapping[current]
		if !ok {
			break
		}
		seen[current] = true
		ordered = append(ordered, node)
		current = node.Parent
	}

	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}
