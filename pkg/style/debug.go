package style

// DebugNodeKind identifies a chain node variant in debug dumps.
type DebugNodeKind int

const (
	// DebugNodeEmpty is the empty chain.
	DebugNodeEmpty DebugNodeKind = iota
	// DebugNodeItem is a single-item extension of a prefix.
	DebugNodeItem
	// DebugNodeCombined is the concatenation of two chains.
	DebugNodeCombined
)

// DebugNode mirrors the chain's persistent node structure for inspection
// tooling (see pkg/styledebug). Application code should use ForEach; the
// node shape is an implementation detail that debug output makes visible.
type DebugNode struct {
	Kind DebugNodeKind

	// Item is set for DebugNodeItem nodes.
	Item Item
	// Prev is the prefix of a DebugNodeItem node; nil when the item was
	// appended to the empty chain.
	Prev *DebugNode

	// Left and Right are the operands of a DebugNodeCombined node.
	Left  *DebugNode
	Right *DebugNode
}

// DebugTree returns the chain's node structure. The result is a fresh
// tree; shared chain nodes are expanded into distinct DebugNodes.
func (c Chain) DebugTree() *DebugNode {
	return debugTree(c.node)
}

func debugTree(n *chainNode) *DebugNode {
	if n == nil {
		return &DebugNode{Kind: DebugNodeEmpty}
	}
	if n.item != nil {
		d := &DebugNode{Kind: DebugNodeItem, Item: n.item}
		if n.prev != nil {
			d.Prev = debugTree(n.prev)
		}
		return d
	}
	return &DebugNode{
		Kind:  DebugNodeCombined,
		Left:  debugTree(n.left),
		Right: debugTree(n.right),
	}
}
