// Package styledebug renders style chains for inspection.
//
// The inspector output shows the chain's persistent node structure, not
// just the flattened attribute list: which assignments were appended one
// by one and which arrived through concatenation. That makes it
// possible to see how a style was assembled, e.g. which variant inherited
// which base style.
package styledebug

import (
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/go-drift/stylekit/pkg/style"
)

// Dump renders the chain's node structure as an ASCII tree.
//
// Item nodes print their assignment; a concatenation prints as a "concat"
// branch with the left (earlier) operand above the right (later, winning)
// operand. The empty chain prints as "(empty)".
func Dump(c style.Chain) string {
	tree := tp.New()
	tree.SetValue("chain")
	addNode(tree, c.DebugTree())
	return tree.String()
}

func addNode(branch tp.Tree, node *style.DebugNode) {
	switch node.Kind {
	case style.DebugNodeEmpty:
		branch.AddNode("(empty)")
	case style.DebugNodeItem:
		if node.Prev != nil {
			addNode(branch, node.Prev)
		}
		branch.AddNode(node.Item.String())
	case style.DebugNodeCombined:
		left := branch.AddBranch("concat")
		addNode(left, node.Left)
		right := branch.AddBranch("with")
		addNode(right, node.Right)
	}
}

// Flatten lists the chain's assignments in append order, one per line.
// This is the order ApplyTo replays them in, so for any field the last
// line mentioning it is the effective value.
func Flatten(c style.Chain) string {
	var b strings.Builder
	c.ForEach(func(it style.Item) {
		b.WriteString(it.String())
		b.WriteByte('\n')
	})
	if b.Len() == 0 {
		return "(empty)\n"
	}
	return b.String()
}
