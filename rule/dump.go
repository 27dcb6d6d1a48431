package rule

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree below r as indented text, for diagnostics and
// test logs. Nodes holding contributions are marked with the number of
// merged properties.
func (r *Rule) Dump() string {
	tree := treeprint.New()
	if r.parent == nil {
		tree.SetValue("(root)")
	} else {
		tree.SetValue(r.dumpLabel())
	}
	r.dumpChildren(tree)
	return tree.String()
}

func (r *Rule) dumpChildren(branch treeprint.Tree) {
	for _, ch := range r.children {
		if len(ch.children) == 0 {
			branch.AddNode(ch.dumpLabel())
			continue
		}
		ch.dumpChildren(branch.AddBranch(ch.dumpLabel()))
	}
}

func (r *Rule) dumpLabel() string {
	if len(r.contribs) == 0 {
		return r.key
	}
	return fmt.Sprintf("%s (%d)", r.key, len(r.merge()))
}
