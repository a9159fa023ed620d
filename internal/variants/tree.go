package variants

import "github.com/m1gwings/treedrawer/tree"

// Tree renders the expansion of levels as a tree rooted at name. Every path
// from the root to a leaf is one DefineSet returned by Expand.
func Tree(name string, levels []Level) *tree.Tree {
	root := tree.NewTree(tree.NodeString(name))
	addLevel(root, levels)
	return root
}

func addLevel(parent *tree.Tree, levels []Level) {
	if len(levels) == 0 {
		return
	}
	if len(levels[0]) == 0 {
		addLevel(parent, levels[1:])
		return
	}
	for _, opt := range levels[0] {
		child := parent.AddChild(tree.NodeString(opt.String()))
		addLevel(child, levels[1:])
	}
}
