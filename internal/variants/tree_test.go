package variants

import (
	"testing"

	"github.com/m1gwings/treedrawer/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countLeaves walks t and counts nodes with no children.
func countLeaves(t *tree.Tree) int {
	if _, err := t.Child(0); err != nil {
		return 1
	}
	n := 0
	for i := 0; ; i++ {
		child, err := t.Child(i)
		if err != nil {
			break
		}
		n += countLeaves(child)
	}
	return n
}

func TestTree_LeavesMatchExpansion(t *testing.T) {
	t.Parallel()

	levels := []Level{level("TEXTURE", "_"), {}, level("SKINNING=2", "_")}

	root := Tree("Foo.fx", levels)

	assert.Equal(t, tree.NodeString("Foo.fx"), root.Val())
	first, err := root.Child(0)
	require.NoError(t, err)
	assert.Equal(t, tree.NodeString("TEXTURE"), first.Val())
	grandchild, err := first.Child(0)
	require.NoError(t, err)
	assert.Equal(t, tree.NodeString("SKINNING=2"), grandchild.Val())
	assert.Equal(t, len(Expand(levels)), countLeaves(root))
	assert.NotEmpty(t, root.String())
}
