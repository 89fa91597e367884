package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-rbtree/Trees/arrTree"
)

// insertBoth feeds keys to a pointer tree and an arena tree and compares
// them. Validity is checked after every insert for short inputs only.
func insertBoth(t *testing.T, keys []byte) {
	tree, arena := New[byte](), arrTree.New[byte, uint32](0)
	each := len(keys) <= 1<<10
	for _, k := range keys {
		tree.Insert(k)
		arena.Insert(k)
		if each {
			require.True(t, tree.Valid())
			require.True(t, arena.Valid())
		}
	}
	require.True(t, tree.Valid())
	require.True(t, arena.Valid())
	want := slices.Clone(keys)
	slices.Sort(want)
	if len(want) == 0 {
		want = []byte{}
	}
	assert.Equal(t, want, tree.InOrder())
	assert.Equal(t, want, arena.InOrder())
	assert.Equal(t, tree.PreOrder(), arena.PreOrder(), "same inserts must give the same shape")
	assert.LessOrEqual(t, float64(tree.Height()), heightBound(len(keys)))
	tree.links(t)
}

func FuzzRBTree_Insert(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{10, 20, 30, 15, 25, 5, 1})
	f.Add([]byte("abczyx"))
	f.Add([]byte{1, 1, 1, 1, 1, 1, 1, 1})

	f.Fuzz(insertBoth)
}

// More keys than a uint16 arena index can address.
func TestInsertBoth_Long(t *testing.T) {
	keys := make([]byte, 1<<16+100)
	_R.Read(keys)
	insertBoth(t, keys)
}
