package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The trees below are the reference implementations the results are compared against.
// gods keeps unique keys, so multiplicity goes into the value; GoLLRB keeps
// duplicates through InsertNoReplace; btree gives the distinct key set.

func godsInOrder(ref *redblacktree.Tree) []int {
	var res []int
	for it := ref.Iterator(); it.Next(); {
		for range it.Value().(int) {
			res = append(res, it.Key().(int))
		}
	}
	return res
}

func llrbInOrder(ref *llrb.LLRB) []int {
	res := make([]int, 0, ref.Len())
	if ref.Len() == 0 {
		return res
	}
	ref.AscendGreaterOrEqual(ref.Min(), func(i llrb.Item) bool {
		res = append(res, int(i.(llrb.Int)))
		return true
	})
	return res
}

func TestTree_Differential(t *testing.T) {
	forEachImpl(t, func(t *testing.T, tree Tree[int]) {
		gods := redblacktree.NewWithIntComparator()
		lr := llrb.New()
		bt := btree.NewOrderedG[int](16)

		for i := 0; i < 20000; i++ {
			v := _R.Intn(3000) - 1500
			tree.Insert(v)
			if c, ok := gods.Get(v); ok {
				gods.Put(v, c.(int)+1)
			} else {
				gods.Put(v, 1)
			}
			lr.InsertNoReplace(llrb.Int(v))
			bt.ReplaceOrInsert(v)
		}
		require.True(t, tree.Valid())

		got := tree.InOrder()
		assert.Equal(t, godsInOrder(gods), got)
		assert.Equal(t, llrbInOrder(lr), got)
		assert.Equal(t, lr.Len(), tree.Size())

		var distinct []int
		prev := 0
		for i, v := range got {
			if i == 0 || v != prev {
				distinct = append(distinct, v)
			}
			prev = v
		}
		var want []int
		bt.Ascend(func(v int) bool {
			want = append(want, v)
			return true
		})
		assert.Equal(t, want, distinct)

		for v := -1600; v < 1600; v++ {
			c, ok := gods.Get(v)
			require.Equal(t, ok, tree.Has(v), "Has(%d)", v)
			require.Equal(t, bt.Has(v), tree.Has(v), "Has(%d)", v)
			if ok {
				require.Equal(t, c.(int), tree.Count(v), "Count(%d)", v)
			}
		}

		lo, _ := tree.Minimum()
		hi, _ := tree.Maximum()
		bmin, _ := bt.Min()
		bmax, _ := bt.Max()
		assert.Equal(t, bmin, lo)
		assert.Equal(t, bmax, hi)
	})
}
