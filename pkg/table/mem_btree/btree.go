package mem_btree

import (
	"github.com/dborchard/keybench/pkg/table"
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered set. BTreeG carries its own RWMutex, so readers need no
// extra locking.
type Tree[K constraints.Integer] struct {
	tree *btree.BTreeG[K]
}

func New[K constraints.Integer](_ table.Options) table.ITable[K] {
	return &Tree[K]{
		tree: btree.NewBTreeG(func(a, b K) bool {
			return a < b
		}),
	}
}

func (t *Tree[K]) Name() string {
	return "btree"
}

func (t *Tree[K]) Insert(key K) {
	t.tree.Set(key)
}

func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.tree.Get(key)
	return ok
}

func (t *Tree[K]) Len() int {
	return t.tree.Len()
}

// Scan returns up to count keys >= start in ascending order.
func (t *Tree[K]) Scan(start K, count int) []K {
	res := make([]K, 0, count)
	t.tree.Ascend(start, func(item K) bool {
		if len(res) >= count {
			return false
		}
		res = append(res, item)
		return true
	})
	return res
}

func (t *Tree[K]) Close() {
	t.tree.Clear()
}
