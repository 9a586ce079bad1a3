package cow_btree

import (
	"github.com/dborchard/keybench/pkg/table"
	"golang.org/x/exp/constraints"
)

type Tree[K constraints.Integer] struct {
	tree *BTreeGCoW[K]
}

func New[K constraints.Integer](_ table.Options) table.ITable[K] {
	return &Tree[K]{
		tree: NewBTreeGCoW(func(a, b K) bool {
			return a < b
		}),
	}
}

func (t *Tree[K]) Name() string {
	return "cow_btree"
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

func (t *Tree[K]) Close() {
	t.tree.Clear()
}
