package cow_btree

import (
	"github.com/tidwall/btree"
	"sync/atomic"
)

// BTreeGCoW publishes a fresh copy of the tree on every write, so readers
// load a snapshot without taking any lock.
type BTreeGCoW[T any] struct {
	state atomic.Pointer[btree.BTreeG[T]]
}

type IBTreeGCoW[T any] interface {
	Set(item T) (T, bool)
	Get(item T) (T, bool)
	Clear()
	Len() int
}

var _ IBTreeGCoW[any] = new(BTreeGCoW[any])

func NewBTreeGCoW[T any](less func(a, b T) bool) *BTreeGCoW[T] {
	r := BTreeGCoW[T]{}
	r.state.Store(btree.NewBTreeGOptions[T](less, btree.Options{NoLocks: true}))
	return &r
}

// Set is only safe from a single writer.
func (tr *BTreeGCoW[T]) Set(item T) (T, bool) {
	newState := tr.state.Load().Copy()
	res1, res2 := newState.Set(item)
	tr.state.Store(newState)
	return res1, res2
}

func (tr *BTreeGCoW[T]) Get(item T) (T, bool) {
	return tr.state.Load().Get(item)
}

func (tr *BTreeGCoW[T]) Clear() {
	tr.state.Load().Clear()
}

func (tr *BTreeGCoW[T]) Len() int {
	return tr.state.Load().Len()
}
