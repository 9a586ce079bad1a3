package hwt_btree

import (
	"time"

	"github.com/RussellLuo/timingwheel"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/dborchard/keybench/pkg/y/entry"
	"github.com/dborchard/keybench/pkg/y/timestamp"
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

const wheelSize = 64

// ExpiringTree forgets keys TTL after their last insert. A hierarchical timing
// wheel schedules the delete; Contains also hides keys whose timer is late.
type ExpiringTree[K constraints.Integer] struct {
	ttl   time.Duration
	timer *timingwheel.TimingWheel
	tree  *btree.BTreeG[entry.Pair[K, uint64]]
}

func New[K constraints.Integer](opts table.Options) table.ITable[K] {
	e := ExpiringTree[K]{ttl: opts.TTL}

	e.tree = btree.NewBTreeG(func(a, b entry.Pair[K, uint64]) bool {
		return a.Key < b.Key
	})

	tick := opts.TTL / wheelSize
	if tick < time.Millisecond {
		tick = time.Millisecond
	}
	e.timer = timingwheel.NewTimingWheel(tick, wheelSize)
	e.timer.Start()

	return &e
}

func (e *ExpiringTree[K]) Name() string {
	return "hwt_btree"
}

func (e *ExpiringTree[K]) Insert(key K) {
	row := entry.Pair[K, uint64]{
		Key: key,
		Val: timestamp.Now(),
	}
	e.tree.Set(row)

	e.timer.AfterFunc(e.ttl, func() {
		// a newer insert of the same key owns a later timer
		if cur, ok := e.tree.Get(row); ok && cur.Val == row.Val {
			e.tree.Delete(row)
		}
	})
}

func (e *ExpiringTree[K]) Contains(key K) bool {
	row, ok := e.tree.Get(entry.Pair[K, uint64]{Key: key})
	if !ok {
		return false
	}
	return timestamp.IsValidTsUint(row.Val, e.ttl)
}

func (e *ExpiringTree[K]) Len() int {
	return e.tree.Len()
}

func (e *ExpiringTree[K]) Close() {
	e.timer.Stop()
	e.tree.Clear()
}
