package bench

import (
	"github.com/dborchard/keybench/pkg/table"
	"github.com/dborchard/keybench/pkg/table/bloom"
	"github.com/dborchard/keybench/pkg/table/cow_btree"
	"github.com/dborchard/keybench/pkg/table/hashmap"
	"github.com/dborchard/keybench/pkg/table/hwt_btree"
	"github.com/dborchard/keybench/pkg/table/mem_btree"
	"github.com/dborchard/keybench/pkg/table/openaddr"
	"golang.org/x/exp/constraints"
)

func NewTable[K constraints.Integer](typ table.Typ, opts table.Options) (tbl table.ITable[K]) {

	switch typ {
	case table.HashMap:
		tbl = hashmap.New[K](opts)

	case table.OpenAddr:
		tbl = openaddr.New[K](opts)

	case table.BTree:
		tbl = mem_btree.New[K](opts)

	case table.CoWBTree:
		tbl = cow_btree.New[K](opts)

	case table.HWTBTree:
		tbl = hwt_btree.New[K](opts)

	case table.Bloom:
		tbl = bloom.New[K](opts)

	case table.AtomicBloom:
		tbl = bloom.NewAtomic[K](opts)

	case table.BlobBloom:
		tbl = bloom.NewBlocked[K](opts)

	default:
		panic("unknown table type")
	}

	return
}
