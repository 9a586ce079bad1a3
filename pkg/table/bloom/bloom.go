// Package bloom adapts approximate membership filters to table.ITable.
// Contains may report false positives at roughly the configured FPRate and
// Len counts inserts, duplicates included.
package bloom

import (
	"sync/atomic"

	bab "github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	atomicbloom "github.com/ericvolp12/atomic-bloom"
	"github.com/greatroar/blobloom"

	"github.com/dborchard/keybench/pkg/table"
	"github.com/dborchard/keybench/pkg/y/entry"
	"golang.org/x/exp/constraints"
)

type filter interface {
	add(key []byte)
	test(key []byte) bool
}

type Filter[K constraints.Integer] struct {
	name    string
	f       filter
	inserts atomic.Int64
}

func newFilter[K constraints.Integer](name string, f filter) *Filter[K] {
	return &Filter[K]{name: name, f: f}
}

// New is backed by bits-and-blooms.
func New[K constraints.Integer](opts table.Options) table.ITable[K] {
	f := bab.NewWithEstimates(capacity(opts), opts.FPRate)
	return newFilter[K]("bloom", babFilter{f})
}

// NewAtomic is safe for concurrent inserts.
func NewAtomic[K constraints.Integer](opts table.Options) table.ITable[K] {
	f := atomicbloom.NewWithEstimates(capacity(opts), opts.FPRate)
	return newFilter[K]("atomic_bloom", atomicFilter{f})
}

// NewBlocked is a cache-blocked filter fed with xxhash digests.
func NewBlocked[K constraints.Integer](opts table.Options) table.ITable[K] {
	f := blobloom.NewOptimized(blobloom.Config{
		Capacity: uint64(capacity(opts)),
		FPRate:   opts.FPRate,
	})
	return newFilter[K]("blob_bloom", blobFilter{f})
}

func capacity(opts table.Options) uint {
	if opts.Capacity < 1 {
		return 1
	}
	return uint(opts.Capacity)
}

func (b *Filter[K]) Name() string {
	return b.name
}

func (b *Filter[K]) Insert(key K) {
	var buf [entry.KeySize]byte
	entry.PutKey(buf[:], key)
	b.f.add(buf[:])
	b.inserts.Add(1)
}

func (b *Filter[K]) Contains(key K) bool {
	var buf [entry.KeySize]byte
	entry.PutKey(buf[:], key)
	return b.f.test(buf[:])
}

func (b *Filter[K]) Len() int {
	return int(b.inserts.Load())
}

func (b *Filter[K]) Close() {}

type babFilter struct{ f *bab.BloomFilter }

func (b babFilter) add(key []byte)       { b.f.Add(key) }
func (b babFilter) test(key []byte) bool { return b.f.Test(key) }

type atomicFilter struct{ f *atomicbloom.BloomFilter }

func (a atomicFilter) add(key []byte)       { a.f.Add(key) }
func (a atomicFilter) test(key []byte) bool { return a.f.Test(key) }

// blobloom requires pre-hashing
type blobFilter struct{ f *blobloom.Filter }

func (b blobFilter) add(key []byte)       { b.f.Add(xxhash.Sum64(key)) }
func (b blobFilter) test(key []byte) bool { return b.f.Has(xxhash.Sum64(key)) }
