package table

import (
	"time"

	"golang.org/x/exp/constraints"
)

// ITable is an associative set under benchmark. Inserts come from a single
// writer; Contains may be called concurrently once inserts are done.
type ITable[K constraints.Integer] interface {
	Insert(key K)
	Contains(key K) bool
	Len() int
	Close()

	Name() string
}

type Options struct {
	// Capacity is the expected number of distinct keys.
	Capacity int
	// FPRate is the target false positive rate of approximate tables.
	FPRate float64
	// TTL bounds the lifetime of keys in expiring tables.
	TTL time.Duration
}

func DefaultOptions(capacity int) Options {
	return Options{
		Capacity: capacity,
		FPRate:   0.01,
		TTL:      10 * time.Minute,
	}
}

type Typ int

const (
	HashMap Typ = iota
	OpenAddr
	BTree
	CoWBTree
	HWTBTree
	Bloom
	AtomicBloom
	BlobBloom
)

var typs = []Typ{HashMap, OpenAddr, BTree, CoWBTree, HWTBTree, Bloom, AtomicBloom, BlobBloom}

func (t Typ) String() string {
	switch t {
	case HashMap:
		return "hashmap"
	case OpenAddr:
		return "openaddr"
	case BTree:
		return "btree"
	case CoWBTree:
		return "cow_btree"
	case HWTBTree:
		return "hwt_btree"
	case Bloom:
		return "bloom"
	case AtomicBloom:
		return "atomic_bloom"
	case BlobBloom:
		return "blob_bloom"
	default:
		return "unknown"
	}
}

// Exact reports whether Contains never returns false positives.
func (t Typ) Exact() bool {
	switch t {
	case Bloom, AtomicBloom, BlobBloom:
		return false
	default:
		return true
	}
}

func ParseTyp(name string) (Typ, bool) {
	for _, t := range typs {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

func Typs() []Typ {
	res := make([]Typ, len(typs))
	copy(res, typs)
	return res
}

func Names() []string {
	names := make([]string, 0, len(typs))
	for _, t := range typs {
		names = append(names, t.String())
	}
	return names
}
