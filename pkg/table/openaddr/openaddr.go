// Package openaddr is an open-addressing hash set with linear probing.
//
// Slots hold keys inline. The key values 0 and 1 mark empty and erased slots,
// the convention the UNIQUE key distribution keeps clear of; callers may still
// insert them and they are tracked outside the slot array.
package openaddr

import (
	"sync"

	"github.com/dborchard/keybench/pkg/table"
	"github.com/dborchard/keybench/pkg/y/entry"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

const (
	emptySentinel  = 0
	erasedSentinel = 1

	minSlots = 16
	// grow once live keys plus tombstones pass 3/4 of the slots
	maxLoadNum = 3
	maxLoadDen = 4
)

type Set[K constraints.Integer] struct {
	mu sync.RWMutex

	slots []K
	mask  uint64
	size  int
	used  int // size + tombstones

	hasEmptyKey  bool
	hasErasedKey bool
}

func New[K constraints.Integer](opts table.Options) table.ITable[K] {
	return NewSet[K](opts.Capacity)
}

func NewSet[K constraints.Integer](capacity int) *Set[K] {
	s := &Set[K]{}
	s.init(slotsFor(capacity))
	return s
}

func slotsFor(capacity int) int {
	n := minSlots
	for n*maxLoadNum/maxLoadDen < capacity {
		n <<= 1
	}
	return n
}

func (s *Set[K]) init(n int) {
	s.slots = make([]K, n)
	s.mask = uint64(n - 1)
	s.size = 0
	s.used = 0
}

func (s *Set[K]) Name() string {
	return "openaddr"
}

func hash[K constraints.Integer](k K) uint64 {
	var buf [entry.KeySize]byte
	entry.PutKey(buf[:], k)
	return xxh3.Hash(buf[:])
}

func (s *Set[K]) Insert(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case emptySentinel:
		if !s.hasEmptyKey {
			s.hasEmptyKey = true
			s.size++
		}
		return
	case erasedSentinel:
		if !s.hasErasedKey {
			s.hasErasedKey = true
			s.size++
		}
		return
	}

	if (s.used+1)*maxLoadDen > len(s.slots)*maxLoadNum {
		s.rehash()
	}
	s.insert(key)
}

// insert assumes the caller holds the write lock and there is room.
func (s *Set[K]) insert(key K) {
	tombstone := -1
	for i := hash(key) & s.mask; ; i = (i + 1) & s.mask {
		switch s.slots[i] {
		case key:
			return
		case erasedSentinel:
			if tombstone < 0 {
				tombstone = int(i)
			}
		case emptySentinel:
			if tombstone >= 0 {
				s.slots[tombstone] = key
			} else {
				s.slots[i] = key
				s.used++
			}
			s.size++
			return
		}
	}
}

func (s *Set[K]) rehash() {
	old := s.slots
	live := s.liveSlots()

	n := len(old)
	for (live+1)*maxLoadDen > n*maxLoadNum/2 {
		n <<= 1
	}
	s.init(n)

	for _, k := range old {
		if k != emptySentinel && k != erasedSentinel {
			s.insert(k)
		}
	}
	if s.hasEmptyKey {
		s.size++
	}
	if s.hasErasedKey {
		s.size++
	}
}

func (s *Set[K]) liveSlots() int {
	live := s.size
	if s.hasEmptyKey {
		live--
	}
	if s.hasErasedKey {
		live--
	}
	return live
}

func (s *Set[K]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch key {
	case emptySentinel:
		return s.hasEmptyKey
	case erasedSentinel:
		return s.hasErasedKey
	}
	_, ok := s.find(key)
	return ok
}

func (s *Set[K]) find(key K) (uint64, bool) {
	for i := hash(key) & s.mask; ; i = (i + 1) & s.mask {
		switch s.slots[i] {
		case key:
			return i, true
		case emptySentinel:
			return 0, false
		}
	}
}

// Erase removes key and reports whether it was present.
func (s *Set[K]) Erase(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case emptySentinel:
		had := s.hasEmptyKey
		if had {
			s.hasEmptyKey = false
			s.size--
		}
		return had
	case erasedSentinel:
		had := s.hasErasedKey
		if had {
			s.hasErasedKey = false
			s.size--
		}
		return had
	}

	i, ok := s.find(key)
	if !ok {
		return false
	}
	s.slots[i] = erasedSentinel
	s.size--
	return true
}

func (s *Set[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.size
}

// Slots is the current slot count, exposed for load factor reporting.
func (s *Set[K]) Slots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.slots)
}

func (s *Set[K]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.init(minSlots)
	s.hasEmptyKey = false
	s.hasErasedKey = false
}
