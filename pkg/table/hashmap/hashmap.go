package hashmap

import (
	"sync"

	"github.com/dborchard/keybench/pkg/table"
	"golang.org/x/exp/constraints"
)

// HashMap is the Go map baseline.
type HashMap[K constraints.Integer] struct {
	mu   sync.RWMutex
	keys map[K]struct{}
}

func New[K constraints.Integer](opts table.Options) table.ITable[K] {
	return &HashMap[K]{
		keys: make(map[K]struct{}, opts.Capacity),
	}
}

func (h *HashMap[K]) Name() string {
	return "hashmap"
}

func (h *HashMap[K]) Insert(key K) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.keys[key] = struct{}{}
}

func (h *HashMap[K]) Contains(key K) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.keys[key]
	return ok
}

func (h *HashMap[K]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.keys)
}

func (h *HashMap[K]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clear(h.keys)
}
