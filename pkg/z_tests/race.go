package tests

import (
	"sync"
	"testing"

	"github.com/dborchard/keybench/pkg/keygen"
	"github.com/dborchard/keybench/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentContains Single Writer. Multi Reader.
func TestConcurrentContains(newTable NewTable, t *testing.T) {
	const n = 2000
	const readers = 8

	tbl := newTable(table.DefaultOptions(n))
	defer tbl.Close()

	keys := make([]int64, n)
	require.True(t, keygen.Generate(keygen.UNIQUE, keys))
	for _, k := range keys {
		tbl.Insert(k)
	}

	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			for i := r; i < n; i += readers {
				assert.True(t, tbl.Contains(keys[i]), "for %d", keys[i])
			}
		}(r)
	}
	wg.Wait()
}
