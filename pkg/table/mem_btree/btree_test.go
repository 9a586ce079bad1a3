package mem_btree

import (
	"testing"

	"github.com/dborchard/keybench/pkg/table"
	tests "github.com/dborchard/keybench/pkg/z_tests"
	"github.com/stretchr/testify/assert"
)

func newTable(opts table.Options) table.ITable[int64] {
	return New[int64](opts)
}

func TestInsertContains(t *testing.T) {
	tests.TestInsertContains(newTable, t)
}

func TestSentinelKeys(t *testing.T) {
	tests.TestSentinelKeys(newTable, t)
}

func TestLen(t *testing.T) {
	tests.TestLen(newTable, t)
}

func TestMisses(t *testing.T) {
	tests.TestMisses(newTable, t)
}

func TestMatchingRate(t *testing.T) {
	tests.TestMatchingRate(newTable, true, t)
}

func TestConcurrentContains(t *testing.T) {
	tests.TestConcurrentContains(newTable, t)
}

func TestScan(t *testing.T) {
	tbl := New[int32](table.DefaultOptions(8)).(*Tree[int32])
	defer tbl.Close()

	for _, k := range []int32{9, 3, 7, 1, 5} {
		tbl.Insert(k)
	}

	assert.Equal(t, []int32{3, 5, 7}, tbl.Scan(2, 3))
	assert.Equal(t, []int32{9}, tbl.Scan(8, 10))
	assert.Empty(t, tbl.Scan(10, 10))
}
