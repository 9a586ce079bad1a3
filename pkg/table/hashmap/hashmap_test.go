package hashmap

import (
	"testing"

	"github.com/dborchard/keybench/pkg/table"
	tests "github.com/dborchard/keybench/pkg/z_tests"
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
