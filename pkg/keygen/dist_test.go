package keygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDistribution(t *testing.T) {
	for _, d := range Distributions() {
		parsed, ok := ParseDistribution(d.String())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDistribution("gaussian")
	assert.False(t, ok, "names are case sensitive")

	_, ok = ParseDistribution("BOGUS")
	assert.False(t, ok)
}

func TestDistributionString(t *testing.T) {
	assert.Equal(t, "UNIQUE", UNIQUE.String())
	assert.Equal(t, "ERROR", Distribution(99).String())
	assert.Equal(t, []string{"GAUSSIAN", "GEOMETRIC", "UNIFORM", "UNIQUE", "SAME"}, Names())
}
