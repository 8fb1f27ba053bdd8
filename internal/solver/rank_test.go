package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrdering(t *testing.T) {
	results := []BuildResult{
		{TotalRaw: 10, TotalEffective: 8, fp: "c"},
		{TotalRaw: 12, TotalEffective: 7, fp: "b"},
		{TotalRaw: 10, TotalEffective: 9, fp: "a"},
	}
	Rank(results)

	assert.Equal(t, 12, results[0].TotalRaw)
	// equal raw totals fall back to effective total
	assert.Equal(t, 9, results[1].TotalEffective)
	assert.Equal(t, 8, results[2].TotalEffective)
}

func TestRankTieBreakDeterministic(t *testing.T) {
	mk := func() []BuildResult {
		return []BuildResult{
			{TotalRaw: 5, TotalEffective: 5, fp: "z"},
			{TotalRaw: 5, TotalEffective: 5, fp: "m"},
			{TotalRaw: 5, TotalEffective: 5, fp: "a"},
		}
	}
	a, b := mk(), mk()
	Rank(a)
	Rank(b)
	assert.Equal(t, a, b)
	assert.Equal(t, "a", a[0].fp)
	assert.Equal(t, "z", a[2].fp)
}
