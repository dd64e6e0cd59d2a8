package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// TestReconstruct_Nil returns nothing for a nil node.
func TestReconstruct_Nil(t *testing.T) {
	assert.Nil(t, search.Reconstruct[int, string](nil))
	var p search.Path[int, string]
	assert.Zero(t, p.Transitions())
	_, ok := p.Last()
	assert.False(t, ok)
}

// TestReconstruct_RootOnly yields one label-free step.
func TestReconstruct_RootOnly(t *testing.T) {
	root := search.NewRoot[string, int]("S")
	p := search.Reconstruct(root)
	require.Len(t, p, 1)
	assert.Equal(t, "S", p[0].State)
	assert.False(t, p[0].HasLabel)
	assert.Empty(t, p.Labels())
}

// TestReconstruct_LabelAlignment checks that the label stored at position i
// is the transition from state i to state i+1 and the last step carries none.
func TestReconstruct_LabelAlignment(t *testing.T) {
	res, err := search.Search[int, string](chain, 1, 4, search.WithMode(search.FirstSolution))
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)

	p := search.Reconstruct(res.Solutions[0])
	require.Equal(t, 4, p.Len())
	assert.Equal(t, 3, p.Transitions())
	for i := 0; i < 3; i++ {
		assert.True(t, p[i].HasLabel, "step %d", i)
		assert.Equal(t, "inc", p[i].Label)
	}
	assert.False(t, p[3].HasLabel)
	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, 4, last)
}

// TestReconstruct_Idempotent reconstructs the same node twice.
func TestReconstruct_Idempotent(t *testing.T) {
	res, err := search.Search[int, string](table(diamond), 1, 4)
	require.NoError(t, err)
	for _, sol := range res.Solutions {
		assert.Equal(t, search.Reconstruct(sol), search.Reconstruct(sol))
	}
}
