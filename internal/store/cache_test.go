package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/result"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.sqlite3")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTree() *result.Tree {
	return &result.Tree{
		TimeUnit: "h",
		Events: []result.EventSummary{
			{ID: "A", Label: "A", Dimension: ir.Probability, Quantity: 0.1},
			{ID: "B", Label: "B", Dimension: ir.Rate, Quantity: math.Inf(1)},
		},
		Gates: []result.GateResult{
			{
				ID:        "G",
				Label:     "G",
				Type:      ir.OR,
				Quantity:  math.Inf(1),
				Dimension: ir.Rate,
				MinimalCutSets: []result.CutSet{
					{EventIDs: []string{"A"}, Quantity: 0.1, Dimension: ir.Probability},
					{EventIDs: []string{"B"}, Quantity: math.Inf(1), Dimension: ir.Rate},
				},
				Contributions: map[string]float64{"A": 0.1, "B": math.Inf(1)},
				Importances:   map[string]float64{"A": math.NaN(), "B": math.NaN()},
			},
		},
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree := sampleTree()

	id, err := s.Put(ctx, "source text", tree)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	cached, ok, err := s.Get(ctx, "source text")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, cached.ID)
	assert.Equal(t, tree.TimeUnit, cached.Result.TimeUnit)
	assert.True(t, math.IsInf(cached.Result.Gates[0].Quantity, 1))
	assert.True(t, math.IsNaN(cached.Result.Gates[0].Importances["A"]))
}

func TestGetMissReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Get(context.Background(), "never stored")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutIsIdempotentByContentHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree := sampleTree()

	first, err := s.Put(ctx, "same source", tree)
	require.NoError(t, err)
	second, err := s.Put(ctx, "same source", tree)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPutDistinguishesSourceByContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree := sampleTree()

	idA, err := s.Put(ctx, "source A", tree)
	require.NoError(t, err)
	idB, err := s.Put(ctx, "source B", tree)
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)
}
