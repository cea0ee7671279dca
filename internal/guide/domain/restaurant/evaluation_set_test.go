package restaurant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
)

func testRestaurant(t *testing.T) *Restaurant {
	t.Helper()
	c := city.Rehydrate(1, "2000", "Neuchatel")
	gt := gastrotype.Rehydrate(1, "Pizzeria", "Italian cuisine")
	return Rehydrate(42, 0, "Chez Marcel", "", "", "Rue du Lac 3", c, gt)
}

func testBasic(t *testing.T, liked bool) *BasicEvaluation {
	t.Helper()
	e, err := NewBasicEvaluation(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), liked, "192.168.1.10")
	require.NoError(t, err)
	return e
}

func testComplete(t *testing.T, username string) *CompleteEvaluation {
	t.Helper()
	e, err := NewCompleteEvaluation(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "excellent food", username)
	require.NoError(t, err)
	crit := criterion.Rehydrate(1, "service", "")
	g, err := NewGrade(4, crit)
	require.NoError(t, err)
	e.AddGrade(g)
	return e
}

// wrapping a known variant produces a value no routing case recognizes
type unknownEvaluation struct {
	*BasicEvaluation
}

func TestEvaluationSet_LenMatchesUnderlyingCollections(t *testing.T) {
	r := testRestaurant(t)
	r.AddBasicEvaluation(testBasic(t, true))
	r.AddBasicEvaluation(testBasic(t, false))
	require.NoError(t, r.AddCompleteEvaluation(testComplete(t, "alice")))

	view := r.Evaluations()
	assert.Equal(t, len(r.BasicEvaluations())+len(r.CompleteEvaluations()), view.Len())
	assert.Equal(t, 3, view.Len())
}

func TestEvaluationSet_AddRoutesByVariant(t *testing.T) {
	r := testRestaurant(t)
	view := r.Evaluations()

	assert.True(t, view.Add(testBasic(t, true)))
	assert.Len(t, r.BasicEvaluations(), 1)
	assert.Empty(t, r.CompleteEvaluations())

	assert.True(t, view.Add(testComplete(t, "bob")))
	assert.Len(t, r.BasicEvaluations(), 1)
	assert.Len(t, r.CompleteEvaluations(), 1)
}

func TestEvaluationSet_AddUnknownVariantNotAdded(t *testing.T) {
	r := testRestaurant(t)
	view := r.Evaluations()

	added := view.Add(unknownEvaluation{testBasic(t, true)})
	assert.False(t, added)
	assert.Equal(t, 0, view.Len())
}

func TestEvaluationSet_RemoveSearchesBothCollections(t *testing.T) {
	r := testRestaurant(t)
	basic := testBasic(t, true)
	complete := testComplete(t, "alice")
	r.AddBasicEvaluation(basic)
	require.NoError(t, r.AddCompleteEvaluation(complete))

	view := r.Evaluations()
	assert.True(t, view.Remove(complete))
	assert.Empty(t, r.CompleteEvaluations())
	assert.Len(t, r.BasicEvaluations(), 1)

	assert.True(t, view.Remove(basic))
	assert.Equal(t, 0, view.Len())

	assert.False(t, view.Remove(basic))
}

func TestEvaluationSet_Contains(t *testing.T) {
	r := testRestaurant(t)
	basic := testBasic(t, true)
	r.AddBasicEvaluation(basic)

	view := r.Evaluations()
	assert.True(t, view.Contains(basic))
	assert.False(t, view.Contains(testBasic(t, false)))
	assert.False(t, view.Contains(testComplete(t, "carol")))
}

func TestEvaluationSet_Clear(t *testing.T) {
	r := testRestaurant(t)
	r.AddBasicEvaluation(testBasic(t, true))
	require.NoError(t, r.AddCompleteEvaluation(testComplete(t, "alice")))

	r.Evaluations().Clear()

	assert.Empty(t, r.BasicEvaluations())
	assert.Empty(t, r.CompleteEvaluations())
}

func TestEvaluationSet_IterationOrderAndRestart(t *testing.T) {
	r := testRestaurant(t)
	b1 := testBasic(t, true)
	b2 := testBasic(t, false)
	c1 := testComplete(t, "alice")
	r.AddBasicEvaluation(b1)
	r.AddBasicEvaluation(b2)
	require.NoError(t, r.AddCompleteEvaluation(c1))

	view := r.Evaluations()

	var first []Evaluation
	for e := range view.All() {
		first = append(first, e)
	}
	require.Len(t, first, 3)
	assert.Same(t, b1, first[0].(*BasicEvaluation))
	assert.Same(t, b2, first[1].(*BasicEvaluation))
	assert.Same(t, c1, first[2].(*CompleteEvaluation))

	// re-iterating starts over
	var second []Evaluation
	for e := range view.All() {
		second = append(second, e)
	}
	assert.Equal(t, first, second)
}

func TestEvaluationSet_ReplacePartitionsByVariant(t *testing.T) {
	r := testRestaurant(t)
	r.AddBasicEvaluation(testBasic(t, true))

	b := testBasic(t, false)
	c := testComplete(t, "dave")
	r.SetEvaluations([]Evaluation{b, c, unknownEvaluation{testBasic(t, true)}})

	assert.Len(t, r.BasicEvaluations(), 1)
	assert.Same(t, b, r.BasicEvaluations()[0])
	assert.Len(t, r.CompleteEvaluations(), 1)
	assert.Same(t, c, r.CompleteEvaluations()[0])
	assert.Equal(t, 2, r.Evaluations().Len())
}

func TestEvaluationSet_ViewIsLive(t *testing.T) {
	r := testRestaurant(t)
	view := r.Evaluations()
	assert.Equal(t, 0, view.Len())

	r.AddBasicEvaluation(testBasic(t, true))
	assert.Equal(t, 1, view.Len())
}
