package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmboard/internal/dataset"
	"llmboard/pkg/types"
)

func intp(v int) *int { return &v }

func TestOperationalScoreExample(t *testing.T) {
	models := []types.Model{
		{ID: "a", CodeLMArena: types.Known(1300), CodeLiveBench: types.Known(80)},
		{ID: "b", CodeLMArena: types.Known(1100), MathLiveBench: types.Known(60)},
		{ID: "c"},
	}
	sum := AssignRanks(models)

	a, ok := OperationalScore(models[0])
	require.True(t, ok)
	assert.InDelta(t, 777.142857, a, 1e-4)
	b, ok := OperationalScore(models[1])
	require.True(t, ok)
	assert.InDelta(t, 654.285714, b, 1e-4)
	_, ok = OperationalScore(models[2])
	assert.False(t, ok)

	require.NotNil(t, models[0].OperationalRank)
	require.NotNil(t, models[1].OperationalRank)
	assert.Equal(t, 1, *models[0].OperationalRank)
	assert.Equal(t, 2, *models[1].OperationalRank)
	assert.Nil(t, models[2].OperationalRank)
	assert.Len(t, sum.Operational, 2)
}

func TestSafetyScoreInvertsUnsafe(t *testing.T) {
	m := types.Model{
		SafeResponses:          types.Known(90),
		UnsafeResponses:        types.Known(10),
		JailbreakingResistance: types.Known(50),
	}
	s, ok := SafetyScore(m)
	require.True(t, ok)
	assert.InDelta(t, (90*0.4+90*0.3+50*0.3)/1.0, s, 1e-9)

	only := types.Model{UnsafeResponses: types.Known(25)}
	s, ok = SafetyScore(only)
	require.True(t, ok)
	assert.InDelta(t, 75, s, 1e-9)
}

func TestUnknownSentinelsDoNotContribute(t *testing.T) {
	m := types.Model{
		CodeLMArena:   types.ParseValue("-"),
		MathLiveBench: types.ParseValue("64%"),
		CodeLiveBench: types.ParseValue("not run"),
	}
	s, ok := OperationalScore(m)
	require.True(t, ok)
	assert.InDelta(t, 64, s, 1e-9)
}

func TestRanksAreDenseAndStable(t *testing.T) {
	models := []types.Model{
		{ID: "x", CodeLMArena: types.Known(10)},
		{ID: "none"},
		{ID: "y", CodeLMArena: types.Known(30)},
		{ID: "tie1", CodeLMArena: types.Known(20)},
		{ID: "tie2", CodeLMArena: types.Known(20)},
		{ID: "none2", OperationalRank: intp(1)},
	}
	sum := AssignRanks(models)

	want := map[string]int{"y": 1, "tie1": 2, "tie2": 3, "x": 4}
	seen := map[int]bool{}
	for _, m := range models {
		if r, ok := want[m.ID]; ok {
			require.NotNil(t, m.OperationalRank, m.ID)
			assert.Equal(t, r, *m.OperationalRank, m.ID)
			seen[*m.OperationalRank] = true
			continue
		}
		assert.Nil(t, m.OperationalRank, "stale rank must be cleared for %s", m.ID)
		assert.Nil(t, m.SafetyRank)
	}
	assert.Len(t, seen, 4)
	for i, s := range sum.Operational {
		assert.Equal(t, i+1, s.Rank)
	}
	assert.Empty(t, sum.Safety)
}

func TestAssignRanksIsIdempotent(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	AssignRanks(models)
	first := dataset.Clone(models)
	AssignRanks(models)
	assert.Equal(t, first, models)
}

func TestEmbeddedDatasetRanksAreCurrent(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	recomputed := dataset.Clone(models)
	AssignRanks(recomputed)
	for i := range models {
		assert.Equal(t, models[i].OperationalRank, recomputed[i].OperationalRank, models[i].ID)
		assert.Equal(t, models[i].SafetyRank, recomputed[i].SafetyRank, models[i].ID)
	}
}

func TestTop(t *testing.T) {
	list := []Scored{{Rank: 1}, {Rank: 2}, {Rank: 3}}
	assert.Len(t, Top(list, 2), 2)
	assert.Len(t, Top(list, 10), 3)
}
