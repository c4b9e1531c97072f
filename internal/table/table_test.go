package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmboard/internal/dataset"
	"llmboard/pkg/types"
)

func ids(models []types.Model) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}

func intp(v int) *int { return &v }

func TestFilterClaude(t *testing.T) {
	models := []types.Model{
		{ID: "c", Name: "Claude 3.7 Sonnet", Developer: "Anthropic"},
		{ID: "g", Name: "GPT-4.5", Developer: "OpenAI"},
	}
	got := Filter(models, "claude")
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestFilterFieldsAndCase(t *testing.T) {
	models := []types.Model{
		{ID: "a", Name: "Alpha", Developer: "Acme", License: "Apache 2.0"},
		{ID: "b", Name: "Beta", Developer: "Bolt", CutoffKnowledge: "Dec 2023"},
		{ID: "c", Name: "Gamma", Developer: "CAPS"},
	}
	assert.Equal(t, []string{"a"}, ids(Filter(models, "APACHE")))
	assert.Equal(t, []string{"b"}, ids(Filter(models, "dec 20")))
	assert.Equal(t, []string{"c"}, ids(Filter(models, "caps")))
	assert.Empty(t, Filter(models, "zzz"))
}

func TestFilterEmptyAndIdempotent(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	assert.Equal(t, ids(models), ids(Filter(models, "")))

	once := Filter(models, "open")
	twice := Filter(once, "open")
	assert.Equal(t, ids(once), ids(twice))
	assert.NotEmpty(t, once)
}

func TestParseSize(t *testing.T) {
	cases := map[string]float64{
		"7B Parameters":   7,
		"1.5T Parameters": 1500,
		"405b":            405,
		"13 B":            13,
		"":                UnknownSize,
		"-":               UnknownSize,
		"Unknown":         UnknownSize,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSize(in), in)
	}
}

func TestSortSizeLargestFirstOnAsc(t *testing.T) {
	models := []types.Model{
		{ID: "small", Size: "7B Parameters"},
		{ID: "none", Size: ""},
		{ID: "huge", Size: "1.8T Parameters"},
		{ID: "mid", Size: "70B"},
		{ID: "dash", Size: "-"},
	}
	assert.Equal(t, []string{"huge", "mid", "small", "none", "dash"}, ids(Sort(models, FieldSize, Asc)))
	assert.Equal(t, []string{"small", "mid", "huge", "none", "dash"}, ids(Sort(models, FieldSize, Desc)))
}

func TestSortUnknownAlwaysLast(t *testing.T) {
	models := []types.Model{
		{ID: "u1", MMLU: types.ParseValue("-")},
		{ID: "a", MMLU: types.ParseValue("70%")},
		{ID: "u2"},
		{ID: "b", MMLU: types.ParseValue("85.5%")},
		{ID: "u3", MMLU: types.ParseValue("pending")},
	}
	assert.Equal(t, []string{"a", "b", "u1", "u2", "u3"}, ids(Sort(models, FieldMMLU, Asc)))
	assert.Equal(t, []string{"b", "a", "u1", "u2", "u3"}, ids(Sort(models, FieldMMLU, Desc)))
}

func TestSortSentinelPropertyAllFields(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	for _, f := range Fields() {
		spec, _ := Lookup(f)
		for _, o := range []Order{Asc, Desc} {
			sorted := Sort(models, f, o)
			require.Len(t, sorted, len(models))
			seenUnknown := false
			for _, m := range sorted {
				known := spec.key(m).known
				if !known {
					seenUnknown = true
					continue
				}
				assert.False(t, seenUnknown, "field %s %s: known value %s after unknown", f, o, m.ID)
			}
		}
	}
}

func TestSortSafetyPolarity(t *testing.T) {
	models := []types.Model{
		{ID: "lo", SafeResponses: types.Known(60), UnsafeResponses: types.Known(40), JailbreakingResistance: types.Known(10)},
		{ID: "hi", SafeResponses: types.Known(99), UnsafeResponses: types.Known(1), JailbreakingResistance: types.Known(90)},
		{ID: "none"},
	}
	assert.Equal(t, []string{"hi", "lo", "none"}, ids(Sort(models, FieldSafeResponses, Asc)))
	assert.Equal(t, []string{"lo", "hi", "none"}, ids(Sort(models, FieldSafeResponses, Desc)))
	assert.Equal(t, []string{"hi", "lo", "none"}, ids(Sort(models, FieldJailbreakingResistance, Asc)))
	assert.Equal(t, []string{"hi", "lo", "none"}, ids(Sort(models, FieldUnsafeResponses, Asc)))
	assert.Equal(t, []string{"lo", "hi", "none"}, ids(Sort(models, FieldUnsafeResponses, Desc)))
}

func TestSortLiteralNumeric(t *testing.T) {
	models := []types.Model{
		{ID: "r3", OperationalRank: intp(3), InputCost: types.Known(10)},
		{ID: "rnil", InputCost: types.Known(0.5)},
		{ID: "r1", OperationalRank: intp(1)},
	}
	assert.Equal(t, []string{"r1", "r3", "rnil"}, ids(Sort(models, FieldOperationalRank, Asc)))
	assert.Equal(t, []string{"r3", "r1", "rnil"}, ids(Sort(models, FieldOperationalRank, Desc)))
	assert.Equal(t, []string{"rnil", "r3", "r1"}, ids(Sort(models, FieldInputCost, Asc)))
}

func TestSortTextCollation(t *testing.T) {
	models := []types.Model{
		{ID: "z", Name: "zeta"},
		{ID: "dash", Name: "-"},
		{ID: "A", Name: "Alpha"},
		{ID: "b", Name: "beta"},
	}
	assert.Equal(t, []string{"A", "b", "z", "dash"}, ids(Sort(models, FieldName, Asc)))
	assert.Equal(t, []string{"z", "b", "A", "dash"}, ids(Sort(models, FieldName, Desc)))
}

func TestSortStableOnTies(t *testing.T) {
	models := []types.Model{
		{ID: "1", Developer: "OpenAI"},
		{ID: "2", Developer: "Anthropic"},
		{ID: "3", Developer: "OpenAI"},
		{ID: "4", Developer: "Anthropic"},
	}
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(Sort(models, FieldDeveloper, Asc)))
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	models := []types.Model{{ID: "b"}, {ID: "a"}}
	assert.Equal(t, []string{"b", "a"}, ids(Sort(models, Field("bogus"), Asc)))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	models := []types.Model{{ID: "b", Name: "b"}, {ID: "a", Name: "a"}}
	_ = Sort(models, FieldName, Asc)
	assert.Equal(t, []string{"b", "a"}, ids(models))
}

func TestFilterSortCommute(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	for _, f := range Fields() {
		for _, o := range []Order{Asc, Desc} {
			a := Sort(Filter(models, "o"), f, o)
			b := Filter(Sort(models, f, o), "o")
			assert.Equal(t, ids(a), ids(b), "%s %s", f, o)
		}
	}
}

func TestApplyDefaultQuery(t *testing.T) {
	models, err := dataset.Embedded()
	require.NoError(t, err)
	view := Apply(models, DefaultQuery())
	require.NotEmpty(t, view)
	require.NotNil(t, view[0].OperationalRank)
	assert.Equal(t, 1, *view[0].OperationalRank)
}

func TestParseFieldAndOrder(t *testing.T) {
	f, ok := ParseField("jailbreakingResistance")
	assert.True(t, ok)
	assert.Equal(t, FieldJailbreakingResistance, f)
	_, ok = ParseField("Name")
	assert.False(t, ok)

	o, ok := ParseOrder("")
	assert.True(t, ok)
	assert.Equal(t, Asc, o)
	o, ok = ParseOrder("DESC")
	assert.True(t, ok)
	assert.Equal(t, Desc, o)
	_, ok = ParseOrder("up")
	assert.False(t, ok)
	assert.Len(t, Fields(), 20)
}
