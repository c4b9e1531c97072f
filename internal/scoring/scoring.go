// Package scoring derives the operational and safety scores of a model and
// turns them into dense ranks.
package scoring

import (
	"sort"

	"llmboard/pkg/types"
)

// Signal is one weighted input of a composite score.
type Signal struct {
	Name   string
	Weight float64
	// Invert scores the signal as 100 - value (lower raw value is better).
	Invert bool
	Value  func(types.Model) types.Value
}

// OperationalSignals feed the operational score.
var OperationalSignals = []Signal{
	{Name: "codeLMArena", Weight: 0.4, Value: func(m types.Model) types.Value { return m.CodeLMArena }},
	{Name: "mathLiveBench", Weight: 0.3, Value: func(m types.Model) types.Value { return m.MathLiveBench }},
	{Name: "codeLiveBench", Weight: 0.3, Value: func(m types.Model) types.Value { return m.CodeLiveBench }},
}

// SafetySignals feed the safety score.
var SafetySignals = []Signal{
	{Name: "safeResponses", Weight: 0.4, Value: func(m types.Model) types.Value { return m.SafeResponses }},
	{Name: "unsafeResponses", Weight: 0.3, Invert: true, Value: func(m types.Model) types.Value { return m.UnsafeResponses }},
	{Name: "jailbreakingResistance", Weight: 0.3, Value: func(m types.Model) types.Value { return m.JailbreakingResistance }},
}

// WeightedScore is the weighted mean of the known signals, normalised by the
// weights that actually contributed. It reports false when no signal is known.
func WeightedScore(m types.Model, signals []Signal) (float64, bool) {
	var score, divisor float64
	for _, s := range signals {
		v, ok := s.Value(m).Float()
		if !ok {
			continue
		}
		if s.Invert {
			v = 100 - v
		}
		score += v * s.Weight
		divisor += s.Weight
	}
	if divisor == 0 {
		return 0, false
	}
	return score / divisor, true
}

// OperationalScore is the composite coding/maths capability score.
func OperationalScore(m types.Model) (float64, bool) { return WeightedScore(m, OperationalSignals) }

// SafetyScore is the composite red-teaming score.
func SafetyScore(m types.Model) (float64, bool) { return WeightedScore(m, SafetySignals) }

// Scored is a ranked entry of one dimension.
type Scored struct {
	Index int
	ID    string
	Name  string
	Score float64
	Rank  int
}

// Summary lists the ranked records of both dimensions in rank order.
type Summary struct {
	Operational []Scored
	Safety      []Scored
}

// Top returns at most n leading entries.
func Top(list []Scored, n int) []Scored {
	if n < len(list) {
		return list[:n]
	}
	return list
}

// AssignRanks writes operationalRank and safetyRank onto every record.
// Records with a score are ranked 1..N by descending score; exact ties keep
// their input order. Records without a score get a nil rank. Nothing other
// than the two rank fields is modified.
func AssignRanks(models []types.Model) Summary {
	return Summary{
		Operational: rank(models, OperationalScore, func(m *types.Model, r *int) { m.OperationalRank = r }),
		Safety:      rank(models, SafetyScore, func(m *types.Model, r *int) { m.SafetyRank = r }),
	}
}

func rank(models []types.Model, score func(types.Model) (float64, bool), set func(*types.Model, *int)) []Scored {
	eligible := make([]Scored, 0, len(models))
	for i, m := range models {
		s, ok := score(m)
		set(&models[i], nil)
		if !ok {
			continue
		}
		eligible = append(eligible, Scored{Index: i, ID: m.ID, Name: m.Name, Score: s})
	}
	sort.SliceStable(eligible, func(i, j int) bool { return eligible[i].Score > eligible[j].Score })
	for i := range eligible {
		r := i + 1
		eligible[i].Rank = r
		set(&models[eligible[i].Index], &r)
	}
	return eligible
}
