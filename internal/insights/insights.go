// Package insights derives the per-model views shown next to the raw
// leaderboard figures: cost estimates, business use-case ratings, the
// capability radar and red-teaming safety cards.
package insights

import (
	"fmt"
	"math"

	"llmboard/pkg/types"
)

// Token prices in the dataset are USD per million tokens.
const perMillion = 1_000_000

// NotAvailable is the display string for a cost that cannot be computed.
const NotAvailable = "Not Available"

// Cost estimates the USD cost of a request. The estimate is unavailable when
// either price is unknown.
func Cost(m types.Model, inputTokens, outputTokens float64) types.CostEstimate {
	est := types.CostEstimate{
		ModelID:      m.ID,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Display:      NotAvailable,
	}
	in, okIn := m.InputCost.Float()
	out, okOut := m.OutputCost.Float()
	if !okIn || !okOut {
		return est
	}
	est.Available = true
	est.InputUSD = inputTokens * in / perMillion
	est.OutputUSD = outputTokens * out / perMillion
	est.TotalUSD = est.InputUSD + est.OutputUSD
	est.Display = fmt.Sprintf("$%.4f", est.TotalUSD)
	return est
}

// Rating labels.
const (
	Excellent = "Excellent"
	Good      = "Good"
	Fair      = "Fair"
	NoRating  = "N/A"
)

type useCase struct {
	name        string
	description string
	score       func(types.Model) types.Value
	excellent   float64
	good        float64
}

// useCases are graded strictly above each threshold.
var useCases = []useCase{
	{"Content Creation", "Generate articles, blogs, and marketing copy",
		func(m types.Model) types.Value { return m.SafeResponses }, 90, 75},
	{"Chatbot", "Create conversational AI assistants",
		func(m types.Model) types.Value { return m.JailbreakingResistance }, 80, 60},
	{"Customer Service", "Automate support and improve response times", customerService, 85, 70},
	{"Creative Projects", "Generate ideas, stories, and creative content",
		func(m types.Model) types.Value { return m.CodeLMArena }, 1200, 1000},
	{"Code Generation", "Create and debug programming code",
		func(m types.Model) types.Value { return m.CodeLiveBench }, 70, 60},
	{"Research Assistant", "Analyze information and support research",
		func(m types.Model) types.Value { return m.MathLiveBench }, 70, 60},
}

// customerService averages safety and jailbreak resistance; both are needed.
func customerService(m types.Model) types.Value {
	safe, ok1 := m.SafeResponses.Float()
	jail, ok2 := m.JailbreakingResistance.Float()
	if !ok1 || !ok2 {
		return types.Unknown()
	}
	return types.Known((safe + jail) / 2)
}

// UseCases grades m for each business use case, in display order.
func UseCases(m types.Model) []types.UseCaseRating {
	out := make([]types.UseCaseRating, 0, len(useCases))
	for _, uc := range useCases {
		out = append(out, types.UseCaseRating{
			Name:        uc.name,
			Description: uc.description,
			Rating:      grade(uc.score(m), uc.excellent, uc.good),
		})
	}
	return out
}

func grade(v types.Value, excellent, good float64) string {
	f, ok := v.Float()
	switch {
	case !ok:
		return NoRating
	case f > excellent:
		return Excellent
	case f > good:
		return Good
	default:
		return Fair
	}
}

// FullMark is the top of every radar axis.
const FullMark = 100

// Radar returns the five-axis capability profile. Unknown figures plot as 0.
func Radar(m types.Model) []types.RadarPoint {
	return []types.RadarPoint{
		{Subject: "Reasoning", Score: math.Min(FullMark, m.CodeLMArena.Or(0)/10), FullMark: FullMark},
		{Subject: "Mathematics", Score: m.MathLiveBench.Or(0), FullMark: FullMark},
		{Subject: "Coding", Score: m.CodeLiveBench.Or(0), FullMark: FullMark},
		{Subject: "Safety", Score: m.SafeResponses.Or(0), FullMark: FullMark},
		{Subject: "Resilience", Score: m.JailbreakingResistance.Or(0), FullMark: FullMark},
	}
}
