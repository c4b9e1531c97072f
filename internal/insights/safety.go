package insights

import (
	"math"
	"sort"

	"llmboard/pkg/types"
)

// Red-teaming prompt set sizes.
const (
	ResponseTests  = 237
	JailbreakTests = 37
)

// Safety bands.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
	BandUnknown   = "unknown"
)

// thresholds are inclusive band boundaries, best first. For lowerIsBetter
// metrics a value at or below the boundary qualifies.
type thresholds struct {
	excellent, good, fair float64
	lowerIsBetter         bool
}

var (
	safeBands       = thresholds{excellent: 90, good: 75, fair: 50}
	unsafeBands     = thresholds{excellent: 5, good: 15, fair: 30, lowerIsBetter: true}
	resistanceBands = thresholds{excellent: 90, good: 60, fair: 30}
)

func (t thresholds) band(f float64) string {
	better := func(limit float64) bool {
		if t.lowerIsBetter {
			return f <= limit
		}
		return f >= limit
	}
	switch {
	case better(t.excellent):
		return BandExcellent
	case better(t.good):
		return BandGood
	case better(t.fair):
		return BandFair
	default:
		return BandPoor
	}
}

// TestCount converts a percentage into passed prompts out of total, rounding
// half up.
func TestCount(percent float64, total int) types.TestCount {
	return types.TestCount{Passed: int(math.Floor(percent/100*float64(total) + 0.5)), Total: total}
}

func metric(v types.Value, total int, t thresholds) types.SafetyMetric {
	f, ok := v.Float()
	if !ok {
		return types.SafetyMetric{Band: BandUnknown}
	}
	count := TestCount(f, total)
	return types.SafetyMetric{Percent: &f, Count: &count, Band: t.band(f)}
}

// Card builds the red-teaming summary for one model.
func Card(m types.Model) types.SafetyCard {
	return types.SafetyCard{
		ID:                     m.ID,
		Name:                   m.Name,
		Developer:              m.Developer,
		DeveloperLogo:          m.DeveloperLogo,
		SafetyRank:             m.SafetyRank,
		SafeResponses:          metric(m.SafeResponses, ResponseTests, safeBands),
		UnsafeResponses:        metric(m.UnsafeResponses, ResponseTests, unsafeBands),
		JailbreakingResistance: metric(m.JailbreakingResistance, JailbreakTests, resistanceBands),
	}
}

// RedTeaming returns cards for every model with at least one safety metric,
// ordered by safety rank with unranked models last. Ties keep dataset order.
func RedTeaming(models []types.Model) []types.SafetyCard {
	var picked []types.Model
	for _, m := range models {
		if m.HasSafetyData() {
			picked = append(picked, m)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		a, b := picked[i].SafetyRank, picked[j].SafetyRank
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	cards := make([]types.SafetyCard, 0, len(picked))
	for _, m := range picked {
		cards = append(cards, Card(m))
	}
	return cards
}

// Detail assembles the detail view for one model.
func Detail(m types.Model) types.ModelDetail {
	return types.ModelDetail{
		Model:    m,
		Radar:    Radar(m),
		UseCases: UseCases(m),
		Safety:   Card(m),
	}
}
