package types

import "encoding/json"

// Model is one leaderboard record as stored in the dataset file.
type Model struct {
	// Stable identifier, used in /model/<id> URLs.
	// example: claude-3-7-sonnet
	ID string `json:"id" example:"claude-3-7-sonnet"`
	// Display name.
	// example: Claude 3.7 Sonnet
	Name string `json:"name" example:"Claude 3.7 Sonnet"`
	// Dense operational rank (1 = best); null when the model has no
	// operational benchmark data.
	// example: 1
	OperationalRank *int `json:"operationalRank" example:"1"`
	// Dense safety rank (1 = best); null when the model has no safety data.
	// example: 2
	SafetyRank *int `json:"safetyRank" example:"2"`
	// example: Anthropic
	Developer string `json:"developer" example:"Anthropic"`
	// Logo URL or asset path for the developer.
	DeveloperLogo string `json:"developerLogo,omitempty"`
	// Free-text parameter count, e.g. "7B Parameters".
	// example: 7B Parameters
	Size string `json:"size" example:"7B Parameters"`
	// example: 2025-02-24
	Released string `json:"released" example:"2025-02-24"`

	CodeLMArena   Value `json:"codeLMArena" swaggertype:"number"`
	MMLU          Value `json:"mmlu" swaggertype:"number"`
	MathLiveBench Value `json:"mathLiveBench" swaggertype:"number"`
	CodeLiveBench Value `json:"codeLiveBench" swaggertype:"number"`
	// USD per million input tokens.
	InputCost Value `json:"inputCost" swaggertype:"number"`
	// USD per million output tokens.
	OutputCost Value `json:"outputCost" swaggertype:"number"`

	// example: Oct 2024
	CutoffKnowledge string `json:"cutoffKnowledge" example:"Oct 2024"`
	// example: 200K
	ContextLength string `json:"contextLength" example:"200K"`
	// example: Proprietary
	License string `json:"license" example:"Proprietary"`

	// Percentage of red-teaming prompts answered safely (0-100).
	SafeResponses Value `json:"safeResponses" swaggertype:"number"`
	// Percentage of red-teaming prompts answered unsafely (0-100).
	UnsafeResponses Value `json:"unsafeResponses" swaggertype:"number"`
	// Percentage of jailbreak attempts resisted (0-100).
	JailbreakingResistance Value `json:"jailbreakingResistance" swaggertype:"number"`

	// Output speed in tokens per second.
	OutputSpeed Value `json:"outputSpeed" swaggertype:"number"`
	// Time to first token in seconds.
	Latency Value `json:"latency" swaggertype:"number"`

	// Source holds the record exactly as it was read from the dataset file,
	// so a rewrite keeps keys and tokens the fields above do not model.
	Source json.RawMessage `json:"-" swaggerignore:"true"`
}

// HasSafetyData reports whether any red-teaming metric is known.
func (m Model) HasSafetyData() bool {
	return m.SafeResponses.IsKnown() || m.UnsafeResponses.IsKnown() || m.JailbreakingResistance.IsKnown()
}
