package types

// ModelsResponse is returned by GET /api/models.
type ModelsResponse struct {
	// Records matching the query, in display order.
	Models []Model `json:"models"`
	// Number of records in Models.
	// example: 12
	Shown int `json:"shown" example:"12"`
	// Number of records in the dataset.
	// example: 48
	Total int `json:"total" example:"48"`
	// Effective sort field.
	// example: operationalRank
	Sort string `json:"sort" example:"operationalRank"`
	// Effective sort order.
	// example: asc
	Order string `json:"order" example:"asc"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: model not found: gpt-9
	Error string `json:"error" example:"model not found: gpt-9"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// RadarPoint is one axis of the capability profile on the detail page.
type RadarPoint struct {
	// example: Mathematics
	Subject string `json:"subject" example:"Mathematics"`
	// example: 72.5
	Score float64 `json:"score" example:"72.5"`
	// example: 100
	FullMark float64 `json:"fullMark" example:"100"`
}

// UseCaseRating grades a model for a business use case.
type UseCaseRating struct {
	// example: Code Generation
	Name string `json:"name" example:"Code Generation"`
	// example: Create and debug programming code
	Description string `json:"description" example:"Create and debug programming code"`
	// One of Excellent, Good, Fair or N/A.
	// example: Good
	Rating string `json:"rating" example:"Good"`
}

// TestCount converts a percentage into a count over a fixed prompt set.
type TestCount struct {
	// example: 220
	Passed int `json:"passed" example:"220"`
	// example: 237
	Total int `json:"total" example:"237"`
}

// SafetyMetric is one red-teaming figure with its derived count and band.
type SafetyMetric struct {
	// Percentage, absent when the metric was not measured.
	Percent *float64 `json:"percent,omitempty" example:"92.8"`
	// Derived prompt count, absent when the metric was not measured.
	Count *TestCount `json:"count,omitempty"`
	// One of excellent, good, fair, poor or unknown.
	// example: excellent
	Band string `json:"band" example:"excellent"`
}

// SafetyCard summarises a model on the red-teaming page.
type SafetyCard struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Developer              string       `json:"developer"`
	DeveloperLogo          string       `json:"developerLogo,omitempty"`
	SafetyRank             *int         `json:"safetyRank"`
	SafeResponses          SafetyMetric `json:"safeResponses"`
	UnsafeResponses        SafetyMetric `json:"unsafeResponses"`
	JailbreakingResistance SafetyMetric `json:"jailbreakingResistance"`
}

// RedTeamingResponse is returned by GET /api/red-teaming.
type RedTeamingResponse struct {
	Models []SafetyCard `json:"models"`
}

// ModelDetail is returned by GET /api/models/{id}.
type ModelDetail struct {
	Model    Model           `json:"model"`
	Radar    []RadarPoint    `json:"radar"`
	UseCases []UseCaseRating `json:"useCases"`
	Safety   SafetyCard      `json:"safety"`
}

// CostEstimate is returned by GET /api/models/{id}/cost.
type CostEstimate struct {
	// example: claude-3-7-sonnet
	ModelID string `json:"modelId" example:"claude-3-7-sonnet"`
	// example: 1000000
	InputTokens float64 `json:"inputTokens" example:"1000000"`
	// example: 1000000
	OutputTokens float64 `json:"outputTokens" example:"1000000"`
	// False when either price is unknown.
	// example: true
	Available bool `json:"available" example:"true"`
	// example: 3
	InputUSD float64 `json:"inputUsd" example:"3"`
	// example: 15
	OutputUSD float64 `json:"outputUsd" example:"15"`
	// example: 18
	TotalUSD float64 `json:"totalUsd" example:"18"`
	// Display string, "$18.0000" or "Not Available".
	// example: $18.0000
	Display string `json:"display" example:"$18.0000"`
}

// LeadRequest is the body of POST /api/leads.
type LeadRequest struct {
	// example: Ada
	FirstName string `json:"firstName" example:"Ada"`
	// example: Lovelace
	LastName string `json:"lastName" example:"Lovelace"`
	// example: ada@example.com
	Email string `json:"email" example:"ada@example.com"`
	// One of custom, claude, gpt, llama, other.
	// example: claude
	Model string `json:"model,omitempty" example:"claude"`
	// One of content, customer, coding, research, chatbot, other.
	// example: coding
	UseCase string `json:"useCase,omitempty" example:"coding"`
	Message string `json:"message,omitempty"`
}

// LeadResponse acknowledges an accepted lead.
type LeadResponse struct {
	// example: 3f7c8d0e-9a52-4d1b-a1a4-1c0c9e3f1b2a
	ID string `json:"id" example:"3f7c8d0e-9a52-4d1b-a1a4-1c0c9e3f1b2a"`
	// example: accepted
	Status string `json:"status" example:"accepted"`
}

// PageResponse is a rendered content page.
type PageResponse struct {
	// example: methodology
	Slug string `json:"slug" example:"methodology"`
	// example: Methodology
	Title string `json:"title" example:"Methodology"`
	HTML  string `json:"html"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall state: loading, ready or error.
	// example: ready
	State string `json:"state" example:"ready"`
	// Where the dataset was loaded from ("embedded" or a file path).
	// example: embedded
	Source string `json:"source" example:"embedded"`
	// example: 48
	Records int `json:"records" example:"48"`
	// Records with an operational rank.
	// example: 40
	OperationalRanked int `json:"operational_ranked" example:"40"`
	// Records with a safety rank.
	// example: 22
	SafetyRanked int `json:"safety_ranked" example:"22"`
	// Snapshot generation; increments on every successful reload.
	// example: 1
	Generation uint64 `json:"generation" example:"1"`
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix" example:"1700000000"`
	// Last reload error, if any.
	LastError string `json:"last_error,omitempty"`
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
