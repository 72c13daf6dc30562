package pipeline

import (
	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/consistency"
	"brandforge/internal/domain/cultural"
	"brandforge/internal/domain/intelligence"
	"brandforge/internal/domain/prompt"
	"brandforge/internal/domain/quality"
	"brandforge/pkg/metrics"
)

// Config tunes the validation loop and the consistency gate.
type Config struct {
	MinQualityScore      int
	MaxAttempts          int
	ConsistencyThreshold int
}

// Request represents one brand profile submitted for processing. UserID is
// optional; without it requests are not metered. A caller-supplied
// DesignPrompt is used as the design brief instead of generating one;
// IncludeDesign defaults to true when absent.
type Request struct {
	UserID        string           `json:"userId,omitempty"`
	Profile       brand.RawProfile `json:"profile"`
	Hints         brand.Hints      `json:"hints"`
	DesignPrompt  string           `json:"designPrompt,omitempty"`
	IncludeDesign *bool            `json:"includeDesign,omitempty"`
}

// WantsDesign reports whether the request asks for a design brief.
func (r Request) WantsDesign() bool {
	return r.IncludeDesign == nil || *r.IncludeDesign
}

// Usage is the per-user request allowance for the current month.
type Usage struct {
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Period    string `json:"period,omitempty"`
}

// Result is the full generation artifact set for one request.
type Result struct {
	RequestID     string                   `json:"requestId"`
	Profile       brand.Result             `json:"profile"`
	Cultural      cultural.Context         `json:"culturalContext"`
	Intelligence  intelligence.Bundle      `json:"intelligence"`
	ContentPrompt prompt.Bundle            `json:"contentPrompt"`
	DesignPrompt  prompt.Bundle            `json:"designPrompt"`
	Content       quality.LoopResult       `json:"content"`
	CulturalCheck cultural.Appropriateness `json:"culturalCheck"`
	DesignBrief   string                   `json:"designBrief,omitempty"`
	Consistency   *consistency.Report      `json:"consistency,omitempty"`
	Warnings      []string                 `json:"warnings,omitempty"`
	Usage         *Usage                   `json:"usage,omitempty"`
	DurationMs    int64                    `json:"durationMs,omitempty"`
	TokenUsage    *metrics.TokenUsage      `json:"tokenUsage,omitempty"`
}

// NormalizeResult is returned by the profile normalization endpoint.
type NormalizeResult struct {
	Profile  brand.Result     `json:"profile"`
	Cultural cultural.Context `json:"culturalContext"`
}

// InsightsResult is returned by the business insights endpoint. Optimization
// previews content-prompt readiness without invoking the generator.
type InsightsResult struct {
	Profile      brand.NormalizedProfile `json:"profile"`
	Cultural     cultural.Context        `json:"culturalContext"`
	Intelligence intelligence.Bundle     `json:"intelligence"`
	Optimization prompt.Optimization     `json:"promptOptimization"`
}
