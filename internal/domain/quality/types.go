package quality

// Score is the six-dimension quality report for one generation attempt.
// Overall is the mean of the six sub-scores.
type Score struct {
	Overall             int      `json:"overallScore"`
	IndustryAppropriate int      `json:"industryAppropriate"`
	ToneConsistency     int      `json:"toneConsistency"`
	TerminologyAccuracy int      `json:"terminologyAccuracy"`
	ContentStructure    int      `json:"contentStructure"`
	CulturalRelevance   int      `json:"culturalRelevance"`
	BrandAlignment      int      `json:"brandAlignment"`
	Issues              []string `json:"issues,omitempty"`
	Recommendations     []string `json:"recommendations,omitempty"`
}

// State tracks a generation request through the validation loop.
type State string

const (
	StatePending      State = "pending"
	StateGenerated    State = "generated"
	StateAccepted     State = "accepted"
	StateRetrying     State = "retrying"
	StateFallbackUsed State = "fallback_used"
)

// Attempt records one pass through the generator for diagnostics.
type Attempt struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
	Score  *Score `json:"score,omitempty"`
}

// LoopResult is the final outcome of the generate-validate loop: the text to
// ship, its score, the terminal state, and the attempt history.
type LoopResult struct {
	Text     string    `json:"text"`
	Score    Score     `json:"score"`
	State    State     `json:"state"`
	Attempts int       `json:"attempts"`
	History  []Attempt `json:"history,omitempty"`
}
