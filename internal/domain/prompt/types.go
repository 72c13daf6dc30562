package prompt

// Kind selects which generation surface the prompt targets.
type Kind string

const (
	KindContent Kind = "content"
	KindDesign  Kind = "design"
	KindUnified Kind = "unified"
)

// Valid reports whether k is one of the three supported kinds.
func (k Kind) Valid() bool {
	return k == KindContent || k == KindDesign || k == KindUnified
}

// Section is one labeled block of the assembled prompt, kept separate so
// tests and debugging tools can inspect blocks individually.
type Section struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Optimization is the advisory readiness report attached to every prompt.
// Generation proceeds regardless; callers surface a warning when the prompt
// was assembled from thin data.
type Optimization struct {
	RelevanceScore      int      `json:"relevanceScore"`
	DataCompleteness    int      `json:"dataCompleteness"`
	PromptReadiness     bool     `json:"promptReadiness"`
	MissingCriticalData []string `json:"missingCriticalData,omitempty"`
}

// Bundle is the assembled prompt: ordered sections, the joined text sent to
// the generator, the readiness report, and a token estimate for the text.
type Bundle struct {
	Kind          Kind         `json:"kind"`
	Sections      []Section    `json:"sections"`
	Text          string       `json:"text"`
	Optimization  Optimization `json:"optimization"`
	TokenEstimate int          `json:"tokenEstimate"`
}
