package brand

// BusinessType is the closed taxonomy every free-text business label maps onto.
type BusinessType string

const (
	TypeRestaurant BusinessType = "Restaurant"
	TypeHealthcare BusinessType = "Healthcare"
	TypeFitness    BusinessType = "Fitness"
	TypeFinance    BusinessType = "Finance"
	TypeTechnology BusinessType = "Technology"
	TypeRetail     BusinessType = "Retail"
	TypeBeauty     BusinessType = "Beauty"
	TypeEducation  BusinessType = "Education"
	TypeRealEstate BusinessType = "Real Estate"
	TypeAutomotive BusinessType = "Automotive"
	TypeGeneral    BusinessType = "General Business"
)

// RawProfile is the unvalidated key/value bag a caller submits. Values may be
// strings, lists, nested maps, or garbage; Normalize sorts that out.
type RawProfile map[string]any

// Hints carry values the caller resolved out-of-band (an onboarding form,
// a website analysis) that are applied before generic inference kicks in.
type Hints struct {
	BusinessType string `json:"businessType,omitempty"`
	Location     string `json:"location,omitempty"`
}

// BrandColors holds validated hex colors. An empty string means the caller
// never supplied that slot and no palette was inferred for it.
type BrandColors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Background string `json:"background,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

// IsZero reports whether no color slot is set.
func (c BrandColors) IsZero() bool {
	return c.Primary == "" && c.Secondary == "" && c.Background == "" && c.Accent == ""
}

// NormalizedProfile is the canonical profile consumed by every downstream
// component. Every field is either populated or explicitly absent; empty
// strings and nil-padded slices never leave Normalize.
type NormalizedProfile struct {
	BusinessName          string       `json:"businessName"`
	BusinessType          BusinessType `json:"businessType"`
	Description           string       `json:"description,omitempty"`
	Location              string       `json:"location"`
	Services              []string     `json:"services,omitempty"`
	KeyFeatures           []string     `json:"keyFeatures,omitempty"`
	CompetitiveAdvantages []string     `json:"competitiveAdvantages,omitempty"`
	UniqueSellingPoints   []string     `json:"uniqueSellingPoints,omitempty"`
	TargetAudience        string       `json:"targetAudience,omitempty"`
	BrandVoice            string       `json:"brandVoice,omitempty"`
	WritingTone           string       `json:"writingTone,omitempty"`
	BrandColors           BrandColors  `json:"brandColors"`
	ContactEmail          string       `json:"contactEmail,omitempty"`
	ContactPhone          string       `json:"contactPhone,omitempty"`
	LogoURL               string       `json:"logoUrl,omitempty"`
	WebsiteURL            string       `json:"websiteUrl,omitempty"`
	DesignExamples        []string     `json:"designExamples,omitempty"`
}

// FallbackSource identifies how an inferred value was produced.
type FallbackSource string

const (
	SourceGenericDefault   FallbackSource = "generic_default"
	SourceTypeInference    FallbackSource = "business_type_inference"
	SourceIndustryStandard FallbackSource = "industry_standard"
	SourceAIInference      FallbackSource = "ai_inference"
)

// FallbackRecord documents a single inferred field: what was filled in, how
// confident the inference is (0-100), and why.
type FallbackRecord struct {
	Field      string         `json:"field"`
	Value      any            `json:"value"`
	Confidence int            `json:"confidenceScore"`
	Source     FallbackSource `json:"source"`
	Reasoning  string         `json:"reasoning"`
}

// ValidationIssue records a raw field that was dropped during sanitization.
// Issues are informational; normalization never fails on malformed input.
type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ConfidenceLevel summarizes how much of the profile rests on inference.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// Result bundles the canonical profile with its inference audit trail.
type Result struct {
	Profile     NormalizedProfile `json:"profile"`
	Fallbacks   []FallbackRecord  `json:"fallbacks,omitempty"`
	Issues      []ValidationIssue `json:"issues,omitempty"`
	DataQuality int               `json:"dataQualityScore"`
	Confidence  ConfidenceLevel   `json:"confidenceLevel"`
}

// criticalFields are the profile fields whose inference drags the confidence
// level down hardest.
var criticalFields = map[string]struct{}{
	"businessName":   {},
	"businessType":   {},
	"services":       {},
	"targetAudience": {},
}

// IsCritical reports whether field is one of the four identity-defining fields.
func IsCritical(field string) bool {
	_, ok := criticalFields[field]
	return ok
}
