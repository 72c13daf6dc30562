package consistency

import (
	"strings"

	"brandforge/internal/domain/brand"
)

// ContentElements is the content side of the cross-check: the identity the
// text claims plus its leading message.
type ContentElements struct {
	BusinessName   string `json:"businessName"`
	BusinessType   string `json:"businessType"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"targetAudience"`
	KeyMessage     string `json:"keyMessage,omitempty"`
}

// ElementsFromProfile builds the content-side elements for a generated text:
// identity fields come from the profile, the key message is the first line
// of the text.
func ElementsFromProfile(p brand.NormalizedProfile, text string) ContentElements {
	return ContentElements{
		BusinessName:   p.BusinessName,
		BusinessType:   string(p.BusinessType),
		Tone:           p.BrandVoice,
		TargetAudience: p.TargetAudience,
		KeyMessage:     firstLine(text),
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}

// Report is the outcome of the content/design cross-check. Issues are
// bucketed by what kind of drift they describe.
type Report struct {
	ConsistencyScore    int      `json:"consistencyScore"`
	IsConsistent        bool     `json:"isConsistent"`
	AlignmentIssues     []string `json:"alignmentIssues,omitempty"`
	BrandingIssues      []string `json:"brandingIssues,omitempty"`
	MessagingIssues     []string `json:"messagingIssues,omitempty"`
	VisualTextualIssues []string `json:"visualTextualIssues,omitempty"`
	Recommendations     []string `json:"recommendations,omitempty"`
}
