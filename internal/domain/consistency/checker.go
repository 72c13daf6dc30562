// Package consistency cross-checks a generated content text against the
// design brief produced for the same request, so the two artifacts present
// one brand instead of drifting apart.
package consistency

import (
	"strings"

	"brandforge/internal/domain/brand"
)

// DefaultThreshold is the consistency score at or above which the two
// artifacts count as aligned.
const DefaultThreshold = 80

const (
	nameDeduction     = 20
	typeDeduction     = 15
	toneDeduction     = 20
	audienceDeduction = 15
	styleDeduction    = 15
	colorDeduction    = 15
)

// Check compares the content-side elements and the design brief against the
// normalized profile they were both generated from. Every check only runs
// when both sides carry data, so sparse inputs degrade to a clean report
// rather than false alarms. threshold <= 0 selects DefaultThreshold.
func Check(elements ContentElements, designPrompt string, p brand.NormalizedProfile, threshold int) Report {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var r Report
	score := 100
	lowerPrompt := strings.ToLower(designPrompt)
	traits := extractDesign(designPrompt)

	if elements.BusinessName != "" && designPrompt != "" &&
		!strings.Contains(lowerPrompt, strings.ToLower(elements.BusinessName)) {
		score -= nameDeduction
		r.BrandingIssues = append(r.BrandingIssues, "business name "+elements.BusinessName+" does not appear in the design brief")
		r.Recommendations = append(r.Recommendations, "reference "+elements.BusinessName+" by name in the design brief")
	}

	if elements.BusinessType != "" && elements.BusinessType != string(brand.TypeGeneral) && designPrompt != "" &&
		!strings.Contains(lowerPrompt, strings.ToLower(elements.BusinessType)) {
		score -= typeDeduction
		r.AlignmentIssues = append(r.AlignmentIssues, "design brief does not reflect the "+elements.BusinessType+" context")
		r.Recommendations = append(r.Recommendations, "ground the design brief in the "+elements.BusinessType+" setting")
	}

	if elements.Tone != "" && p.BrandVoice != "" && !tonesAligned(elements.Tone, p.BrandVoice) {
		score -= toneDeduction
		r.MessagingIssues = append(r.MessagingIssues, "content tone "+strings.ToLower(elements.Tone)+" drifts from the brand voice "+strings.ToLower(p.BrandVoice))
		r.Recommendations = append(r.Recommendations, "keep the content tone aligned with the "+strings.ToLower(p.BrandVoice)+" brand voice")
	}

	if elements.TargetAudience != "" && p.TargetAudience != "" &&
		!eitherContains(elements.TargetAudience, p.TargetAudience) {
		score -= audienceDeduction
		r.MessagingIssues = append(r.MessagingIssues, "content speaks to "+strings.ToLower(elements.TargetAudience)+" instead of "+strings.ToLower(p.TargetAudience))
		r.Recommendations = append(r.Recommendations, "address "+strings.ToLower(p.TargetAudience)+" across both artifacts")
	}

	if elements.Tone != "" && len(traits.Styles) > 0 {
		contentClass := classify(elements.Tone)
		designClass := classify(strings.Join(traits.Styles, " "))
		if contentClass != "" && designClass != "" && contentClass != designClass {
			score -= styleDeduction
			r.VisualTextualIssues = append(r.VisualTextualIssues, "visual style reads "+designClass+" while the content tone is "+contentClass)
			r.Recommendations = append(r.Recommendations, "match the visual style to the "+contentClass+" tone")
		}
	}

	if p.BrandColors.Primary != "" && designPrompt != "" &&
		!strings.Contains(lowerPrompt, strings.ToLower(p.BrandColors.Primary)) {
		score -= colorDeduction
		r.VisualTextualIssues = append(r.VisualTextualIssues, "primary brand color "+p.BrandColors.Primary+" is missing from the design brief")
		r.Recommendations = append(r.Recommendations, "use the primary brand color "+p.BrandColors.Primary+" in the design")
	}

	if score < 0 {
		score = 0
	}
	r.ConsistencyScore = score
	r.IsConsistent = score >= threshold
	return r
}

// tonesAligned accepts direct overlap in either direction as well as two
// phrasings that land in the same tone class.
func tonesAligned(a, b string) bool {
	if eitherContains(a, b) {
		return true
	}
	ca, cb := classify(a), classify(b)
	return ca != "" && ca == cb
}

func eitherContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
