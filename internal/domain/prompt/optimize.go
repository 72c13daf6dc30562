package prompt

import (
	"math"

	"brandforge/internal/domain/brand"
)

// criticalFields lists, per generation kind, the profile fields the prompt
// genuinely depends on. Completeness is measured against this list only.
var criticalFields = map[Kind][]string{
	KindContent: {"businessName", "businessType", "services", "targetAudience", "brandVoice"},
	KindDesign:  {"businessName", "businessType", "brandColors", "designExamples"},
	KindUnified: {"businessName", "businessType", "location", "services", "targetAudience"},
}

// optimize builds the advisory readiness report: how complete the critical
// data is, how relevant the overall profile is to this kind of prompt, and
// whether the prompt can be considered ready.
func optimize(p brand.NormalizedProfile, kind Kind) Optimization {
	fields := criticalFields[kind]
	var missing []string
	for _, f := range fields {
		if !fieldPresent(p, f) {
			missing = append(missing, f)
		}
	}

	completeness := 100
	if len(fields) > 0 {
		present := len(fields) - len(missing)
		completeness = int(math.Round(float64(present) / float64(len(fields)) * 100))
	}

	relevance := relevanceScore(p, kind)
	return Optimization{
		RelevanceScore:      relevance,
		DataCompleteness:    completeness,
		PromptReadiness:     completeness >= 80 && relevance >= 70,
		MissingCriticalData: missing,
	}
}

// relevanceScore is a fixed-weight sum: identity 30, business intelligence
// 40, brand identity 30, with kind-specific bonuses, capped at 100.
func relevanceScore(p brand.NormalizedProfile, kind Kind) int {
	score := 0

	// identity: 30
	if p.BusinessName != "" {
		score += 10
	}
	if p.BusinessType != "" {
		score += 10
	}
	if p.Location != "" {
		score += 10
	}

	// business intelligence: 40
	if len(p.Services) > 0 {
		score += 15
	}
	if p.TargetAudience != "" {
		score += 15
	}
	if len(p.KeyFeatures) > 0 {
		score += 10
	}

	// brand identity: 30
	if p.BrandVoice != "" {
		score += 10
	}
	if p.WritingTone != "" {
		score += 10
	}
	if p.BrandColors.Primary != "" {
		score += 10
	}

	switch kind {
	case KindDesign:
		if len(p.DesignExamples) > 0 {
			score += 10
		}
		if p.LogoURL != "" {
			score += 5
		}
	default:
		if len(p.CompetitiveAdvantages) > 0 {
			score += 10
		}
		if len(p.UniqueSellingPoints) > 0 {
			score += 5
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

func fieldPresent(p brand.NormalizedProfile, field string) bool {
	switch field {
	case "businessName":
		return p.BusinessName != ""
	case "businessType":
		return p.BusinessType != ""
	case "location":
		return p.Location != ""
	case "services":
		return len(p.Services) > 0
	case "targetAudience":
		return p.TargetAudience != ""
	case "brandVoice":
		return p.BrandVoice != ""
	case "brandColors":
		return !p.BrandColors.IsZero()
	case "designExamples":
		return len(p.DesignExamples) > 0
	default:
		return false
	}
}
