package brand

import (
	"fmt"
	"strings"
)

// applyFallbacks fills every still-empty core field in a fixed order:
// business type first so the industry tables line up, then location, name,
// services, audience, voice, tone, colors, features, and description last
// since it interpolates the others.
func applyFallbacks(p *NormalizedProfile, rawType, rawLocation string, hints Hints) []FallbackRecord {
	var records []FallbackRecord
	record := func(field string, value any, conf int, src FallbackSource, why string) {
		records = append(records, FallbackRecord{
			Field: field, Value: value, Confidence: conf, Source: src, Reasoning: why,
		})
	}

	switch {
	case rawType != "":
		if t, ok := canonicalType(rawType); ok {
			p.BusinessType = t
		} else {
			p.BusinessType = TypeGeneral
			record("businessType", TypeGeneral, 40, SourceGenericDefault,
				fmt.Sprintf("%q matches no known business category", rawType))
		}
	case hints.BusinessType != "":
		t, ok := canonicalType(hints.BusinessType)
		if !ok {
			t = TypeGeneral
		}
		p.BusinessType = t
		record("businessType", t, 70, SourceAIInference, "business type supplied by caller analysis")
	default:
		if t, ok := typeFromServices(p.Services); ok {
			p.BusinessType = t
			record("businessType", t, 65, SourceTypeInference, "guessed from the services offered")
		} else {
			p.BusinessType = TypeGeneral
			record("businessType", TypeGeneral, 30, SourceGenericDefault, "no usable business type signal")
		}
	}

	defaults := defaultsFor(p.BusinessType)

	if loc := canonicalLocation(rawLocation); loc != "" {
		p.Location = loc
	} else if loc := canonicalLocation(hints.Location); loc != "" {
		p.Location = loc
		record("location", loc, 70, SourceAIInference, "location supplied by caller analysis")
	} else {
		p.Location = "Global"
		record("location", "Global", 25, SourceGenericDefault, "no location provided, assuming a global audience")
	}

	if p.BusinessName == "" {
		p.BusinessName = defaults.Placeholder
		record("businessName", defaults.Placeholder, 30, SourceGenericDefault,
			"no name given, templated from the business type")
	}

	if len(p.Services) == 0 {
		p.Services = append([]string(nil), defaults.Services...)
		record("services", p.Services, 75, SourceIndustryStandard,
			fmt.Sprintf("typical %s offerings", strings.ToLower(string(p.BusinessType))))
	}

	if p.TargetAudience == "" {
		p.TargetAudience = defaults.Audience
		record("targetAudience", defaults.Audience, 70, SourceIndustryStandard,
			fmt.Sprintf("typical %s customer base", strings.ToLower(string(p.BusinessType))))
	}

	if p.BrandVoice == "" {
		p.BrandVoice = defaults.Voice
		record("brandVoice", defaults.Voice, 70, SourceIndustryStandard,
			fmt.Sprintf("common voice for %s brands", strings.ToLower(string(p.BusinessType))))
	}

	if p.WritingTone == "" {
		tone := deriveTone(p.BusinessType, p.BrandVoice)
		p.WritingTone = tone
		record("writingTone", tone, 65, SourceTypeInference, "derived from the brand voice and business type")
	}

	if p.BrandColors.IsZero() {
		p.BrandColors = defaults.Palette
		record("brandColors", defaults.Palette, 70, SourceIndustryStandard,
			fmt.Sprintf("standard %s palette", strings.ToLower(string(p.BusinessType))))
	}

	if len(p.KeyFeatures) == 0 {
		p.KeyFeatures = append([]string(nil), defaults.KeyFeatures...)
		record("keyFeatures", p.KeyFeatures, 70, SourceIndustryStandard,
			fmt.Sprintf("qualities customers expect from a %s business", strings.ToLower(string(p.BusinessType))))
	}

	if p.Description == "" {
		desc := templateDescription(*p)
		p.Description = desc
		record("description", desc, 35, SourceGenericDefault, "assembled from the business type and location")
	}

	return records
}

// voiceTones maps keywords found in a brand voice onto a writing tone.
var voiceTones = []struct {
	Keyword string
	Tone    string
}{
	{"professional", "professional"},
	{"formal", "professional"},
	{"corporate", "professional"},
	{"trustworthy", "professional"},
	{"knowledgeable", "professional"},
	{"luxury", "luxury"},
	{"premium", "luxury"},
	{"elegant", "luxury"},
	{"sophisticated", "luxury"},
	{"playful", "playful"},
	{"fun", "playful"},
	{"witty", "playful"},
	{"friendly", "friendly"},
	{"warm", "friendly"},
	{"welcoming", "friendly"},
	{"inviting", "friendly"},
	{"casual", "friendly"},
	{"energetic", "friendly"},
	{"upbeat", "friendly"},
}

func deriveTone(t BusinessType, voice string) string {
	v := strings.ToLower(voice)
	for _, vt := range voiceTones {
		if strings.Contains(v, vt.Keyword) {
			return vt.Tone
		}
	}
	return defaultsFor(t).Tone
}

func templateDescription(p NormalizedProfile) string {
	offerings := p.Services
	if len(offerings) > 3 {
		offerings = offerings[:3]
	}
	what := strings.ToLower(strings.Join(offerings, ", "))
	kind := typeNoun(p.BusinessType)
	if p.Location == "Global" {
		return fmt.Sprintf("%s is a %s offering %s.", p.BusinessName, kind, what)
	}
	return fmt.Sprintf("%s is a %s in %s offering %s.", p.BusinessName, kind, p.Location, what)
}

// typeNoun renders the taxonomy entry as a noun phrase usable mid-sentence.
func typeNoun(t BusinessType) string {
	switch t {
	case TypeHealthcare:
		return "healthcare practice"
	case TypeFitness:
		return "fitness studio"
	case TypeFinance:
		return "financial services firm"
	case TypeTechnology:
		return "technology company"
	case TypeRetail:
		return "retail store"
	case TypeBeauty:
		return "beauty studio"
	case TypeEducation:
		return "education provider"
	case TypeRealEstate:
		return "real estate agency"
	case TypeAutomotive:
		return "automotive service shop"
	case TypeGeneral:
		return "local business"
	default:
		return strings.ToLower(string(t))
	}
}
