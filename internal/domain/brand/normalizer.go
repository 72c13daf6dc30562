// Package brand turns arbitrary caller-supplied business profiles into the
// canonical form the rest of the pipeline consumes. Normalization never
// fails: malformed fields become validation issues, missing fields are
// inferred, and every inference is recorded with a confidence score.
package brand

// Normalize sanitizes the raw bag, canonicalizes what survives, and fills
// the rest through the inference chain. The same input always produces the
// same result, and feeding a normalized profile back in produces no new
// fallbacks or issues.
func Normalize(raw RawProfile, hints Hints) Result {
	var issues []ValidationIssue

	p := NormalizedProfile{
		BusinessName:          stringField(raw, &issues, "businessName", "businessName", "business_name", "name"),
		Description:           stringField(raw, &issues, "description", "description", "about"),
		TargetAudience:        stringField(raw, &issues, "targetAudience", "targetAudience", "target_audience", "audience"),
		BrandVoice:            stringField(raw, &issues, "brandVoice", "brandVoice", "brand_voice", "voice"),
		WritingTone:           stringField(raw, &issues, "writingTone", "writingTone", "writing_tone", "tone"),
		ContactEmail:          stringField(raw, &issues, "contactEmail", "contactEmail", "contact_email", "email"),
		ContactPhone:          stringField(raw, &issues, "contactPhone", "contactPhone", "contact_phone", "phone"),
		LogoURL:               stringField(raw, &issues, "logoUrl", "logoUrl", "logo_url"),
		WebsiteURL:            stringField(raw, &issues, "websiteUrl", "websiteUrl", "website_url", "website"),
		Services:              listField(raw, &issues, "services", "services"),
		KeyFeatures:           listField(raw, &issues, "keyFeatures", "keyFeatures", "key_features", "features"),
		CompetitiveAdvantages: listField(raw, &issues, "competitiveAdvantages", "competitiveAdvantages", "competitive_advantages", "advantages"),
		UniqueSellingPoints:   listField(raw, &issues, "uniqueSellingPoints", "uniqueSellingPoints", "unique_selling_points", "usps"),
		DesignExamples:        listField(raw, &issues, "designExamples", "designExamples", "design_examples"),
		BrandColors:           colorsField(raw, &issues),
	}

	if p.WritingTone != "" {
		p.WritingTone = canonicalTone(p.WritingTone)
	}

	rawType := stringField(raw, &issues, "businessType", "businessType", "business_type", "industry", "type")
	rawLocation := stringField(raw, &issues, "location", "location", "city")

	fallbacks := applyFallbacks(&p, rawType, rawLocation, hints)

	return Result{
		Profile:     p,
		Fallbacks:   fallbacks,
		Issues:      issues,
		DataQuality: dataQualityScore(fallbacks),
		Confidence:  confidenceLevel(fallbacks),
	}
}
