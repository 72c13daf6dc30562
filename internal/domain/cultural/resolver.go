// Package cultural maps a business location onto market conventions such as
// currency, color symbolism, and communication style, and applies those
// conventions to generated content. The adaptations are deliberately small
// ordered heuristics, not a translation layer.
package cultural

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brandforge/internal/domain/brand"
)

// Resolve looks the location up against the country table and layers
// business-type adjustments on top. Unknown locations get a generic global
// context whose country is the last comma segment of the location.
func Resolve(location string, businessType brand.BusinessType) Context {
	ctx, ok := lookup(location)
	if !ok {
		ctx = defaultContext(location)
	}
	return adaptForBusinessType(ctx, businessType)
}

// lookup scans rows in order; short keys only match a whole comma segment so
// "uk" cannot hit inside an unrelated word.
func lookup(location string) (Context, bool) {
	lower := strings.ToLower(strings.TrimSpace(location))
	if lower == "" {
		return Context{}, false
	}
	segments := strings.Split(lower, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	for _, row := range countryTable {
		for _, key := range row.Match {
			if len(key) <= 3 {
				for _, seg := range segments {
					if seg == key {
						return row.Ctx.clone(), true
					}
				}
				continue
			}
			if strings.Contains(lower, key) {
				return row.Ctx.clone(), true
			}
		}
	}
	return Context{}, false
}

// defaultContext synthesizes a neutral record for markets the table does not
// cover: 24-hour clock, USD, no color taboos.
func defaultContext(location string) Context {
	country := "Unknown"
	if segs := strings.Split(location, ","); len(segs) > 0 {
		if last := strings.TrimSpace(segs[len(segs)-1]); last != "" {
			country = cases.Title(language.English).String(last)
		}
	}
	return Context{
		Country:            country,
		Region:             "Global",
		PrimaryLanguage:    "English",
		CommunicationStyle: "clear and friendly",
		ColorPreferences: ColorPreferences{
			Preferred: []string{"blue", "green"},
			Meanings:  map[string]string{"blue": "trust", "green": "growth"},
		},
		Currency:          Currency{Symbol: "$", Code: "USD", Position: "prefix"},
		TimeFormat:        "24h",
		ContentTone:       "neutral and professional",
		TrustBuilders:     []string{"customer testimonials", "quality guarantees"},
		MarketingApproach: "value-focused and straightforward",
	}
}

// adaptForBusinessType overlays type-specific conventions on a copy of the
// base record. The curated table rows themselves are never touched.
func adaptForBusinessType(ctx Context, t brand.BusinessType) Context {
	switch t {
	case brand.TypeRestaurant:
		ctx.ContentTone = "appetizing and welcoming"
		ctx.TrustBuilders = append(ctx.TrustBuilders, "locally sourced ingredients")
	case brand.TypeHealthcare:
		ctx.CommunicationStyle = "caring and professional"
		ctx.TrustBuilders = append(ctx.TrustBuilders, "qualified practitioners", "patient privacy")
	case brand.TypeFinance:
		ctx.ContentTone = "confident and trustworthy"
		ctx.TrustBuilders = append(ctx.TrustBuilders, "regulatory compliance", "transparent fees")
	case brand.TypeFitness:
		ctx.ContentTone = "motivating and energetic"
	case brand.TypeEducation:
		ctx.CommunicationStyle = "encouraging and clear"
	}
	return ctx
}
