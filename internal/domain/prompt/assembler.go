// Package prompt assembles generation requests from the normalized profile,
// the intelligence bundle, and the cultural context. Each generation kind
// gets its own emphasis: content prompts push messaging, design prompts push
// visual identity, unified prompts tell the whole story at once.
package prompt

import (
	"fmt"
	"strings"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
	"brandforge/internal/domain/intelligence"
)

// Assemble builds the prompt bundle for the requested kind. Unknown kinds
// fall back to the unified narrative.
func Assemble(p brand.NormalizedProfile, intel intelligence.Bundle, ctx cultural.Context, kind Kind) Bundle {
	if !kind.Valid() {
		kind = KindUnified
	}

	var sections []Section
	switch kind {
	case KindContent:
		sections = contentSections(p, intel, ctx)
	case KindDesign:
		sections = designSections(p)
	default:
		sections = unifiedSections(p, intel, ctx)
	}

	text := joinSections(sections)
	return Bundle{
		Kind:          kind,
		Sections:      sections,
		Text:          text,
		Optimization:  optimize(p, kind),
		TokenEstimate: EstimateTokens(text),
	}
}

func contentSections(p brand.NormalizedProfile, intel intelligence.Bundle, ctx cultural.Context) []Section {
	sections := []Section{
		{Name: "Business Context", Body: businessContext(p)},
		{Name: "Key Messages", Body: keyMessages(intel)},
		{Name: "Audience", Body: audienceBlock(p, intel)},
		{Name: "Tone", Body: toneBlock(p)},
		{Name: "Cultural Context", Body: culturalSentence(ctx)},
	}
	if len(intel.CallToActions) > 0 {
		sections = append(sections, Section{
			Name: "Call To Action",
			Body: fmt.Sprintf("End with a clear invitation such as %q.", intel.CallToActions[0]),
		})
	}
	sections = append(sections, Section{
		Name: "Task",
		Body: "Write a social media post with a short headline, an engaging caption of 2-3 sentences, and 3-5 relevant hashtags.",
	})
	return sections
}

func designSections(p brand.NormalizedProfile) []Section {
	sections := []Section{
		{Name: "Visual Identity", Body: visualIdentity(p)},
	}
	if colors := colorLine(p.BrandColors); colors != "" {
		sections = append(sections, Section{Name: "Brand Colors", Body: colors})
	}
	sections = append(sections,
		Section{Name: "Brand Elements", Body: brandElements(p)},
		Section{Name: "Task", Body: "Describe a social media graphic for this brand: composition, imagery, typography feel, and how the brand colors are used."},
	)
	return sections
}

func unifiedSections(p brand.NormalizedProfile, intel intelligence.Bundle, ctx cultural.Context) []Section {
	var b strings.Builder
	b.WriteString(businessContext(p))
	b.WriteString(" The brand speaks in a ")
	b.WriteString(nonEmpty(p.BrandVoice, "clear"))
	b.WriteString(" voice with a ")
	b.WriteString(nonEmpty(p.WritingTone, "friendly"))
	b.WriteString(" tone.")
	if colors := colorLine(p.BrandColors); colors != "" {
		b.WriteString(" Its palette is ")
		b.WriteString(colors)
		b.WriteString(".")
	}
	if len(intel.CompetitiveEdges) > 0 {
		b.WriteString(" It stands out through ")
		b.WriteString(strings.Join(intel.CompetitiveEdges, ", "))
		b.WriteString(".")
	}
	if p.TargetAudience != "" {
		b.WriteString(" It serves ")
		b.WriteString(p.TargetAudience)
		b.WriteString(".")
	}
	if cs := culturalSentence(ctx); cs != "" {
		b.WriteString(" ")
		b.WriteString(cs)
	}

	return []Section{
		{Name: "Brand Brief", Body: b.String()},
		{Name: "Task", Body: "Create a matched pair: a social media post (headline, caption, hashtags) and a companion visual direction that share one message."},
	}
}

func businessContext(p brand.NormalizedProfile) string {
	var b strings.Builder
	name := nonEmpty(p.BusinessName, "The business")
	kind := strings.ToLower(nonEmpty(string(p.BusinessType), string(brand.TypeGeneral)))
	if p.Location != "" && p.Location != "Global" {
		fmt.Fprintf(&b, "%s is a %s business in %s.", name, kind, p.Location)
	} else {
		fmt.Fprintf(&b, "%s is a %s business.", name, kind)
	}
	if len(p.Services) > 0 {
		fmt.Fprintf(&b, " It offers %s.", strings.Join(capList(p.Services, 3), ", "))
	}
	if p.Description != "" {
		b.WriteString(" ")
		b.WriteString(p.Description)
	}
	return b.String()
}

// keyMessages lists the top value propositions and one competitive edge.
func keyMessages(intel intelligence.Bundle) string {
	lines := capList(intel.ValuePropositions, 2)
	if len(intel.CompetitiveEdges) > 0 {
		lines = append(lines, intel.CompetitiveEdges[0])
	}
	if len(lines) == 0 {
		return "Highlight quality and reliability."
	}
	return "- " + strings.Join(lines, "\n- ")
}

func audienceBlock(p brand.NormalizedProfile, intel intelligence.Bundle) string {
	aud := nonEmpty(p.TargetAudience, "local customers")
	if len(intel.PainPoints) > 0 {
		return fmt.Sprintf("Speak to %s, who are %s.", aud, intel.PainPoints[0])
	}
	return fmt.Sprintf("Speak to %s.", aud)
}

func toneBlock(p brand.NormalizedProfile) string {
	return fmt.Sprintf("Voice: %s. Tone: %s.",
		nonEmpty(p.BrandVoice, "professional and approachable"),
		nonEmpty(p.WritingTone, "friendly"))
}

func culturalSentence(ctx cultural.Context) string {
	if ctx.Country == "" || ctx.Country == "Unknown" {
		return ""
	}
	return fmt.Sprintf("Write for %s: communication there is %s and %s works best.",
		ctx.Country, ctx.CommunicationStyle, ctx.MarketingApproach)
}

// visualIdentity maps the writing tone onto a visual direction.
func visualIdentity(p brand.NormalizedProfile) string {
	style := "clean and modern"
	switch p.WritingTone {
	case "professional":
		style = "clean and professional"
	case "friendly":
		style = "warm and friendly"
	case "luxury":
		style = "elegant and refined"
	case "playful":
		style = "bold and vibrant"
	}
	return fmt.Sprintf("A %s visual style that reflects a %s brand voice.",
		style, nonEmpty(p.BrandVoice, "approachable"))
}

func colorLine(c brand.BrandColors) string {
	var parts []string
	if c.Primary != "" {
		parts = append(parts, "primary "+c.Primary)
	}
	if c.Secondary != "" {
		parts = append(parts, "secondary "+c.Secondary)
	}
	if c.Background != "" {
		parts = append(parts, "background "+c.Background)
	}
	if c.Accent != "" {
		parts = append(parts, "accent "+c.Accent)
	}
	return strings.Join(parts, ", ")
}

func brandElements(p brand.NormalizedProfile) string {
	parts := []string{
		fmt.Sprintf("Business: %s (%s).", nonEmpty(p.BusinessName, "unnamed"), strings.ToLower(nonEmpty(string(p.BusinessType), string(brand.TypeGeneral)))),
	}
	if p.LogoURL != "" {
		parts = append(parts, "A logo is available and should be featured.")
	} else {
		parts = append(parts, "No logo is available, keep the name prominent instead.")
	}
	if len(p.DesignExamples) > 0 {
		parts = append(parts, "Match the look of the provided design examples.")
	}
	return strings.Join(parts, " ")
}

func joinSections(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.Name)
		b.WriteString(":\n")
		b.WriteString(s.Body)
	}
	return b.String()
}

func nonEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func capList(list []string, n int) []string {
	if len(list) <= n {
		return append([]string(nil), list...)
	}
	return append([]string(nil), list[:n]...)
}
