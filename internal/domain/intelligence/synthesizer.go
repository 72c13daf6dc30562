// Package intelligence derives the messaging assets a prompt needs from a
// normalized profile: hooks, pain points, value propositions, and the rest
// of the persuasion toolkit. Everything is table-driven and deterministic.
package intelligence

import (
	"fmt"
	"strings"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
)

// Bundle is the full set of derived messaging assets for one request.
type Bundle struct {
	EngagementHooks   []string `json:"engagementHooks"`
	PainPoints        []string `json:"painPoints"`
	ValuePropositions []string `json:"valuePropositions"`
	EmotionalTriggers []string `json:"emotionalTriggers"`
	IndustryInsights  []string `json:"industryInsights"`
	CompetitiveEdges  []string `json:"competitiveEdges"`
	CallToActions     []string `json:"callToActions"`
}

// Synthesize builds the bundle for a profile. Same profile and context in,
// same bundle out; nothing is cached or persisted.
func Synthesize(p brand.NormalizedProfile, ctx cultural.Context) Bundle {
	pb := playbookFor(p.BusinessType)

	b := Bundle{
		EngagementHooks:   append([]string(nil), pb.Hooks...),
		PainPoints:        append([]string(nil), pb.Pains...),
		EmotionalTriggers: append([]string(nil), pb.Triggers...),
		IndustryInsights:  append([]string(nil), pb.Insights...),
		ValuePropositions: valuePropositions(p, pb),
		CompetitiveEdges:  competitiveEdges(p, pb),
	}

	if len(ctx.TrustBuilders) > 0 {
		b.EngagementHooks = append(b.EngagementHooks, "Backed by "+ctx.TrustBuilders[0])
	}
	if ctx.MarketingApproach != "" && ctx.Country != "Unknown" {
		b.IndustryInsights = append(b.IndustryInsights,
			fmt.Sprintf("audiences in %s respond to %s", ctx.Country, ctx.MarketingApproach))
	}

	b.CallToActions = make([]string, 0, len(pb.CTAs))
	for _, cta := range pb.CTAs {
		b.CallToActions = append(b.CallToActions, cultural.Adapt(cta, ctx))
	}

	return b
}

// valuePropositions interpolates the caller's own offering into the industry
// templates, then appends up to two propositions lifted from the declared
// competitive advantages.
func valuePropositions(p brand.NormalizedProfile, pb playbook) []string {
	rep := strings.NewReplacer(
		"{name}", fallbackStr(p.BusinessName, "This business"),
		"{service}", fallbackFirst(p.Services, "quality services"),
		"{feature}", fallbackFirst(p.KeyFeatures, "attentive service"),
		"{audience}", fallbackStr(p.TargetAudience, "local customers"),
	)

	out := make([]string, 0, len(pb.ValueTmpl)+2)
	for _, tmpl := range pb.ValueTmpl {
		out = append(out, rep.Replace(tmpl))
	}
	for i, adv := range p.CompetitiveAdvantages {
		if i == 2 {
			break
		}
		out = append(out, "What sets us apart: "+adv)
	}
	return out
}

// competitiveEdges merges up to two caller-supplied advantages with up to two
// generic industry edges, deduplicated, capped at three.
func competitiveEdges(p brand.NormalizedProfile, pb playbook) []string {
	merged := make([]string, 0, 4)
	for i, adv := range p.CompetitiveAdvantages {
		if i == 2 {
			break
		}
		merged = append(merged, adv)
	}
	for i, edge := range pb.Edges {
		if i == 2 {
			break
		}
		merged = append(merged, edge)
	}

	seen := make(map[string]struct{}, len(merged))
	out := make([]string, 0, 3)
	for _, e := range merged {
		key := strings.ToLower(strings.TrimSpace(e))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func fallbackStr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func fallbackFirst(list []string, def string) string {
	if len(list) == 0 {
		return def
	}
	return list[0]
}
