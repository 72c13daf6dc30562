package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
	"brandforge/internal/domain/intelligence"
)

func fullProfile() brand.NormalizedProfile {
	return brand.NormalizedProfile{
		BusinessName:          "Mama Lucia",
		BusinessType:          brand.TypeRestaurant,
		Description:           "Family-run trattoria serving Roman classics.",
		Location:              "Rome, Italy",
		Services:              []string{"Wood-fired pizza", "Catering"},
		KeyFeatures:           []string{"House-made pasta"},
		CompetitiveAdvantages: []string{"Recipes from nonna"},
		UniqueSellingPoints:   []string{"Open past midnight"},
		TargetAudience:        "families and food lovers",
		BrandVoice:            "warm and inviting",
		WritingTone:           "friendly",
		BrandColors:           brand.BrandColors{Primary: "#C0392B", Accent: "#27AE60"},
	}
}

func sectionNames(b Bundle) []string {
	names := make([]string, 0, len(b.Sections))
	for _, s := range b.Sections {
		names = append(names, s.Name)
	}
	return names
}

func TestAssembleContentKind(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindContent)

	require.Equal(t, KindContent, b.Kind)
	names := sectionNames(b)
	require.Contains(t, names, "Business Context")
	require.Contains(t, names, "Key Messages")
	require.Contains(t, names, "Cultural Context")
	require.Contains(t, names, "Call To Action")
	require.Contains(t, names, "Task")

	require.Contains(t, b.Text, "Mama Lucia")
	require.Contains(t, b.Text, "Rome, Italy")
	require.Contains(t, b.Text, "hashtags")
}

func TestAssembleDesignKind(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindDesign)

	names := sectionNames(b)
	require.Contains(t, names, "Visual Identity")
	require.Contains(t, names, "Brand Colors")
	require.Contains(t, names, "Brand Elements")

	require.Contains(t, b.Text, "#C0392B")
	require.Contains(t, b.Text, "No logo is available")
	require.Contains(t, strings.ToLower(b.Text), "friendly")
}

func TestAssembleUnifiedKind(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindUnified)

	require.Len(t, b.Sections, 2)
	require.Equal(t, "Brand Brief", b.Sections[0].Name)
	require.Contains(t, b.Sections[0].Body, "warm and inviting")
	require.Contains(t, b.Sections[0].Body, "Rome, Italy")
}

func TestAssembleUnknownKindFallsBackToUnified(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, Kind("poster"))

	require.Equal(t, KindUnified, b.Kind)
}

func TestOptimizeCompleteProfileIsReady(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindContent)

	require.Equal(t, 100, b.Optimization.DataCompleteness)
	require.GreaterOrEqual(t, b.Optimization.RelevanceScore, 70)
	require.True(t, b.Optimization.PromptReadiness)
	require.Empty(t, b.Optimization.MissingCriticalData)
}

func TestOptimizeReportsMissingCriticalData(t *testing.T) {
	p := fullProfile()
	p.BrandVoice = ""
	p.TargetAudience = ""
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindContent)

	require.Equal(t, 60, b.Optimization.DataCompleteness)
	require.False(t, b.Optimization.PromptReadiness)
	require.Contains(t, b.Optimization.MissingCriticalData, "brandVoice")
	require.Contains(t, b.Optimization.MissingCriticalData, "targetAudience")
}

func TestOptimizeDesignKindTracksVisualFields(t *testing.T) {
	p := fullProfile() // no design examples
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindDesign)

	require.Equal(t, 75, b.Optimization.DataCompleteness)
	require.False(t, b.Optimization.PromptReadiness)
	require.Equal(t, []string{"designExamples"}, b.Optimization.MissingCriticalData)
}

func TestEstimateTokens(t *testing.T) {
	require.Equal(t, 0, EstimateTokens(""))

	short := EstimateTokens("Fresh pizza daily")
	long := EstimateTokens(strings.Repeat("Fresh pizza daily. ", 20))
	require.Greater(t, short, 0)
	require.Greater(t, long, short)
}

func TestAssembleAttachesTokenEstimate(t *testing.T) {
	p := fullProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)
	intel := intelligence.Synthesize(p, ctx)

	b := Assemble(p, intel, ctx, KindContent)
	require.Greater(t, b.TokenEstimate, 0)
}
