package intelligence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
)

func profileFixture() brand.NormalizedProfile {
	return brand.NormalizedProfile{
		BusinessName:          "Mama Lucia",
		BusinessType:          brand.TypeRestaurant,
		Location:              "Rome, Italy",
		Services:              []string{"Wood-fired pizza", "Catering"},
		KeyFeatures:           []string{"House-made pasta"},
		TargetAudience:        "families and food lovers",
		CompetitiveAdvantages: []string{"Recipes from nonna", "Open past midnight"},
	}
}

func TestSynthesizeFillsAllSevenLists(t *testing.T) {
	b := Synthesize(profileFixture(), cultural.Resolve("Rome, Italy", brand.TypeRestaurant))

	require.NotEmpty(t, b.EngagementHooks)
	require.NotEmpty(t, b.PainPoints)
	require.NotEmpty(t, b.ValuePropositions)
	require.NotEmpty(t, b.EmotionalTriggers)
	require.NotEmpty(t, b.IndustryInsights)
	require.NotEmpty(t, b.CompetitiveEdges)
	require.NotEmpty(t, b.CallToActions)
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	p := profileFixture()
	ctx := cultural.Resolve("Rome, Italy", brand.TypeRestaurant)

	require.Equal(t, Synthesize(p, ctx), Synthesize(p, ctx))
}

func TestSynthesizeInterpolatesCallerData(t *testing.T) {
	b := Synthesize(profileFixture(), cultural.Resolve("Rome, Italy", ""))

	joined := ""
	for _, v := range b.ValuePropositions {
		joined += v + "\n"
	}
	require.Contains(t, joined, "Mama Lucia")
	require.Contains(t, joined, "Wood-fired pizza")
	require.Contains(t, joined, "families and food lovers")
	require.Contains(t, joined, "Recipes from nonna")
}

func TestSynthesizeMergesCompetitiveEdges(t *testing.T) {
	b := Synthesize(profileFixture(), cultural.Resolve("Rome, Italy", ""))

	require.Len(t, b.CompetitiveEdges, 3)
	require.Equal(t, "Recipes from nonna", b.CompetitiveEdges[0])
	require.Equal(t, "Open past midnight", b.CompetitiveEdges[1])
}

func TestSynthesizeDedupesEdges(t *testing.T) {
	p := profileFixture()
	p.CompetitiveAdvantages = []string{"Fresh daily ingredients", "fresh daily ingredients"}

	b := Synthesize(p, cultural.Resolve("Rome, Italy", ""))

	require.LessOrEqual(t, len(b.CompetitiveEdges), 3)
	seen := map[string]int{}
	for _, e := range b.CompetitiveEdges {
		seen[e]++
		require.LessOrEqual(t, seen[e], 1)
	}
}

func TestSynthesizeUnknownTypeUsesGenericPlaybook(t *testing.T) {
	p := profileFixture()
	p.BusinessType = brand.BusinessType("Circus")

	b := Synthesize(p, cultural.Resolve("", ""))

	require.NotEmpty(t, b.EngagementHooks)
	require.NotEmpty(t, b.CallToActions)
}

func TestSynthesizeEmptyProfileStillProducesBundle(t *testing.T) {
	b := Synthesize(brand.NormalizedProfile{}, cultural.Resolve("", ""))

	require.NotEmpty(t, b.ValuePropositions)
	for _, v := range b.ValuePropositions {
		require.NotContains(t, v, "{")
	}
}

func TestSynthesizeWeavesInCulturalTrust(t *testing.T) {
	b := Synthesize(profileFixture(), cultural.Resolve("Nairobi, Kenya", ""))

	joined := ""
	for _, h := range b.EngagementHooks {
		joined += h + "\n"
	}
	require.Contains(t, joined, "community testimonials")
}
