package consistency

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/brand"
)

func italianProfile() brand.NormalizedProfile {
	return brand.NormalizedProfile{
		BusinessName:   "Mama Mia Restaurant",
		BusinessType:   brand.TypeRestaurant,
		BrandVoice:     "warm and inviting",
		TargetAudience: "food lovers",
		BrandColors:    brand.BrandColors{Primary: "#C0392B"},
	}
}

func TestCheckAlignedArtifacts(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Taste the tradition at Mama Mia Restaurant!")
	design := "Create a warm and inviting social media post for Mama Mia Restaurant, " +
		"built around the primary color #C0392B on a cream background."

	report := Check(elements, design, p, 0)

	require.True(t, report.IsConsistent)
	require.GreaterOrEqual(t, report.ConsistencyScore, 90)
	require.Empty(t, report.AlignmentIssues)
	require.Empty(t, report.BrandingIssues)
	require.Empty(t, report.MessagingIssues)
	require.Empty(t, report.VisualTextualIssues)
}

func TestCheckMissingBusinessName(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	design := "Create a warm and inviting restaurant post using #C0392B."

	report := Check(elements, design, p, 0)

	require.Equal(t, 80, report.ConsistencyScore)
	require.True(t, report.IsConsistent)
	require.Len(t, report.BrandingIssues, 1)
	require.Contains(t, report.BrandingIssues[0], "Mama Mia Restaurant")
	require.Contains(t, report.Recommendations[0], "Mama Mia Restaurant")
}

func TestCheckFlagsAccumulatedDrift(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	design := "Design a sleek corporate banner for Acme Consulting in navy blue."

	report := Check(elements, design, p, 0)

	require.False(t, report.IsConsistent)
	require.Equal(t, 35, report.ConsistencyScore)
	require.Len(t, report.BrandingIssues, 1)
	require.Len(t, report.AlignmentIssues, 1)
	require.Len(t, report.VisualTextualIssues, 2)
	require.Len(t, report.Recommendations, 4)
}

func TestCheckToneDriftAgainstBrandVoice(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	elements.Tone = "strictly formal"
	design := "Create a warm and inviting post for Mama Mia Restaurant with #C0392B."

	report := Check(elements, design, p, 0)

	require.Len(t, report.MessagingIssues, 1)
	require.Contains(t, report.MessagingIssues[0], "warm and inviting")
	require.False(t, report.IsConsistent)
}

func TestCheckAudienceDrift(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	elements.TargetAudience = "enterprise buyers"
	design := "Create a warm and inviting post for Mama Mia Restaurant with #C0392B."

	report := Check(elements, design, p, 0)

	require.Equal(t, 85, report.ConsistencyScore)
	require.Len(t, report.MessagingIssues, 1)
	require.Contains(t, report.MessagingIssues[0], "food lovers")
}

func TestCheckToneSynonymsShareClass(t *testing.T) {
	p := italianProfile()
	p.BrandVoice = "friendly"
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	elements.Tone = "welcoming and casual"
	design := "Create a warm post for Mama Mia Restaurant with #C0392B."

	report := Check(elements, design, p, 0)

	require.Empty(t, report.MessagingIssues)
	require.Empty(t, report.VisualTextualIssues)
	require.True(t, report.IsConsistent)
}

func TestCheckSkipsTypeForGeneralBusiness(t *testing.T) {
	p := italianProfile()
	p.BusinessType = brand.TypeGeneral
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	design := "Create a warm and inviting post for Mama Mia Restaurant with #C0392B."

	report := Check(elements, design, p, 0)

	require.Empty(t, report.AlignmentIssues)
	require.True(t, report.IsConsistent)
}

func TestCheckEmptyDesignPromptSkipsDesignChecks(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")

	report := Check(elements, "", p, 0)

	require.Equal(t, 100, report.ConsistencyScore)
	require.True(t, report.IsConsistent)
	require.Empty(t, report.Recommendations)
}

func TestCheckCustomThreshold(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "Fresh pasta daily.")
	design := "Create a warm and inviting restaurant post using #C0392B."

	require.False(t, Check(elements, design, p, 90).IsConsistent)
	require.True(t, Check(elements, design, p, 80).IsConsistent)
}

func TestElementsFromProfileUsesFirstLine(t *testing.T) {
	p := italianProfile()
	elements := ElementsFromProfile(p, "  Taste the tradition!\nOpen every evening.")

	require.Equal(t, "Mama Mia Restaurant", elements.BusinessName)
	require.Equal(t, "Restaurant", elements.BusinessType)
	require.Equal(t, "warm and inviting", elements.Tone)
	require.Equal(t, "Taste the tradition!", elements.KeyMessage)
}

func TestExtractDesignTraits(t *testing.T) {
	traits := extractDesign("A sleek modern banner in #1A2B3C and navy for a tech launch.")

	require.Contains(t, traits.Styles, "modern")
	require.Contains(t, traits.Styles, "sleek")
	require.Contains(t, traits.ColorScheme, "#1A2B3C")
	require.Contains(t, traits.ColorScheme, "navy")
	require.Equal(t, "banner", traits.DesignType)
}
