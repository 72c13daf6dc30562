package quality

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
)

func restaurantProfile() brand.NormalizedProfile {
	return brand.NormalizedProfile{
		BusinessName:   "Mama Lucia",
		BusinessType:   brand.TypeRestaurant,
		Location:       "Rome, Italy",
		Services:       []string{"Wood-fired pizza", "Catering"},
		TargetAudience: "families and food lovers",
		BrandVoice:     "warm and inviting",
		WritingTone:    "friendly",
	}
}

const goodRestaurantPost = "Mama Lucia welcomes you to taste the freshest wood-fired pizza in Rome! " +
	"Our chef's menu is made with love for families and food lovers. " +
	"Book your table today and enjoy a true taste of Italian tradition."

func TestEvaluateHighQualityContent(t *testing.T) {
	p := restaurantProfile()
	ctx := cultural.Resolve(p.Location, p.BusinessType)

	s := Evaluate(goodRestaurantPost, p, ctx)

	require.GreaterOrEqual(t, s.Overall, 90)
	require.Empty(t, s.Issues)
	require.Equal(t, 100, s.BrandAlignment)
	require.Equal(t, 100, s.ContentStructure)
}

func TestEvaluateShortContentWithoutCTA(t *testing.T) {
	s := Evaluate("Fresh deal!", brand.NormalizedProfile{}, cultural.Context{})

	require.LessOrEqual(t, s.ContentStructure, 50)
	joined := strings.Join(s.Issues, "\n")
	require.Contains(t, joined, "under 50 characters")
	require.Contains(t, joined, "call to action")
}

func TestEvaluateOverlongContent(t *testing.T) {
	long := strings.Repeat("Visit Mama Lucia for fresh pizza. ", 20)
	s := Evaluate(long, restaurantProfile(), cultural.Context{})

	require.Contains(t, strings.Join(s.Issues, "\n"), "past 500 characters")
	require.Equal(t, 80, s.ContentStructure)
}

func TestEvaluateFlagsInappropriateTerm(t *testing.T) {
	p := restaurantProfile()
	text := "Our menu has fresh prescription specials, visit Mama Lucia for a taste of great food today"

	s := Evaluate(text, p, cultural.Context{})

	require.Equal(t, 80, s.IndustryAppropriate)
	require.Contains(t, strings.Join(s.Issues, "\n"), "prescription")
}

func TestEvaluateToneIndicators(t *testing.T) {
	p := restaurantProfile()
	p.WritingTone = "luxury"
	text := "Mama Lucia, the cheap discount spot for wood-fired pizza. Visit our menu of fresh dishes today."

	s := Evaluate(text, p, cultural.Context{})

	require.Equal(t, 50, s.ToneConsistency)
}

func TestEvaluateTerminologyForHealthcare(t *testing.T) {
	p := brand.NormalizedProfile{
		BusinessName: "CityCare Clinic",
		BusinessType: brand.TypeHealthcare,
		Services:     []string{"Checkups"},
	}
	text := "CityCare Clinic gives every customer great health care and treatment. Book your checkups today."

	s := Evaluate(text, p, cultural.Context{})

	require.Equal(t, 85, s.TerminologyAccuracy)
	require.Contains(t, strings.Join(s.Issues, "\n"), "patient")
}

func TestEvaluateBrandAlignmentDeductions(t *testing.T) {
	p := restaurantProfile()
	text := "Come taste the best fresh menu and dishes from our chef. Book a table today for a great meal."

	s := Evaluate(text, p, cultural.Context{})

	require.Equal(t, 65, s.BrandAlignment)
	joined := strings.Join(s.Issues, "\n")
	require.Contains(t, joined, "Mama Lucia")
	require.Contains(t, joined, "services")
}

func TestEvaluateCulturalRelevanceIsSoft(t *testing.T) {
	p := restaurantProfile()
	ctx := cultural.Resolve("Nairobi, Kenya", p.BusinessType)
	text := "Mama Lucia serves fresh wood-fired pizza. Visit our menu and taste every dish today."

	s := Evaluate(text, p, ctx)

	require.Equal(t, 85, s.CulturalRelevance)
	require.NotContains(t, strings.Join(s.Issues, "\n"), "local touch")
	require.Contains(t, strings.Join(s.Recommendations, "\n"), "Kenya")
}

func TestEvaluateOverallIsMeanOfSix(t *testing.T) {
	s := Evaluate(goodRestaurantPost, restaurantProfile(), cultural.Context{})

	sum := s.IndustryAppropriate + s.ToneConsistency + s.TerminologyAccuracy +
		s.ContentStructure + s.CulturalRelevance + s.BrandAlignment
	require.Equal(t, int(math.Round(float64(sum)/6)), s.Overall)
}

func TestEvaluateScoresStayInRange(t *testing.T) {
	p := restaurantProfile()
	p.WritingTone = "friendly"
	text := "utilize leverage synergy aforementioned heretofore prescription diagnosis"

	s := Evaluate(text, p, cultural.Resolve(p.Location, p.BusinessType))

	for _, v := range []int{
		s.Overall, s.IndustryAppropriate, s.ToneConsistency,
		s.TerminologyAccuracy, s.ContentStructure, s.CulturalRelevance, s.BrandAlignment,
	} {
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 100)
	}
}
