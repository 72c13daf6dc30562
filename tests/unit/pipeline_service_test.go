package unit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/pipeline"
	"brandforge/internal/domain/quality"
	"brandforge/internal/infra/llm"
)

const trattoriaPost = "Mama Lucia welcomes you to taste authentic Roman flavors! " +
	"Our chef makes fresh pasta daily and our catering brings the family table to you. " +
	"Book your evening with us today!"

const trattoriaBrief = "Create a warm and friendly square post design for Mama Lucia, " +
	"a restaurant in Rome. Feature the primary color #C0392B with cream accents."

func TestGenerateRecoversViaFailover(t *testing.T) {
	primary := &failingGenerator{err: errors.New("rate limited")}
	secondary := newRoutedGenerator([]string{trattoriaPost}, trattoriaBrief)
	gen := llm.NewFailover(primary, secondary, newTestLogger())
	svc := pipeline.NewService(testPipelineConfig(), gen, nil, newTestLogger())

	res, err := svc.Generate(context.Background(), pipeline.Request{Profile: trattoriaProfile()})

	require.NoError(t, err)
	require.Equal(t, quality.StateAccepted, res.Content.State)
	require.Contains(t, res.Content.Text, "Mama Lucia")
	require.NotNil(t, res.Consistency)
	require.True(t, res.Consistency.IsConsistent)
	require.Positive(t, primary.calls())
}

func TestGenerateSurvivesWithoutAnyProvider(t *testing.T) {
	svc := pipeline.NewService(testPipelineConfig(), llm.Disabled{}, nil, newTestLogger())

	res, err := svc.Generate(context.Background(), pipeline.Request{Profile: trattoriaProfile()})

	require.NoError(t, err)
	require.Equal(t, quality.StateFallbackUsed, res.Content.State)
	require.Contains(t, res.Content.Text, "Mama Lucia")
	require.Contains(t, res.DesignBrief, "Mama Lucia")
	require.Contains(t, strings.Join(res.Warnings, "\n"), "template content used")
}

func TestNormalizeSparseProfileWithHints(t *testing.T) {
	svc := pipeline.NewService(testPipelineConfig(), newRoutedGenerator(nil, ""), nil, newTestLogger())

	res, err := svc.Normalize(context.Background(), pipeline.Request{
		Profile: brand.RawProfile{"businessName": "My Bakery", "location": "lagos"},
		Hints:   brand.Hints{BusinessType: "bakery"},
	})

	require.NoError(t, err)
	require.Equal(t, brand.TypeRestaurant, res.Profile.Profile.BusinessType)
	require.Equal(t, "Nigeria", res.Cultural.Country)
	require.NotEmpty(t, res.Profile.Fallbacks)
}

func TestInsightsNeverTouchGenerator(t *testing.T) {
	gen := newRoutedGenerator(nil, "")
	svc := pipeline.NewService(testPipelineConfig(), gen, nil, newTestLogger())

	res, err := svc.Insights(context.Background(), pipeline.Request{Profile: trattoriaProfile()})

	require.NoError(t, err)
	require.NotEmpty(t, res.Intelligence.EngagementHooks)
	require.True(t, res.Optimization.PromptReadiness)
	require.Zero(t, gen.calls())
}

func trattoriaProfile() brand.RawProfile {
	return brand.RawProfile{
		"businessName":   "Mama Lucia",
		"businessType":   "restaurant",
		"location":       "Rome, Italy",
		"services":       "Dine-in, Catering",
		"targetAudience": "local families",
		"brandVoice":     "warm and friendly",
		"writingTone":    "friendly",
		"brandColors":    map[string]any{"primary": "#C0392B"},
		"description":    "Family-run trattoria serving Roman classics.",
	}
}

func testPipelineConfig() pipeline.Config {
	return pipeline.Config{MinQualityScore: 70, MaxAttempts: 3, ConsistencyThreshold: 80}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

// routedGenerator keeps the concurrent content and design calls apart by
// inspecting the prompt, since design prompts carry a Visual Identity
// section and content prompts do not.
type routedGenerator struct {
	mu             sync.Mutex
	contentReplies []string
	designReply    string
	total          int
	contentIdx     int
}

func newRoutedGenerator(contentReplies []string, designReply string) *routedGenerator {
	return &routedGenerator{contentReplies: contentReplies, designReply: designReply}
}

func (g *routedGenerator) Generate(_ context.Context, promptText string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.total++
	if strings.Contains(promptText, "Visual Identity") {
		return g.designReply, nil
	}
	i := g.contentIdx
	g.contentIdx++
	if i < len(g.contentReplies) {
		return g.contentReplies[i], nil
	}
	return "", nil
}

func (g *routedGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.total
}

type failingGenerator struct {
	mu    sync.Mutex
	err   error
	total int
}

func (g *failingGenerator) Generate(context.Context, string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.total++
	return "", g.err
}

func (g *failingGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.total
}
