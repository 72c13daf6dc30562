// Package pipeline chains profile normalization, cultural resolution,
// intelligence synthesis, prompt assembly, validated generation, and the
// consistency cross-check into one request flow.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/consistency"
	"brandforge/internal/domain/cultural"
	"brandforge/internal/domain/intelligence"
	"brandforge/internal/domain/prompt"
	"brandforge/internal/domain/quality"
	apperrors "brandforge/pkg/errors"
	"brandforge/pkg/metrics"
)

// Service exposes the content generation pipeline.
type Service interface {
	Generate(ctx context.Context, req Request) (Result, error)
	Normalize(ctx context.Context, req Request) (NormalizeResult, error)
	Insights(ctx context.Context, req Request) (InsightsResult, error)
	Quota(ctx context.Context, userID string) (Usage, error)
}

// Generator produces free text from an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// UsageStore meters generation requests per user and calendar month.
type UsageStore interface {
	Consume(ctx context.Context, userID string) (Usage, error)
	Current(ctx context.Context, userID string) (Usage, error)
}

type service struct {
	cfg    Config
	gen    Generator
	usage  UsageStore
	loop   *quality.Loop
	logger *slog.Logger
}

// NewService is a wire provider for the pipeline domain.
func NewService(cfg Config, gen Generator, usage UsageStore, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		gen:    gen,
		usage:  usage,
		loop:   quality.NewLoop(gen, cfg.MinQualityScore, cfg.MaxAttempts, logger),
		logger: logger.With("component", "pipeline.service"),
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Result, error) {
	started := time.Now()
	requestID := uuid.NewString()
	log := s.logger.With("request_id", requestID)

	usage, err := s.consume(ctx, req.UserID, log)
	if err != nil {
		return Result{}, err
	}

	norm := brand.Normalize(req.Profile, req.Hints)
	cctx := cultural.Resolve(norm.Profile.Location, norm.Profile.BusinessType)
	intel := intelligence.Synthesize(norm.Profile, cctx)
	contentPrompt := prompt.Assemble(norm.Profile, intel, cctx, prompt.KindContent)
	designPrompt := prompt.Assemble(norm.Profile, intel, cctx, prompt.KindDesign)

	log.Info("pipeline assembled",
		"business_type", norm.Profile.BusinessType,
		"data_quality", norm.DataQuality,
		"confidence", norm.Confidence,
		"prompt_tokens", contentPrompt.TokenEstimate+designPrompt.TokenEstimate)

	var content quality.LoopResult
	design := strings.TrimSpace(req.DesignPrompt)
	designGenerated := req.WantsDesign() && design == ""

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, runErr := s.loop.Run(gctx, contentPrompt.Text, norm.Profile, cctx)
		if runErr != nil {
			return runErr
		}
		content = res
		return nil
	})
	if designGenerated {
		g.Go(func() error {
			text, genErr := s.gen.Generate(gctx, designPrompt.Text)
			switch {
			case genErr != nil:
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn("design generation failed, using brief template", "error", genErr)
				text = designFallback(norm.Profile)
			case strings.TrimSpace(text) == "":
				log.Warn("design generation returned empty text, using brief template")
				text = designFallback(norm.Profile)
			}
			design = strings.TrimSpace(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, apperrors.Wrap("generation_aborted", "generation interrupted", err)
	}

	content.Text = cultural.Adapt(content.Text, cctx)
	appropriateness := cultural.Validate(content.Text, cctx)

	var report *consistency.Report
	if design != "" {
		elements := consistency.ElementsFromProfile(norm.Profile, content.Text)
		r := consistency.Check(elements, design, norm.Profile, s.cfg.ConsistencyThreshold)
		report = &r
	}

	finishLog := log
	if report != nil {
		finishLog = log.With("consistency", report.ConsistencyScore)
	}
	finishLog.Info("pipeline finished",
		"state", content.State,
		"quality", content.Score.Overall,
		"duration_ms", time.Since(started).Milliseconds())

	promptTokens := contentPrompt.TokenEstimate
	completions := []string{content.Text}
	if designGenerated {
		promptTokens += designPrompt.TokenEstimate
		completions = append(completions, design)
	}

	return Result{
		RequestID:     requestID,
		Profile:       norm,
		Cultural:      cctx,
		Intelligence:  intel,
		ContentPrompt: contentPrompt,
		DesignPrompt:  designPrompt,
		Content:       content,
		CulturalCheck: appropriateness,
		DesignBrief:   design,
		Consistency:   report,
		Warnings:      collectWarnings(norm, contentPrompt, content, appropriateness, report),
		Usage:         usage,
		DurationMs:    time.Since(started).Milliseconds(),
		TokenUsage:    tokenUsage(promptTokens, completions...),
	}, nil
}

func (s *service) Normalize(_ context.Context, req Request) (NormalizeResult, error) {
	norm := brand.Normalize(req.Profile, req.Hints)
	return NormalizeResult{
		Profile:  norm,
		Cultural: cultural.Resolve(norm.Profile.Location, norm.Profile.BusinessType),
	}, nil
}

func (s *service) Insights(_ context.Context, req Request) (InsightsResult, error) {
	norm := brand.Normalize(req.Profile, req.Hints)
	cctx := cultural.Resolve(norm.Profile.Location, norm.Profile.BusinessType)
	intel := intelligence.Synthesize(norm.Profile, cctx)
	return InsightsResult{
		Profile:      norm.Profile,
		Cultural:     cctx,
		Intelligence: intel,
		Optimization: prompt.Assemble(norm.Profile, intel, cctx, prompt.KindContent).Optimization,
	}, nil
}

func (s *service) Quota(ctx context.Context, userID string) (Usage, error) {
	if strings.TrimSpace(userID) == "" {
		return Usage{}, apperrors.Wrap("invalid_input", "userId cannot be empty", nil)
	}
	if s.usage == nil {
		return Usage{}, apperrors.Wrap("quota_unavailable", "usage store not configured", nil)
	}
	return s.usage.Current(ctx, userID)
}

// consume books one request against the user's monthly allowance. A store
// outage is logged and waved through; only an exhausted quota blocks.
func (s *service) consume(ctx context.Context, userID string, log *slog.Logger) (*Usage, error) {
	if userID == "" || s.usage == nil {
		return nil, nil
	}
	u, err := s.usage.Consume(ctx, userID)
	if err != nil {
		if apperrors.IsCode(err, "quota_exceeded") {
			return nil, err
		}
		log.Warn("usage store unavailable, continuing unmetered", "error", err)
		return nil, nil
	}
	return &u, nil
}

// designFallback writes a minimal brief straight from the profile so the
// design path still produces something brand-aligned when the generator is
// down.
func designFallback(p brand.NormalizedProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a social media graphic for %s", p.BusinessName)
	if p.BusinessType != brand.TypeGeneral {
		fmt.Fprintf(&b, ", a %s brand", strings.ToLower(string(p.BusinessType)))
	}
	b.WriteString(".")
	if p.BrandVoice != "" {
		fmt.Fprintf(&b, " Keep the visual style %s.", strings.ToLower(p.BrandVoice))
	}
	if p.BrandColors.Primary != "" {
		fmt.Fprintf(&b, " Use the primary brand color %s.", p.BrandColors.Primary)
	}
	return b.String()
}

func collectWarnings(norm brand.Result, contentPrompt prompt.Bundle, content quality.LoopResult, appr cultural.Appropriateness, report *consistency.Report) []string {
	var warnings []string
	if norm.Confidence == brand.ConfidenceLow {
		warnings = append(warnings, "profile confidence is low, most fields were inferred from defaults")
	}
	if !contentPrompt.Optimization.PromptReadiness {
		w := "content prompt assembled from thin data"
		if missing := contentPrompt.Optimization.MissingCriticalData; len(missing) > 0 {
			w += ", missing: " + strings.Join(missing, ", ")
		}
		warnings = append(warnings, w)
	}
	if content.State == quality.StateFallbackUsed {
		warnings = append(warnings, fmt.Sprintf("quality threshold not reached after %d attempts, template content used", content.Attempts))
	}
	for _, issue := range appr.Issues {
		warnings = append(warnings, "cultural check: "+issue)
	}
	switch {
	case report == nil:
		warnings = append(warnings, "no design brief, consistency check skipped")
	case !report.IsConsistent:
		warnings = append(warnings, fmt.Sprintf("content and design drift apart, consistency score %d", report.ConsistencyScore))
	}
	return warnings
}

func tokenUsage(promptTokens int, completions ...string) *metrics.TokenUsage {
	u := metrics.TokenUsage{PromptTokens: promptTokens}
	for _, text := range completions {
		u.CompletionTokens += prompt.EstimateTokens(text)
	}
	u.TotalTokens = u.PromptTokens + u.CompletionTokens
	if u.IsZero() {
		return nil
	}
	return &u
}
