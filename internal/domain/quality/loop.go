package quality

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
)

// TextGenerator is the external model boundary the loop drives.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Loop wraps a generator with score-gated retries: generate, evaluate,
// accept or tighten the prompt and try again. After maxAttempts the
// deterministic fallback writer takes over.
type Loop struct {
	gen         TextGenerator
	threshold   int
	maxAttempts int
	logger      *slog.Logger
}

// NewLoop builds a loop. Non-positive threshold or maxAttempts fall back to
// 70 and 3.
func NewLoop(gen TextGenerator, threshold, maxAttempts int, logger *slog.Logger) *Loop {
	if threshold <= 0 {
		threshold = 70
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Loop{
		gen:         gen,
		threshold:   threshold,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "quality.loop"),
	}
}

// Run drives the state machine for one request. Generator failures count as
// attempts and route to the fallback like low scores do; the only error Run
// returns is context cancellation, honored between attempts and surfaced
// from the in-flight call.
func (l *Loop) Run(ctx context.Context, promptText string, p brand.NormalizedProfile, cctx cultural.Context) (LoopResult, error) {
	res := LoopResult{State: StatePending}
	current := promptText

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Attempts = attempt

		text, err := l.gen.Generate(ctx, current)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			l.logger.Warn("generation attempt failed", "attempt", attempt, "error", err)
			res.History = append(res.History, Attempt{Prompt: current, Error: err.Error()})
			res.State = StateRetrying
			continue
		}

		if strings.TrimSpace(text) == "" {
			l.logger.Warn("generator returned empty text", "attempt", attempt)
			res.History = append(res.History, Attempt{Prompt: current, Error: "empty generator response"})
			res.State = StateRetrying
			continue
		}

		res.State = StateGenerated
		score := Evaluate(text, p, cctx)
		res.History = append(res.History, Attempt{Prompt: current, Text: text, Score: &score})

		if score.Overall >= l.threshold {
			res.State = StateAccepted
			res.Text = text
			res.Score = score
			l.logger.Info("content accepted", "attempt", attempt, "score", score.Overall)
			return res, nil
		}

		l.logger.Info("content below threshold, retrying", "attempt", attempt, "score", score.Overall, "threshold", l.threshold)
		res.State = StateRetrying
		current = Tighten(current, score)
	}

	res.State = StateFallbackUsed
	res.Text = Fallback(p)
	res.Score = Evaluate(res.Text, p, cctx)
	l.logger.Warn("generation exhausted, using templated fallback", "attempts", res.Attempts)
	return res, nil
}

// Tighten appends the top outstanding issue so the next attempt addresses
// it first.
func Tighten(prompt string, score Score) string {
	if len(score.Issues) == 0 {
		return prompt
	}
	return fmt.Sprintf("%s\n\nImportant: fix this first: %s.", prompt, score.Issues[0])
}
