// Package llm composes the concrete model clients behind the pipeline's
// generator contract.
package llm

import (
	"context"
	"log/slog"

	"brandforge/internal/domain/pipeline"
)

// Failover tries the primary generator first and falls through to the
// secondary when the primary errors for any reason other than cancellation.
type Failover struct {
	primary   pipeline.Generator
	secondary pipeline.Generator
	logger    *slog.Logger
}

// NewFailover wires the generator chain. secondary may be nil, in which case
// primary errors surface directly.
func NewFailover(primary, secondary pipeline.Generator, logger *slog.Logger) *Failover {
	return &Failover{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With("component", "llm.failover"),
	}
}

func (f *Failover) Generate(ctx context.Context, promptText string) (string, error) {
	text, err := f.primary.Generate(ctx, promptText)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil || f.secondary == nil {
		return "", err
	}
	f.logger.Warn("primary generator failed, trying secondary", "error", err)
	return f.secondary.Generate(ctx, promptText)
}

var _ pipeline.Generator = (*Failover)(nil)
