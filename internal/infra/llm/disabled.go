package llm

import (
	"context"
	"errors"

	"brandforge/internal/domain/pipeline"
)

// Disabled stands in when no provider credentials are configured. Every
// call fails, which pushes the pipeline onto its template fallbacks.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", errors.New("no llm provider configured")
}

var _ pipeline.Generator = Disabled{}
