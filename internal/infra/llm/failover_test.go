package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFailoverUsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubGenerator{text: "primary reply"}
	secondary := &stubGenerator{text: "secondary reply"}
	f := NewFailover(primary, secondary, testLogger())

	text, err := f.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	require.Equal(t, "primary reply", text)
	require.Equal(t, 1, primary.calls)
	require.Zero(t, secondary.calls)
}

func TestFailoverFallsThroughOnPrimaryError(t *testing.T) {
	primary := &stubGenerator{err: errors.New("rate limited")}
	secondary := &stubGenerator{text: "secondary reply"}
	f := NewFailover(primary, secondary, testLogger())

	text, err := f.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	require.Equal(t, "secondary reply", text)
	require.Equal(t, 1, secondary.calls)
}

func TestFailoverSurfacesErrorWithoutSecondary(t *testing.T) {
	primaryErr := errors.New("rate limited")
	f := NewFailover(&stubGenerator{err: primaryErr}, nil, testLogger())

	_, err := f.Generate(context.Background(), "prompt")

	require.ErrorIs(t, err, primaryErr)
}

func TestFailoverSkipsSecondaryOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	primary := &stubGenerator{err: context.Canceled}
	secondary := &stubGenerator{text: "secondary reply"}
	f := NewFailover(primary, secondary, testLogger())

	_, err := f.Generate(ctx, "prompt")

	require.Error(t, err)
	require.Zero(t, secondary.calls)
}
