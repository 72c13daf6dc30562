package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/pipeline"
	"brandforge/internal/infra/quotastore"
	apperrors "brandforge/pkg/errors"
)

func TestQuotaExhaustionAcrossRequests(t *testing.T) {
	gen := newRoutedGenerator([]string{trattoriaPost, trattoriaPost}, trattoriaBrief)
	store := quotastore.NewMemoryStore(2)
	svc := pipeline.NewService(testPipelineConfig(), gen, store, newTestLogger())

	for want := 1; want <= 2; want++ {
		res, err := svc.Generate(context.Background(), pipeline.Request{UserID: "u-1", Profile: trattoriaProfile()})
		require.NoError(t, err)
		require.NotNil(t, res.Usage)
		require.Equal(t, want, res.Usage.Used)
		require.Equal(t, 2-want, res.Usage.Remaining)
	}

	_, err := svc.Generate(context.Background(), pipeline.Request{UserID: "u-1", Profile: trattoriaProfile()})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "quota_exceeded"))

	res, err := svc.Generate(context.Background(), pipeline.Request{UserID: "u-2", Profile: trattoriaProfile()})
	require.NoError(t, err)
	require.NotNil(t, res.Usage)
	require.Equal(t, 1, res.Usage.Used)

	usage, err := svc.Quota(context.Background(), "u-1")
	require.NoError(t, err)
	require.Equal(t, 2, usage.Used)
	require.Zero(t, usage.Remaining)
}

func TestUnmeteredRequestsSkipQuota(t *testing.T) {
	gen := newRoutedGenerator([]string{trattoriaPost}, trattoriaBrief)
	store := quotastore.NewMemoryStore(1)
	svc := pipeline.NewService(testPipelineConfig(), gen, store, newTestLogger())

	res, err := svc.Generate(context.Background(), pipeline.Request{Profile: trattoriaProfile()})
	require.NoError(t, err)
	require.Nil(t, res.Usage)

	usage, err := svc.Quota(context.Background(), "u-1")
	require.NoError(t, err)
	require.Zero(t, usage.Used)
}
