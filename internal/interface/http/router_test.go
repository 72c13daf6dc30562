package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"brandforge/internal/domain/pipeline"
	"brandforge/internal/infra/config"
	apperrors "brandforge/pkg/errors"
)

func TestRouter_GenerateSuccess(t *testing.T) {
	svc := &stubPipeline{
		generateFn: func(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
			require.Equal(t, "u-1", req.UserID)
			require.Equal(t, "Mama Lucia", req.Profile["businessName"])
			return pipeline.Result{RequestID: "req-1", DesignBrief: "square post brief"}, nil
		},
	}

	recorder := performRequest("/api/v1/content/generate", `{"userId":"u-1","profile":{"businessName":"Mama Lucia"}}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got pipeline.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "req-1", got.RequestID)
	require.Equal(t, "square post brief", got.DesignBrief)
}

func TestRouter_GenerateInvalidJSON(t *testing.T) {
	svc := &stubPipeline{}

	recorder := performRequest("/api/v1/content/generate", `{"userId":123}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_GenerateQuotaExceeded(t *testing.T) {
	svc := &stubPipeline{
		generateFn: func(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
			return pipeline.Result{}, apperrors.Wrap("quota_exceeded", "monthly limit of 40 generations reached", nil)
		},
	}

	recorder := performRequest("/api/v1/content/generate", `{"userId":"u-1","profile":{}}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "quota_exceeded", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "monthly limit")
}

func TestRouter_NormalizeSuccess(t *testing.T) {
	svc := &stubPipeline{
		normalizeFn: func(ctx context.Context, req pipeline.Request) (pipeline.NormalizeResult, error) {
			require.Equal(t, "Glow Studio", req.Profile["businessName"])
			return pipeline.NormalizeResult{}, nil
		},
	}

	recorder := performRequest("/api/v1/profiles/normalize", `{"profile":{"businessName":"Glow Studio"}}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_InsightsSuccess(t *testing.T) {
	svc := &stubPipeline{
		insightsFn: func(ctx context.Context, req pipeline.Request) (pipeline.InsightsResult, error) {
			return pipeline.InsightsResult{}, nil
		},
	}

	recorder := performRequest("/api/v1/profiles/insights", `{"profile":{"businessName":"Glow Studio"}}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_QuotaSuccess(t *testing.T) {
	svc := &stubPipeline{
		quotaFn: func(ctx context.Context, userID string) (pipeline.Usage, error) {
			require.Equal(t, "u-7", userID)
			return pipeline.Usage{Used: 5, Limit: 40, Remaining: 35, Period: "2026-08"}, nil
		},
	}

	recorder := performGet("/api/v1/quota/u-7", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got pipeline.Usage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, 5, got.Used)
	require.Equal(t, 35, got.Remaining)
}

func TestRouter_QuotaUnavailable(t *testing.T) {
	svc := &stubPipeline{
		quotaFn: func(ctx context.Context, userID string) (pipeline.Usage, error) {
			return pipeline.Usage{}, apperrors.Wrap("quota_unavailable", "usage store not configured", nil)
		},
	}

	recorder := performGet("/api/v1/quota/u-7", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "quota_unavailable", errBody["error"]["code"])
}

func TestRouter_Health(t *testing.T) {
	recorder := performGet("/health", newRouterUnderTest(t, &stubPipeline{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		Status    string           `json:"status"`
		Providers []ProviderStatus `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "ok", got.Status)
	require.Len(t, got.Providers, 1)
	require.Equal(t, "gemini", got.Providers[0].Name)
}

func TestRouter_HealthDegradedWithoutProviders(t *testing.T) {
	handler := NewHandler(&stubPipeline{}, nil, newTestLogger())
	server := NewRouter(baseConfig(), handler)

	recorder := performGet("/health", server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "degraded", got.Status)
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	cfg := baseConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	handler := NewHandler(&stubPipeline{}, nil, newTestLogger())
	server := NewRouter(cfg, handler)

	first := performRequest("/api/v1/profiles/normalize", `{"profile":{}}`, server)
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest("/api/v1/profiles/normalize", `{"profile":{}}`, server)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	errBody := decodeErrorBody(t, second.Body.Bytes())
	require.Equal(t, "rate_limit_exceeded", errBody["error"]["code"])
}

func TestRouter_RetriesTransientFailures(t *testing.T) {
	calls := 0
	svc := &stubPipeline{
		normalizeFn: func(ctx context.Context, req pipeline.Request) (pipeline.NormalizeResult, error) {
			calls++
			if calls == 1 {
				return pipeline.NormalizeResult{}, apperrors.Wrap("internal_error", "transient failure", nil)
			}
			return pipeline.NormalizeResult{}, nil
		},
	}
	cfg := baseConfig()
	cfg.HTTP.Retry = config.RetryConfig{Enabled: true, MaxAttempts: 2, BaseBackoff: time.Millisecond}
	handler := NewHandler(svc, nil, newTestLogger())
	server := NewRouter(cfg, handler)

	recorder := performRequest("/api/v1/profiles/normalize", `{"profile":{}}`, server)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 2, calls)
}

func performRequest(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performGet(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc pipeline.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, []ProviderStatus{{Name: "gemini", Model: "gemini-2.5-flash"}}, newTestLogger())
	return NewRouter(baseConfig(), handler)
}

func baseConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubPipeline struct {
	generateFn  func(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
	normalizeFn func(ctx context.Context, req pipeline.Request) (pipeline.NormalizeResult, error)
	insightsFn  func(ctx context.Context, req pipeline.Request) (pipeline.InsightsResult, error)
	quotaFn     func(ctx context.Context, userID string) (pipeline.Usage, error)
}

func (s *stubPipeline) Generate(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, req)
	}
	return pipeline.Result{}, nil
}

func (s *stubPipeline) Normalize(ctx context.Context, req pipeline.Request) (pipeline.NormalizeResult, error) {
	if s.normalizeFn != nil {
		return s.normalizeFn(ctx, req)
	}
	return pipeline.NormalizeResult{}, nil
}

func (s *stubPipeline) Insights(ctx context.Context, req pipeline.Request) (pipeline.InsightsResult, error) {
	if s.insightsFn != nil {
		return s.insightsFn(ctx, req)
	}
	return pipeline.InsightsResult{}, nil
}

func (s *stubPipeline) Quota(ctx context.Context, userID string) (pipeline.Usage, error) {
	if s.quotaFn != nil {
		return s.quotaFn(ctx, userID)
	}
	return pipeline.Usage{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
