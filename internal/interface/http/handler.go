package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandforge/internal/domain/pipeline"
	apperrors "brandforge/pkg/errors"
)

// ProviderStatus names a configured generation backend for /health.
type ProviderStatus struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

// Handler wires the HTTP transport to the pipeline service.
type Handler struct {
	pipelineSvc pipeline.Service
	providers   []ProviderStatus
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(pipelineSvc pipeline.Service, providers []ProviderStatus, logger *slog.Logger) *Handler {
	return &Handler{
		pipelineSvc: pipelineSvc,
		providers:   providers,
		logger:      logger.With("component", "http.handler"),
	}
}

// Generate runs the full profile-to-content pipeline.
func (h *Handler) Generate(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	res, err := h.pipelineSvc.Generate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "generation_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "quota_exceeded"):
			status = http.StatusTooManyRequests
			code = "quota_exceeded"
		case apperrors.IsCode(err, "generation_aborted"):
			status = http.StatusBadGateway
			code = "generation_aborted"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, res)
}

// NormalizeProfile cleans a raw profile without spending quota.
func (h *Handler) NormalizeProfile(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	res, err := h.pipelineSvc.Normalize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "normalize_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, res)
}

// Insights returns the derived business intelligence for a profile.
func (h *Handler) Insights(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	res, err := h.pipelineSvc.Insights(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "insights_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, res)
}

// Quota reports the caller's remaining monthly allowance.
func (h *Handler) Quota(c *gin.Context) {
	usage, err := h.pipelineSvc.Quota(c.Request.Context(), c.Param("userId"))
	if err != nil {
		status := http.StatusInternalServerError
		code := "quota_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "quota_unavailable"):
			status = http.StatusServiceUnavailable
			code = "quota_unavailable"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, usage)
}

// Health reports liveness and the configured generation backends.
func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	if len(h.providers) == 0 {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"providers": h.providers,
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
