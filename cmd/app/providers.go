package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"brandforge/internal/domain/pipeline"
	"brandforge/internal/infra/config"
	"brandforge/internal/infra/llm"
	"brandforge/internal/infra/llm/gemini"
	"brandforge/internal/infra/llm/openrouter"
	"brandforge/internal/infra/quotastore"
	httpiface "brandforge/internal/interface/http"
)

func providePipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{
		MinQualityScore:      cfg.Pipeline.MinQualityScore,
		MaxAttempts:          cfg.Pipeline.MaxAttempts,
		ConsistencyThreshold: cfg.Pipeline.ConsistencyThreshold,
	}
}

// provideGenerator assembles the failover chain from whichever providers
// have credentials. With none configured the app still boots and serves
// template fallbacks.
func provideGenerator(cfg *config.Config, logger *slog.Logger) pipeline.Generator {
	var primary, secondary pipeline.Generator

	if key := strings.TrimSpace(cfg.Generator.Gemini.APIKey); key != "" {
		client, err := gemini.NewClient(context.Background(), key, gemini.Config{
			Model:           cfg.Generator.Gemini.Model,
			Temperature:     cfg.Generator.Gemini.Temperature,
			MaxOutputTokens: cfg.Generator.Gemini.MaxOutputTokens,
		})
		if err != nil {
			logger.Error("failed to initialize gemini client", "error", err)
		} else {
			logger.Info("gemini generator enabled", "model", cfg.Generator.Gemini.Model)
			primary = client
		}
	}

	if key := strings.TrimSpace(cfg.Generator.OpenRouter.APIKey); key != "" {
		client, err := openrouter.NewClient(key, cfg.Generator.OpenRouter.BaseURL, openrouter.Config{
			Model:       cfg.Generator.OpenRouter.Model,
			Temperature: cfg.Generator.OpenRouter.Temperature,
			MaxTokens:   cfg.Generator.OpenRouter.MaxTokens,
			Referer:     cfg.Generator.OpenRouter.Referer,
			Title:       cfg.Generator.OpenRouter.Title,
		})
		if err != nil {
			logger.Error("failed to initialize openrouter client", "error", err)
		} else {
			logger.Info("openrouter generator enabled", "model", cfg.Generator.OpenRouter.Model)
			if primary == nil {
				primary = client
			} else {
				secondary = client
			}
		}
	}

	if primary == nil {
		logger.Warn("no llm provider configured, serving template fallbacks only")
		return llm.Disabled{}
	}
	return llm.NewFailover(primary, secondary, logger)
}

func provideProviderStatus(cfg *config.Config) []httpiface.ProviderStatus {
	var providers []httpiface.ProviderStatus
	if strings.TrimSpace(cfg.Generator.Gemini.APIKey) != "" {
		providers = append(providers, httpiface.ProviderStatus{Name: "gemini", Model: cfg.Generator.Gemini.Model})
	}
	if strings.TrimSpace(cfg.Generator.OpenRouter.APIKey) != "" {
		providers = append(providers, httpiface.ProviderStatus{Name: "openrouter", Model: cfg.Generator.OpenRouter.Model})
	}
	return providers
}

func provideUsageStore(cfg *config.Config, logger *slog.Logger) pipeline.UsageStore {
	if cfg.Quota.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return quotastore.NewMemoryStore(cfg.Quota.MonthlyLimit)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return quotastore.NewMemoryStore(cfg.Quota.MonthlyLimit)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("quota valkey store enabled", "addr", cfg.Quota.Valkey.Addr)
			return quotastore.NewValkeyStore(client, "quota", cfg.Quota.MonthlyLimit)
		}
	}
	return quotastore.NewMemoryStore(cfg.Quota.MonthlyLimit)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Quota.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Quota.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Quota.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
