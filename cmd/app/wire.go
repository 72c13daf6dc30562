//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"brandforge/internal/bootstrap"
	"brandforge/internal/domain/pipeline"
	"brandforge/internal/infra/config"
	httpiface "brandforge/internal/interface/http"
	"brandforge/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePipelineConfig,
		provideGenerator,
		provideUsageStore,
		provideProviderStatus,
		pipeline.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
