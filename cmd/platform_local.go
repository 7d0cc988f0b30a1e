//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/config"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "tombola"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("prize-allocation"),
	})
}
