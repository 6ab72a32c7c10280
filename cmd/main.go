package main

import (
	"go.uber.org/fx"

	"hrbridge/internal/config"
	deliveryhttp "hrbridge/internal/delivery/http"
	"hrbridge/internal/infrastructure/credential"
	"hrbridge/internal/infrastructure/database"
	"hrbridge/internal/infrastructure/httpclient"
	"hrbridge/internal/infrastructure/logger"
	"hrbridge/internal/infrastructure/redis"
	"hrbridge/internal/infrastructure/repository"
	"hrbridge/internal/infrastructure/upload"
	"hrbridge/internal/server"
	"hrbridge/internal/usecase"
)

func main() {
	fx.New(
		// Configuration
		config.Module,

		// Infrastructure
		logger.Module,
		database.Module,
		redis.Module,
		credential.Module,
		httpclient.Module,
		upload.Module,
		repository.Module,

		// Business Logic
		usecase.Module,

		// Delivery
		deliveryhttp.Module,

		// Server
		server.Module,
	).Run()
}
