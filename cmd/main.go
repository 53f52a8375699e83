package main

import (
	"go.uber.org/fx"

	"docstamp/internal/config"
	deliveryhttp "docstamp/internal/delivery/http"
	"docstamp/internal/infrastructure/database"
	"docstamp/internal/infrastructure/document"
	"docstamp/internal/infrastructure/logger"
	"docstamp/internal/infrastructure/pdfdoc"
	"docstamp/internal/infrastructure/redis"
	"docstamp/internal/infrastructure/repository"
	"docstamp/internal/infrastructure/stamper"
	"docstamp/internal/server"
	"docstamp/internal/usecase"
)

func main() {
	fx.New(
		// Configuration
		config.Module,

		// Infrastructure
		logger.Module,
		database.Module,
		redis.Module,
		document.Module,
		pdfdoc.Module,
		stamper.Module,
		repository.Module,

		// Business Logic
		usecase.Module,

		// Delivery
		deliveryhttp.Module,

		// Server
		server.Module,
	).Run()
}
