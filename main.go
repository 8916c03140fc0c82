// @title NextStep API
// @version 1.0
// @description Backend server for the NextStep student career guidance platform.

// @contact.name API Support
// @contact.email support@nextstep.example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"nextstep_backend/internal/app"
	"nextstep_backend/internal/config"
	"nextstep_backend/pkg/configwatcher"
	"nextstep_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.OnConfigReload)

	application.Run()
}
