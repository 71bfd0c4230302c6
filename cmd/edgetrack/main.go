package main

import (
	"net/http"

	"edgetrack/internal/api"
	"edgetrack/internal/config"

	"go.uber.org/zap"
)

// @title        edgetrack API
// @version      1.0
// @description  Local EdgeX funding-fee tracker with Stark-signed API access
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Init(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := config.InitSecret(); err != nil {
		logger.Fatal("failed to load secret", zap.Error(err))
	}

	router, err := api.SetupRouter(logger)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	addr := ":" + config.GetPort()
	logger.Info("listening", zap.String("addr", addr), zap.String("baseURL", config.GetEdgeXBaseURL()))

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
