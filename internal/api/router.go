package api

import (
	"net/http"

	"edgetrack/internal/handler"

	_ "edgetrack/docs"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(logger *zap.Logger) (http.Handler, error) {
	edgexHandler, err := handler.NewEdgeXHandler(logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// EdgeX endpoints
	mux.HandleFunc("/edgex/funding", edgexHandler.Funding)
	mux.HandleFunc("/edgex/transactions", edgexHandler.Transactions)
	mux.HandleFunc("/edgex/summary", edgexHandler.Summary)

	return mux, nil
}
