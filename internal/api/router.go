package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aspect/anchor/internal/api/handler"
	"github.com/aspect/anchor/internal/api/middleware"
	"github.com/aspect/anchor/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	RecordController *player.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	recordHandler := handler.NewRecordHandler(cfg.RecordController)

	signerMiddleware := middleware.Signer()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Reads are unrestricted; anyone may fetch a record
	api.HandleFunc("/records/{address}", recordHandler.Get).Methods(http.MethodGet)

	// Mutations require the verified signer identity
	records := api.PathPrefix("/records").Subrouter()
	records.Use(signerMiddleware)
	records.HandleFunc("/{address}", recordHandler.Initialize).Methods(http.MethodPost)
	records.HandleFunc("/{address}/location", recordHandler.UpdateLocation).Methods(http.MethodPut)
	records.HandleFunc("/{address}/car", recordHandler.UpdateCar).Methods(http.MethodPut)

	// Health check endpoint (no signer)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
