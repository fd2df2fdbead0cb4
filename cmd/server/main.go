package main

import (
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tipsplit/internal/config"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
	"github.com/mmynk/tipsplit/internal/service"
	"github.com/mmynk/tipsplit/internal/storage/sqlite"
	"github.com/mmynk/tipsplit/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	mux := http.NewServeMux()

	splitPath, splitHandler := service.NewSplitServiceHandler(
		service.NewSplitService(store, m, cfg.DefaultTipPercent),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.LoggingInterceptor(),
		),
	)
	mux.Handle(splitPath, splitHandler)
	mux.Handle("/metrics", promhttp.Handler())

	// Wrap with h2c for HTTP/2 without TLS (required for Connect gRPC clients)
	handler := h2c.NewHandler(corsMiddleware(mux), &http2.Server{})

	addr := cfg.HTTPAddr()
	slog.Info("Connect server starting", "address", addr, "default_tip_percent", cfg.DefaultTipPercent)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
