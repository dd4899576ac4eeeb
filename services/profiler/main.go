package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sitelens/website-profiler/pkg/cache"
	"github.com/sitelens/website-profiler/pkg/config"
	"github.com/sitelens/website-profiler/pkg/httpclient"
	"github.com/sitelens/website-profiler/pkg/logger"
	"github.com/sitelens/website-profiler/pkg/metrics"
	"github.com/sitelens/website-profiler/services/profiler/core"
	"github.com/sitelens/website-profiler/services/profiler/handlers"
	"github.com/sitelens/website-profiler/services/profiler/middleware"
)

const serviceName = "profiler"

func main() {
	cfg := config.Load()

	// Initialize structured logger
	log := logger.New(serviceName, cfg.LogLevel)

	// Initialize metrics
	metricsCollector := metrics.NewPrometheusCollector(serviceName)
	prometheus.MustRegister(metricsCollector.GetCollectors()...)

	// Initialize dependencies
	fetcher := httpclient.New(cfg.FetchTimeout, log)
	profileCache := cache.New(cfg.CacheTTL, cfg.CacheMaxEntries)
	defer profileCache.Close()

	engine := core.NewEngine(fetcher, log, metricsCollector)
	batchEngine := core.NewBatchEngine(engine, cfg.WorkerCount, log)

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(engine, profileCache, log, metricsCollector, cfg.CacheTTL)
	batchHandler := handlers.NewBatchHandler(batchEngine, log, cfg.MaxBatchSize)
	healthHandler := handlers.NewHealthHandler(serviceName, nil)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Setup routes
	router := mux.NewRouter()

	// Apply middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics(metricsCollector))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// API routes, rate limited per client
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(rateLimiter.Limit())
	api.HandleFunc("/analyze", profileHandler.AnalyzeURL).Methods("POST", "OPTIONS")
	api.HandleFunc("/analyze/batch", batchHandler.BatchAnalyze).Methods("POST", "OPTIONS")

	// Health and monitoring routes
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	// pprof routes for profiling
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	router.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	router.Handle("/debug/pprof/block", pprof.Handler("block"))

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting Profiler Service",
			"port", cfg.Port,
			"workers", cfg.WorkerCount,
			"cache_ttl", cfg.CacheTTL.String(),
			"max_batch_size", cfg.MaxBatchSize,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
