package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Laisky/bedrock-contentgen/common/config"
	"github.com/Laisky/bedrock-contentgen/common/graceful"
	"github.com/Laisky/bedrock-contentgen/common/logger"
	"github.com/Laisky/bedrock-contentgen/controller"
	"github.com/Laisky/bedrock-contentgen/middleware"
	"github.com/Laisky/bedrock-contentgen/monitor"
	"github.com/Laisky/bedrock-contentgen/relay/adaptor/aws"
	relaycontroller "github.com/Laisky/bedrock-contentgen/relay/controller"
	"github.com/Laisky/bedrock-contentgen/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal("failed to load config", zap.Error(err))
	}
	if err = logger.Setup(ctx, cfg.Log); err != nil {
		logger.Logger.Fatal("failed to setup logger", zap.Error(err))
	}
	logger.Logger.Info("bedrock content generator started",
		zap.String("region", cfg.Bedrock.Region),
		zap.String("model", cfg.Content.ModelName))

	if cfg.Server.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *monitor.Metrics
	if cfg.EnablePrometheusMetrics {
		if metrics, err = monitor.New(prometheus.DefaultRegisterer); err != nil {
			logger.Logger.Fatal("failed to register metrics", zap.Error(err))
		}
	}

	adaptor := aws.New(
		aws.WithLogger(logger.Logger.Named("bedrock")),
		aws.WithMetrics(metrics),
	)
	if err = adaptor.Init(ctx, cfg.Bedrock); err != nil {
		logger.Logger.Fatal("failed to initialize bedrock client", zap.Error(err))
	}
	content := relaycontroller.NewContentGenerator(cfg.Content, adaptor,
		relaycontroller.WithContentLogger(logger.Logger.Named("content")))

	logLevel := glog.LevelInfo
	if cfg.Log.DebugEnabled {
		logLevel = glog.LevelDebug
	}

	drainer := graceful.NewDrainer()
	server := gin.New()
	server.RedirectTrailingSlash = false
	server.Use(
		gin.Recovery(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(logLevel.String()),
			gmw.WithLogger(logger.Logger.Named("gin")),
		),
	)
	server.Use(middleware.RequestId())
	server.Use(middleware.RelayPanicRecover())
	server.Use(middleware.InFlight(drainer))
	if cfg.EnablePrometheusMetrics {
		server.Use(middleware.Metrics(metrics))
		server.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logger.Logger.Info("Prometheus metrics endpoint available at /metrics")
	}

	router.SetApiRouter(server, controller.New(content, adaptor))

	port := strconv.Itoa(cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info("server started", zap.String("address", "http://localhost:"+port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("shutdown signal received, draining requests",
		zap.Int64("in_flight_requests", drainer.InFlight()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("HTTP server shutdown", zap.Error(err))
	}
	if err := drainer.Drain(shutdownCtx); err != nil {
		logger.Logger.Error("drain in-flight requests", zap.Error(err))
	}
	logger.Logger.Info("server stopped")
}
