package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heartwave_server/config"
	"heartwave_server/data"
	"heartwave_server/logger"
	"heartwave_server/models"
	"heartwave_server/routes"
	"heartwave_server/services"
	"heartwave_server/socket"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run wires and serves the app. It returns after deferred cleanup runs.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var awsCfg aws.Config
	if cfg.Catalog.Source == config.CatalogSourceDynamoDB || cfg.ImagesEnabled() {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			log.Error("failed to load AWS config", zap.Error(err))
			return err
		}
	}

	profiles, err := loadProfiles(ctx, cfg, awsCfg, log)
	if err != nil {
		log.Error("failed to load profile catalog", zap.Error(err))
		return err
	}
	catalog, err := services.NewCatalogService(profiles)
	if err != nil {
		log.Error("invalid profile catalog", zap.Error(err))
		return err
	}
	log.Info("catalog ready", zap.String("source", cfg.Catalog.Source), zap.Int("profiles", catalog.Len()))

	var images *services.ImageService
	if cfg.ImagesEnabled() {
		images = services.NewImageService(awsCfg, cfg.AWS.Bucket, cfg.AWS.PresignExpiry)
		log.Info("image presigning enabled", zap.String("bucket", cfg.AWS.Bucket))
	}

	bus := services.NewEventBus()
	sessions := services.NewSessionStore(catalog, bus, log,
		services.WithIdleTTL(cfg.Session.IdleTTL),
		services.WithDeckOptions(services.WithExitDuration(cfg.Swipe.ExitDuration)),
	)
	go sessions.RunSweeper(ctx, cfg.Session.SweepInterval)

	socketServer := socket.NewSocketServer(sessions, log)
	unbridge := socket.Bridge(bus, socketServer)
	defer unbridge()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error("socket server stopped", zap.Error(err))
		}
	}()
	defer socketServer.Close()

	r := routes.NewRouter(routes.Dependencies{
		Sessions: sessions,
		Catalog:  catalog,
		Images:   images,
		Logger:   log,
	})
	r.PathPrefix("/socket.io/").Handler(socketServer)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.Origins(),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return serve(ctx, httpServer, cfg.Server.ShutdownTimeout, log)
}

// serve runs srv until ctx is done or the listener fails, then shuts it down.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *zap.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case runErr = <-serverErr:
		log.Error("server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	return runErr
}

func loadProfiles(ctx context.Context, cfg *config.Config, awsCfg aws.Config, log *zap.Logger) ([]models.Profile, error) {
	if cfg.Catalog.Source == config.CatalogSourceDynamoDB {
		dynamo := &services.DynamoService{
			Client: services.InitializeDynamoDBClient(awsCfg),
			Logger: log,
		}
		return dynamo.LoadProfiles(ctx, cfg.Catalog.Table)
	}
	return services.DecodeProfiles(data.SeedProfiles)
}
