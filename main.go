package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibin_web/auth"
	"vibin_web/config"
	"vibin_web/logger"
	"vibin_web/middleware"
	"vibin_web/routes"
	"vibin_web/services"
	"vibin_web/socket"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("❌ Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	rng := services.NewRandomizer(cfg.Provider.Seed)

	provider, err := newProvider(ctx, cfg, rng, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize data provider", zap.Error(err))
	}

	var photos *services.PhotoService
	if cfg.AWS.Bucket != "" {
		presigner, err := services.NewS3Presigner(ctx, cfg.AWS.Region)
		if err != nil {
			zlog.Fatal("❌ Failed to initialize S3 presigner", zap.Error(err))
		}
		photos = services.NewPhotoService(presigner, cfg.AWS.Bucket)
		zlog.Info("✅ Photo uploads enabled", zap.String("bucket", cfg.AWS.Bucket))
	} else {
		zlog.Warn("⚠️ aws.bucket is empty, photo upload URLs are disabled")
	}

	// The store is referenced by the socket server before it exists
	var store *services.SessionStore
	socketServer := socket.NewSocketServer(func(id string) bool {
		_, ok := store.Get(id)
		return ok
	}, zlog)

	store = services.NewSessionStore(services.SessionDeps{
		Provider: provider,
		Rand:     rng,
		Timing: services.Timing{
			ReadReceiptDelay: cfg.Chat.ReadReceiptDelay,
			ReplyMinDelay:    cfg.Chat.ReplyMinDelay,
			ReplyMaxDelay:    cfg.Chat.ReplyMaxDelay,
		},
		MatchCount:     cfg.Chat.MatchCount,
		EnforceFilters: cfg.Search.EnforceFilters,
		Events:         socketServer,
		Logger:         zlog,
	})

	limiter := middleware.NewLimiterStore(cfg.Chat.SendRatePerMinute, cfg.Chat.SendBurst, time.Minute)
	defer limiter.Stop()

	r := routes.NewRouter(routes.Dependencies{
		Store:   store,
		JWT:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Limiter: limiter,
		Photos:  photos,
		Socket:  socketServer.Handler(),
		Logger:  zlog,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	socketServer.Start()
	defer socketServer.Close()

	go func() {
		zlog.Info("🚀 Starting server", zap.String("port", cfg.Server.Port), zap.String("provider", cfg.Provider.Kind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("❌ Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("❌ Server forced to shutdown", zap.Error(err))
	}
	store.CloseAll()
}

func newProvider(ctx context.Context, cfg *config.Config, rng *services.Randomizer, zlog *zap.Logger) (services.DataProvider, error) {
	if cfg.Provider.Kind != "dynamodb" {
		zlog.Info("🎲 Using mock data provider")
		return services.NewMockProvider(rng), nil
	}

	zlog.Info("Initializing DynamoDB client...", zap.String("region", cfg.AWS.Region))
	client, err := services.InitializeDynamoDBClient(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}
	dynamo := &services.DynamoService{Client: client, Logger: zlog}
	zlog.Info("✅ DynamoDB client initialized")
	return services.NewDynamoProvider(dynamo, rng, zlog), nil
}
