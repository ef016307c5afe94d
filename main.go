package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v81"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chatterbox/config"
	"chatterbox/handlers"
	"chatterbox/routes"
	"chatterbox/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	stripe.Key = cfg.StripeSecretKey

	db := store.New(cfg.MongoURI, cfg.MongoDB, logger)
	if err := connectWithRetry(db, logger); err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Warn("store disconnect failed", zap.Error(err))
		}
	}()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := db.EnsureIndexes(ctx); err != nil {
			cancel()
			logger.Fatal("failed to create indexes", zap.Error(err))
		}
		cancel()
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handlers.New(db, cfg, logger)
	router := routes.SetupRouter(h, db, cfg, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func connectWithRetry(db *store.Mongo, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = db.Connect(ctx)
		cancel()
		if err == nil {
			return nil
		}
		logger.Warn("mongodb connection attempt failed",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return err
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level.SetLevel(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("logger: ", err)
	}
	return logger
}
