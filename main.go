package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sendmo/controllers"
	"sendmo/database"
	"sendmo/events"
	"sendmo/providers"
	"sendmo/repository"
	"sendmo/routes"
	servicepkg "sendmo/services"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Quote cache is optional: without Redis every quote hits EasyPost.
	var quoteCache *repository.QuoteCache
	if cfg.RedisURL != "" {
		redisClient, redisErr := database.NewRedisClient(cfg.RedisURL)
		if redisErr != nil {
			logger.Warn("Redis unavailable, quote cache disabled", zap.Error(redisErr))
		} else {
			quoteCache = repository.NewQuoteCache(redisClient, cfg.QuoteCacheTTL)
		}
	}

	// SNS is optional: without it label purchases simply emit no events.
	var snsClient events.Publisher
	awsCfg, awsErr := awsconfig.LoadDefaultConfig(context.Background())
	if awsErr != nil {
		logger.Warn("AWS config unavailable, SNS disabled", zap.Error(awsErr))
	} else {
		snsClient = events.NewSNSClient(awsCfg)
	}

	// Provider and DI chain
	provider := providers.NewEasyPostProvider(cfg.EasyPostAPIKey)
	addressRepo := repository.NewGormAddressRepository(database.DB)
	userRepo := repository.NewGormUserRepository(database.DB)
	shipmentRepo := repository.NewGormShipmentRepository(database.DB)

	addressService := servicepkg.NewAddressService(addressRepo, userRepo, provider, logger)
	rateService := servicepkg.NewRateService(provider, quoteCache, cfg.MarkupMultiplier, cfg.MaxDisplayPrice, logger)
	labelService := servicepkg.NewLabelService(shipmentRepo, provider, snsClient, cfg.LabelSNSTopicARN, logger)

	addressController := controllers.NewAddressController(addressService)
	rateController := controllers.NewRateController(rateService)
	labelController := controllers.NewLabelController(labelService)

	r := gin.New()

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	})

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "sendmo"})
	})

	routes.RegisterRoutes(r, addressController, rateController, labelController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("SendMo started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
