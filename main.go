package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/controllers"
	"github.com/Irex777/bolt-popcorn-pos/database"
	"github.com/Irex777/bolt-popcorn-pos/logger"
	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/repository"
	"github.com/Irex777/bolt-popcorn-pos/routes"
	"github.com/Irex777/bolt-popcorn-pos/services"
)

func main() {
	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Sync()
	log := logger.Log

	db, err := database.ConnectPostgres(log,
		&models.Product{}, &models.Sale{}, &models.SaleLine{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(db)

	redisClient := database.NewRedisClient(cfg.RedisURL, log)

	formatter, err := services.NewCurrencyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		log.Fatal("Invalid locale/currency configuration", zap.Error(err))
	}

	productRepo := repository.NewGormProductRepository(db)
	saleRepo := repository.NewGormSaleRepository(db)

	sessions := services.NewSessionStore()
	catalogService := services.NewCatalogService(productRepo, redisClient, cfg.CatalogCacheTTL, log)
	checkoutService := services.NewCheckoutService(saleRepo, log)
	historyService := services.NewHistoryService(saleRepo, log)
	reportService := services.NewReportService(formatter)

	catalogController := controllers.NewCatalogController(catalogService, log)
	cartController := controllers.NewCartController(sessions, catalogService, checkoutService, log)
	historyController := controllers.NewHistoryController(historyService, reportService, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.Register(router, catalogController, cartController, historyController, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("POS terminal service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", zap.Error(err))
	}
	log.Info("Server shutdown complete.")
}
