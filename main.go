package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/it22117250/ITPM-Project/controllers"
	"github.com/it22117250/ITPM-Project/database"
	"github.com/it22117250/ITPM-Project/kafka"
	"github.com/it22117250/ITPM-Project/logger"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
	"github.com/it22117250/ITPM-Project/routes"
	"github.com/it22117250/ITPM-Project/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	// Connect to database
	db, err := database.Connect(cfg.PostgresHost, cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresDB, cfg.PostgresPort, cfg.PostgresSSLMode, cfg.PostgresTimeZone)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	store := repository.NewGormStore(db)

	// Carry slug counters forward from rows created before the counter
	// table existed.
	if err := repository.SeedFromExisting(context.Background(), store); err != nil {
		log.Fatalf("Slug sequence seeding failed: %v", err)
	}

	// Optional Redis cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Log.Warn("Redis unreachable, product cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// Optional Kafka order event producer
	var producer kafka.ProducerAPI
	if cfg.KafkaBrokers != "" {
		p := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.OrderEventsTopic)
		defer p.Close()
		producer = p
	}

	jwtSecret := []byte(cfg.JWTSecret)

	orderService := services.NewOrderService(store, producer)
	productService := services.NewProductService(store)
	supplierService := services.NewSupplierService(store)
	categoryService := services.NewCategoryService(store)
	userService := services.NewUserService(store, jwtSecret)
	forecastService := services.NewForecastService(store, cfg.ForecastServiceURL)

	cache := controllers.NewCacheManager(redisClient)

	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	routes.Register(r, routes.Controllers{
		Users:      controllers.NewUserController(userService),
		Suppliers:  controllers.NewSupplierController(supplierService),
		Categories: controllers.NewCategoryController(categoryService),
		Products:   controllers.NewProductController(productService, cache),
		Orders:     controllers.NewOrderController(orderService),
		Forecast:   controllers.NewForecastController(forecastService),
	}, jwtSecret)

	logger.Log.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
