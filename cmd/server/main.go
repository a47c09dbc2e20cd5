package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Time durations

	"budgetbook/internal/api"        // Custom package for API handlers
	"budgetbook/internal/config"     // Custom package for configuration
	"budgetbook/internal/middleware" // Custom package for middleware
	"budgetbook/internal/service"    // Custom package for business services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Business services
	categories := service.NewCategoryService(db)
	operations := service.NewOperationService(db)
	payments := service.NewPaymentService(db)
	tags := service.NewTagService(db)
	wallets := service.NewWalletService(db)
	transactions := service.NewTransactionService(db)

	ttl := time.Duration(cfg.CacheTTL) * time.Second // Listing cache TTL

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Authenticated routes, protected by JWT; the Redis client is
	// injected into the context for cache invalidation
	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})

	// Category routes
	authed.GET("/categories", api.ListCategoriesHandler(categories, redisClient, ttl))
	authed.POST("/categories", api.CreateCategoryHandler(categories))
	authed.GET("/categories/:id", api.GetCategoryHandler(categories))
	authed.PUT("/categories/:id", api.UpdateCategoryHandler(categories))
	authed.DELETE("/categories/:id", api.DeleteCategoryHandler(categories))

	// Operation routes
	authed.GET("/operations", api.ListOperationsHandler(operations, redisClient, ttl))
	authed.POST("/operations", api.CreateOperationHandler(operations))
	authed.GET("/operations/:id", api.GetOperationHandler(operations))
	authed.PUT("/operations/:id", api.UpdateOperationHandler(operations))
	authed.DELETE("/operations/:id", api.DeleteOperationHandler(operations))

	// Payment method routes
	authed.GET("/payments", api.ListPaymentsHandler(payments, redisClient, ttl))
	authed.POST("/payments", api.CreatePaymentHandler(payments))
	authed.GET("/payments/:id", api.GetPaymentHandler(payments))
	authed.PUT("/payments/:id", api.UpdatePaymentHandler(payments))
	authed.DELETE("/payments/:id", api.DeletePaymentHandler(payments))

	// Tag routes
	authed.GET("/tags", api.ListTagsHandler(tags, redisClient, ttl))
	authed.POST("/tags", api.CreateTagHandler(tags))
	authed.GET("/tags/:id", api.GetTagHandler(tags))
	authed.PUT("/tags/:id", api.UpdateTagHandler(tags))
	authed.DELETE("/tags/:id", api.DeleteTagHandler(tags))

	// Wallet routes
	authed.GET("/wallets", api.ListWalletsHandler(db, wallets, redisClient, ttl))
	authed.POST("/wallets", api.CreateWalletHandler(db, wallets))
	authed.GET("/wallets/:id", api.GetWalletHandler(db, wallets))
	authed.PUT("/wallets/:id", api.UpdateWalletHandler(db, wallets))
	authed.DELETE("/wallets/:id", api.DeleteWalletHandler(db, wallets))

	// Transaction routes
	authed.GET("/transactions", api.ListTransactionsHandler(db, transactions, redisClient, ttl))
	authed.POST("/transactions", api.CreateTransactionHandler(db, transactions, tags))
	authed.GET("/transactions/:id", api.GetTransactionHandler(db, transactions))
	authed.PUT("/transactions/:id", api.UpdateTransactionHandler(db, transactions, tags))
	authed.DELETE("/transactions/:id", api.DeleteTransactionHandler(db, transactions))

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient, ttl)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
