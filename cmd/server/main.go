package main

import (
	"context" // Context for Redis and model client setup
	"log"     // log package is needed for logging
	"strings" // Splitting the CORS origin list
	"time"    // Cache TTL

	"campuscard/internal/api"        // Custom package for API handlers
	"campuscard/internal/config"     // Custom package for configuration
	"campuscard/internal/db"         // Custom package for database access
	"campuscard/internal/middleware" // Custom package for middleware
	"campuscard/internal/query"      // Read repository
	"campuscard/internal/summary"    // Summarization client
	"campuscard/internal/utils"      // Cache helpers

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis-backed cache when configured; without REDIS_ADDR the
	// cache is nil and reads go straight to the database
	var cache *utils.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewCache(redisClient, 60*time.Second)
	} else {
		logrus.Warn("REDIS_ADDR not set, response caching disabled")
	}

	// Setup the summarization client when an API key is configured
	var summarizer summary.Summarizer
	if cfg.GeminiAPIKey != "" {
		s, err := summary.NewGeminiSummarizer(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logrus.Fatalf("failed to create summarizer: %v", err)
		}
		summarizer = s
	} else {
		logrus.Warn("GEMINI_API_KEY not set, summary endpoint disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS: allow the configured origins, or everything when unset
	if cfg.CORSOrigins != "" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
		r.Use(cors.New(corsCfg))
	} else {
		r.Use(cors.Default())
	}

	r.Use(middleware.RequestID()) // Tag and log every request

	repo := query.NewRepository(gdb) // Read repository over the DB

	// API routes
	apiGroup := r.Group("/api")
	apiGroup.GET("/health", api.HealthHandler())                                          // Liveness endpoint
	apiGroup.GET("/transactions/recent", api.RecentTransactionsHandler(repo, cache))      // 20 most recent transactions
	apiGroup.GET("/transactions", api.ListTransactionsHandler(repo))                      // Up to 1000 transactions, optional email scope
	apiGroup.GET("/transactions/metrics", api.MetricsHandler(repo))                       // Per-user derived metrics
	apiGroup.POST("/transactions/summary", api.SummaryHandler(summarizer))                // Model-backed summary
	apiGroup.GET("/security-questions", api.SecurityQuestionsHandler(gdb))                // Question bank
	apiGroup.POST("/auth/login", api.LoginHandler(gdb, cfg.JWTSecret))                    // Security-question sign-in
	apiGroup.GET("/events", api.ListEventsHandler(gdb))                                   // Event catalog

	// Profile routes (protected by JWT)
	profileGroup := apiGroup.Group("/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	profileGroup.GET("", api.ProfileHandler(gdb)) // Authenticated user's profile

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
