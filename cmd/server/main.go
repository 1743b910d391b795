// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"fraudlens/internal/config"
	"fraudlens/internal/repositories/cache"
	"fraudlens/internal/routes"
	"fraudlens/internal/services/benford"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
)

// main initializes and starts the HTTP server.
// It performs the following setup:
// - Loads configuration and validates the Benford sampler settings
// - Connects the report cache (redis when configured, in-memory otherwise)
// - Configures middleware and routes
// - Starts the HTTP server
func main() {
	// Load environment variables
	config.LoadEnv()

	// Validate sampler configuration before serving anything: a malformed
	// distribution means no evaluation is possible at all.
	sampleSize := config.GetIntEnv("BENFORD_SAMPLE_SIZE", benford.DefaultSampleSize)
	distribution, err := config.GetFloatSliceEnv("BENFORD_DISTRIBUTION", benford.DefaultDistribution)
	if err != nil {
		log.Fatalf("Invalid BENFORD_DISTRIBUTION: %v", err)
	}
	sampler, err := benford.NewSampler(sampleSize, distribution)
	if err != nil {
		log.Fatalf("Invalid benford sampler configuration: %v", err)
	}

	// Report cache: redis when an address is configured, otherwise in-memory.
	cacheTTL := config.GetDurationEnv("CACHE_TTL", 5*time.Minute)
	var reportCache cache.Cache = cache.NewMemoryCache(cacheTTL)

	redisAddr := config.GetEnv("REDIS_ADDR", "")
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("Failed to ping redis: %v", err)
		}
		cancel()

		redisCache := cache.NewRedisCache(client, cacheTTL)
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Printf("Failed to close redis connection: %v", err)
			}
		}()

		reportCache = redisCache
		log.Println("Report cache backed by redis")
	} else {
		log.Println("REDIS_ADDR not set, using in-memory report cache")
	}

	// Create Fiber app
	app := fiber.New()

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/v1/analysis", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 30),
		Expiration: config.GetDurationEnv("RATE_LIMIT_WINDOW", 1*time.Minute),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, reportCache, sampler)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
