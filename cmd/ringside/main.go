package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/formfighter/ringside/internal/common/clock"
	"github.com/formfighter/ringside/internal/common/uuid"
	"github.com/formfighter/ringside/internal/handlers/httpapi"
	challengeRepo "github.com/formfighter/ringside/internal/repositories/challenge"
	eventRepo "github.com/formfighter/ringside/internal/repositories/event"
	challengeService "github.com/formfighter/ringside/internal/services/challenge"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	challenges, err := challengeRepo.NewRedis(&challengeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge repository: %v", err)
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	// Initialize challenge service
	svc, err := challengeService.New(&challengeService.Config{
		ChallengeRepo: challenges,
		EventRepo:     events,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}

	// Initialize HTTP API
	api, err := httpapi.New(&httpapi.Config{
		ChallengeService: svc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP API: %v", err)
	}

	router := gin.Default()
	router.Use(cors.Default())
	api.Register(router)

	server := &http.Server{
		Addr:    ":" + getEnv("SERVER_PORT", "8080"),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("ringside listening on %s", server.Addr)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	svc.StopListening()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
