package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"caretier/internal/cache"
	"caretier/internal/config"
	"caretier/internal/engine"
	"caretier/internal/repository"
	"caretier/internal/service"
	"caretier/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Rule set: fail fast on malformed configuration rather than start
	// with substituted defaults.
	rules, err := config.LoadRuleSet(cfg.RulesPath)
	if err != nil {
		log.Fatal("Failed to load rule set: ", err)
	}
	log.Printf("Rule set %s loaded: %d questions, hours mode %s", rules.Version, len(rules.Questions), rules.HoursMode)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("caretier")

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and caches
	assessmentRepo := repository.NewAssessmentRepo(db)
	recommendationCache := cache.NewRecommendationCache(rdb)

	// Initialize engine and services
	eng := engine.New(rules)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, recommendationCache, eng)

	if cfg.AdjudicatorURL != "" {
		assessmentSvc.SetAdjudicator(service.NewAdjudicatorClient(cfg.AdjudicatorURL))
		log.Printf("Hours adjudicator enabled: %s", cfg.AdjudicatorURL)
	} else {
		log.Println("Hours adjudicator: NOT SET (deterministic baseline only)")
	}

	// Create router with container
	container := &rest.Container{
		AssessmentService: assessmentSvc,
		Rules:             rules,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/schema")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments")
		log.Println("  GET  /v1/assessments/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
