package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fine-ill-eat/internal/config"
	"fine-ill-eat/internal/database"
	"fine-ill-eat/internal/filter"
	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/metrics"
	"fine-ill-eat/internal/plan"
	"fine-ill-eat/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var textGen llm.TextGenerator
	if cfg.HasGenerationBackend() {
		textGen = llm.NewOpenRouterClient(cfg)
	} else {
		log.Println("OPENROUTER_API_KEY not set, plans will use the catalog path")
	}

	var describer llm.ImageDescriber
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer geminiClient.Close()
		describer = geminiClient
	}

	db, err := database.NewDB(cfg.MetricsDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)
	selector := filter.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	generator := plan.NewGenerator(textGen, selector, metricsStore)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(cfg, generator, describer, metricsStore).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Planner API listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
