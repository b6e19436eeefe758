package main

import (
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
	"fine-ill-eat/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var textGen llm.TextGenerator
	if cfg.HasGenerationBackend() {
		textGen = llm.NewOpenRouterClient(cfg)
	} else {
		log.Println("OPENROUTER_API_KEY not set, plans will use the catalog path")
	}

	db, err := database.NewDB(cfg.MetricsDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)
	selector := filter.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	generator := plan.NewGenerator(textGen, selector, metricsStore)

	bot, err := telegram.NewBot(cfg, generator, metricsStore)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	mux := http.NewServeMux()
	bot.RegisterHandlers(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Telegram bot server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	_ = srv.Close()
}
