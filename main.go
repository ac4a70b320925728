package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/voicemaster/voicemaster/agent"
	"github.com/voicemaster/voicemaster/api"
	"github.com/voicemaster/voicemaster/config"
	"github.com/voicemaster/voicemaster/llm"
	"github.com/voicemaster/voicemaster/notify"
	"github.com/voicemaster/voicemaster/policy"
	"github.com/voicemaster/voicemaster/recognizer"
	"github.com/voicemaster/voicemaster/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting voicemaster...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("LLM Model: %s", cfg.LLMModel)

	// Initialize session store
	store, err := session.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer store.Close()

	// Initialize trial service
	trials := session.NewTrialService(store, notify.LogDispatcher{}, cfg.TrialDuration)

	// Initialize command agent; the remote backend decision happens here,
	// once, and never re-evaluates per call.
	llmClient := llm.NewCompletionClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.LLMTimeout)
	commandAgent := agent.New(llmClient, cfg)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize handler
	h := api.NewHandler(commandAgent, trials, policyEngine, recognizer.New(cfg.RecognizerDelay), cfg)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down voicemaster...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("voicemaster stopped")
}
