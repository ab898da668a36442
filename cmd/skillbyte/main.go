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

	"github.com/divyanshsaxena002/SkillByte/internal/adapter/genai"
	"github.com/divyanshsaxena002/SkillByte/internal/adapter/media"
	"github.com/divyanshsaxena002/SkillByte/internal/config"
	"github.com/divyanshsaxena002/SkillByte/internal/hub"
	"github.com/divyanshsaxena002/SkillByte/internal/service"
	"github.com/divyanshsaxena002/SkillByte/internal/store"
	handler "github.com/divyanshsaxena002/SkillByte/internal/transport/http"
	"github.com/divyanshsaxena002/SkillByte/internal/transport/ws"
	"github.com/divyanshsaxena002/SkillByte/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting SkillByte backend...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("GenAI URL: %s", cfg.GenAIBaseURL)

	// Initialize catalog store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize generation client
	generator := genai.NewGenerator(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)

	// Initialize media processor
	processor := media.NewPassthrough(cfg.MockDelay)

	// Initialize publish policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(db, generator, policyEngine, processor, cfg)

	// Initialize hub and WebSocket server
	h := hub.NewHub()
	go h.Run()
	wsServer := ws.NewServer(cfg, h, svc)

	// Create HTTP server
	e := handler.NewServer(svc, wsServer)

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

	log.Println("Shutting down SkillByte backend...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("SkillByte backend stopped")
}
